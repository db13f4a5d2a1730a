package personality

import (
	"errors"
	"strings"
	"testing"
)

func TestCatalogContainsBuiltins(t *testing.T) {
	catalog := NewCatalog()

	for _, id := range []string{ConspiracyTheorist, SkepticalScientist, PopulistDebater, ContrarianThinker} {
		s, err := catalog.Get(id)
		if err != nil {
			t.Fatalf("Get(%s) err: %v", id, err)
		}
		if s.ID() != id {
			t.Fatalf("unexpected id: got %s want %s", s.ID(), id)
		}
	}

	if got := len(catalog.List()); got != 4 {
		t.Fatalf("expected 4 strategies, got %d", got)
	}
}

func TestCatalogUnknownPersonality(t *testing.T) {
	catalog := NewCatalog()

	_, err := catalog.Get("debate_club_president")
	if !errors.Is(err, ErrUnknownPersonality) {
		t.Fatalf("expected ErrUnknownPersonality, got %v", err)
	}
}

func TestRenderTemplateIsReproducible(t *testing.T) {
	catalog := NewCatalog()
	s, err := catalog.Get(SkepticalScientist)
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}

	seed := Seed("conversation-1", 3)
	first := s.RenderTemplate(DeviceFabricatedStatistic, "the moon landing was real", 2, seed)
	second := s.RenderTemplate(DeviceFabricatedStatistic, "the moon landing was real", 2, seed)

	if first != second {
		t.Fatalf("same seed produced different text:\n%s\n%s", first, second)
	}
}

func TestRenderTemplateVariesAcrossTurns(t *testing.T) {
	catalog := NewCatalog()
	s, err := catalog.Get(SkepticalScientist)
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}

	stance := "climate change is not primarily human-caused"
	first := s.RenderTemplate(DeviceFabricatedStatistic, stance, 1, Seed("conversation-1", 1))
	second := s.RenderTemplate(DeviceFabricatedStatistic, stance, 2, Seed("conversation-1", 3))

	if first == second {
		t.Fatal("different turn seeds produced identical fabricated details")
	}
}

func TestRenderTemplateAlternatesVariantsAcrossExchanges(t *testing.T) {
	catalog := NewCatalog()

	// Consecutive exchanges on the same device must never repeat verbatim,
	// even for templates without numeric slots.
	for _, s := range catalog.List() {
		for _, device := range []Device{
			DeviceFabricatedStatistic, DeviceAppealToDistrust, DeviceAnecdote,
			DeviceCommonSenseAppeal, DeviceCircularLogic, DeviceTopicPivot,
		} {
			stance := "the opposite is closer to the truth"
			for exchange := 1; exchange < 4; exchange++ {
				prev := s.RenderTemplate(device, stance, exchange, Seed("conversation-3", exchange*2-1))
				next := s.RenderTemplate(device, stance, exchange+1, Seed("conversation-3", exchange*2+1))
				if prev == next {
					t.Fatalf("%s/%s repeated verbatim across exchanges %d and %d", s.ID(), device, exchange, exchange+1)
				}
			}
		}
	}
}

func TestRenderTemplateEmbedsStance(t *testing.T) {
	catalog := NewCatalog()
	stance := "formal education is an overpriced credential mill that practical experience beats"

	for _, s := range catalog.List() {
		for _, device := range []Device{
			DeviceFabricatedStatistic, DeviceAppealToDistrust, DeviceAnecdote,
			DeviceCommonSenseAppeal, DeviceCircularLogic, DeviceTopicPivot,
		} {
			text := s.RenderTemplate(device, stance, 3, Seed("conversation-2", 5))
			if !strings.Contains(text, stance) {
				t.Fatalf("%s/%s rendered text without the stance: %s", s.ID(), device, text)
			}
			if strings.Contains(text, "{") {
				t.Fatalf("%s/%s left an unfilled slot: %s", s.ID(), device, text)
			}
		}
	}
}

func TestPreferredDeviceGatesEscalatedDevices(t *testing.T) {
	catalog := NewCatalog()
	samples := []string{
		"I believe this is true",
		"but what about the evidence?",
		"you are simply wrong about all of it",
		"tell me more",
	}

	for _, s := range catalog.List() {
		for tier := 0; tier <= 1; tier++ {
			for _, text := range samples {
				device := s.PreferredDevice(tier, text)
				if device == DeviceCircularLogic || device == DeviceTopicPivot {
					t.Fatalf("%s offered %s at tier %d", s.ID(), device, tier)
				}
			}
		}
	}
}

func TestPreferredDeviceIsDeterministic(t *testing.T) {
	catalog := NewCatalog()
	s, err := catalog.Get(ConspiracyTheorist)
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}

	first := s.PreferredDevice(2, "but what about the consensus?")
	second := s.PreferredDevice(2, "but what about the consensus?")
	if first != second {
		t.Fatalf("device pick not deterministic: %s vs %s", first, second)
	}
}

func TestSeedIsKeyedBySessionAndTurn(t *testing.T) {
	if Seed("a", 1) == Seed("b", 1) {
		t.Fatal("different sessions produced the same seed")
	}
	if Seed("a", 1) == Seed("a", 2) {
		t.Fatal("different turns produced the same seed")
	}
	if Seed("a", 1) != Seed("a", 1) {
		t.Fatal("seed is not stable")
	}
}
