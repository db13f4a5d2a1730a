package debate

import (
	"errors"
	"fmt"
	"testing"
	"time"

	model "github.com/polemic-ai/polemic/internal/model/debate"
	"github.com/polemic-ai/polemic/internal/model/personality"
)

func newTestSession(tier, streak int) model.Session {
	session := model.NewSession(
		"test-session",
		"climate change",
		"climate change is not primarily human-caused",
		personality.SkepticalScientist,
		time.Now().UTC(),
	)
	session.EscalationTier = tier
	session.Tier3Streak = streak
	return session
}

func TestSynthesizeCalmMessageKeepsTier(t *testing.T) {
	synth := NewSynthesizer(personality.NewCatalog())
	session := newTestSession(0, 0)

	got, err := synth.Synthesize(session, "I simply enjoy talking about the weather")
	if err != nil {
		t.Fatalf("Synthesize err: %v", err)
	}
	if got.Tier != 0 {
		t.Fatalf("expected tier 0, got %d", got.Tier)
	}
	if got.Text == "" {
		t.Fatal("expected a rebuttal")
	}
}

func TestSynthesizeQuestionRaisesTier(t *testing.T) {
	synth := NewSynthesizer(personality.NewCatalog())
	session := newTestSession(0, 0)

	got, err := synth.Synthesize(session, "But what about the scientific consensus?")
	if err != nil {
		t.Fatalf("Synthesize err: %v", err)
	}
	if got.Tier != 1 {
		t.Fatalf("expected tier 1, got %d", got.Tier)
	}
}

func TestSynthesizeTierCapsAtThree(t *testing.T) {
	synth := NewSynthesizer(personality.NewCatalog())
	session := newTestSession(3, 0)

	got, err := synth.Synthesize(session, "That's false and you know it")
	if err != nil {
		t.Fatalf("Synthesize err: %v", err)
	}
	if got.Tier != 3 {
		t.Fatalf("expected tier capped at 3, got %d", got.Tier)
	}
	if got.Tier3Streak != 1 {
		t.Fatalf("expected streak 1, got %d", got.Tier3Streak)
	}
}

func TestSynthesizeTierNeverDecreases(t *testing.T) {
	synth := NewSynthesizer(personality.NewCatalog())
	session := newTestSession(2, 0)

	got, err := synth.Synthesize(session, "I see your point, lovely weather today")
	if err != nil {
		t.Fatalf("Synthesize err: %v", err)
	}
	if got.Tier != 2 {
		t.Fatalf("expected tier to hold at 2, got %d", got.Tier)
	}
}

func TestSynthesizeSustainedTierThreeForcesPivot(t *testing.T) {
	synth := NewSynthesizer(personality.NewCatalog())
	session := newTestSession(3, 1)

	got, err := synth.Synthesize(session, "Prove it, that's not true at all")
	if err != nil {
		t.Fatalf("Synthesize err: %v", err)
	}
	if got.Tier3Streak != 2 {
		t.Fatalf("expected streak 2, got %d", got.Tier3Streak)
	}
	if got.Device != personality.DeviceTopicPivot {
		t.Fatalf("expected forced topic pivot, got %s", got.Device)
	}
}

func TestSynthesizeRepeatedClaimCountsAsPressure(t *testing.T) {
	synth := NewSynthesizer(personality.NewCatalog())
	session := newTestSession(0, 0)
	session.Append(model.RoleUser, "I believe the climate is changing fast", time.Now().UTC())
	session.Append(model.RoleBot, "the medieval warm period was warmer than today", time.Now().UTC())

	got, err := synth.Synthesize(session, "you claimed the medieval warm period was warmer than today")
	if err != nil {
		t.Fatalf("Synthesize err: %v", err)
	}
	if got.Tier != 1 {
		t.Fatalf("expected tier 1 after echoed claim, got %d", got.Tier)
	}
}

func TestSynthesizeRestatedOpenerIsNotPressure(t *testing.T) {
	synth := NewSynthesizer(personality.NewCatalog())
	opener := "pineapple belongs on every pizza"
	session := model.NewSession(
		"test-session",
		"general",
		fmt.Sprintf("%q is a much weaker claim than it sounds, and the opposite is closer to the truth", opener),
		personality.ContrarianThinker,
		time.Now().UTC(),
	)
	session.Append(model.RoleUser, opener, time.Now().UTC())
	session.Append(model.RoleBot, "Thought through honestly, "+session.Stance, time.Now().UTC())

	got, err := synth.Synthesize(session, "pineapple belongs on every pizza and I will keep saying it")
	if err != nil {
		t.Fatalf("Synthesize err: %v", err)
	}
	if got.Tier != 0 {
		t.Fatalf("restating the opening message raised the tier to %d", got.Tier)
	}
}

func TestSynthesizeIsPureAndReproducible(t *testing.T) {
	synth := NewSynthesizer(personality.NewCatalog())
	session := newTestSession(1, 0)
	session.Append(model.RoleUser, "I believe the climate is changing fast", time.Now().UTC())

	first, err := synth.Synthesize(session, "tell me more about your views")
	if err != nil {
		t.Fatalf("Synthesize err: %v", err)
	}
	second, err := synth.Synthesize(session, "tell me more about your views")
	if err != nil {
		t.Fatalf("Synthesize err: %v", err)
	}

	if first.Text != second.Text || first.Tier != second.Tier {
		t.Fatal("synthesis is not a pure function of its inputs")
	}
	if session.EscalationTier != 1 {
		t.Fatalf("synthesizer mutated the session: tier %d", session.EscalationTier)
	}
}

func TestSynthesizeUnknownPersonality(t *testing.T) {
	synth := NewSynthesizer(personality.NewCatalog())
	session := newTestSession(0, 0)
	session.PersonalityID = "not-a-personality"

	_, err := synth.Synthesize(session, "I believe this will fail")
	if !errors.Is(err, personality.ErrUnknownPersonality) {
		t.Fatalf("expected ErrUnknownPersonality, got %v", err)
	}
}
