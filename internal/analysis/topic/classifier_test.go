package topic

import (
	"strings"
	"testing"

	"github.com/polemic-ai/polemic/internal/model/personality"
)

func TestClassifySupportiveClimateMessage(t *testing.T) {
	c := NewClassifier("")

	got := c.Classify("I believe climate change is a serious threat")

	if got.Topic != "climate change" {
		t.Fatalf("unexpected topic: %s", got.Topic)
	}
	if got.PersonalityID != personality.SkepticalScientist {
		t.Fatalf("unexpected personality: %s", got.PersonalityID)
	}
	if got.Stance != "climate change is not primarily human-caused" {
		t.Fatalf("unexpected stance: %s", got.Stance)
	}
}

func TestClassifyOpposingMessageFlipsStance(t *testing.T) {
	c := NewClassifier("")

	got := c.Classify("Climate change is a hoax invented to raise taxes")

	if got.Topic != "climate change" {
		t.Fatalf("unexpected topic: %s", got.Topic)
	}
	if !strings.Contains(got.Stance, "urgent") {
		t.Fatalf("expected the affirmative stance, got %q", got.Stance)
	}
}

func TestClassifyVaccineMessage(t *testing.T) {
	c := NewClassifier("")

	got := c.Classify("I think vaccines are safe and effective")

	if got.Topic != "vaccines and public health" {
		t.Fatalf("unexpected topic: %s", got.Topic)
	}
	if got.PersonalityID != personality.ConspiracyTheorist {
		t.Fatalf("unexpected personality: %s", got.PersonalityID)
	}
}

func TestClassifyNoMatchFallsBack(t *testing.T) {
	c := NewClassifier("")

	got := c.Classify("purple is my favorite color")

	if got.Topic != GeneralTopic {
		t.Fatalf("expected general topic, got %s", got.Topic)
	}
	if got.PersonalityID != personality.ContrarianThinker {
		t.Fatalf("expected fallback personality, got %s", got.PersonalityID)
	}
	if got.Stance == "" {
		t.Fatal("expected a non-empty fallback stance")
	}
}

func TestClassifyConfiguredFallback(t *testing.T) {
	c := NewClassifier(personality.PopulistDebater)

	got := c.Classify("purple is my favorite color")

	if got.PersonalityID != personality.PopulistDebater {
		t.Fatalf("expected configured fallback, got %s", got.PersonalityID)
	}
}

func TestClassifyTieBreaksByDeclarationOrder(t *testing.T) {
	c := NewClassifier("")

	// One keyword hit each for "government and politics" and "scientific
	// methodology"; the earlier taxonomy entry must win.
	got := c.Classify("government funding of science")

	if got.Topic != "government and politics" {
		t.Fatalf("expected declaration-order tie break, got %s", got.Topic)
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	c := NewClassifier("")

	got := c.Classify("VACCINES saved millions of lives")

	if got.Topic != "vaccines and public health" {
		t.Fatalf("unexpected topic: %s", got.Topic)
	}
}
