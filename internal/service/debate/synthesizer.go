package debate

import (
	"fmt"
	"strings"

	model "github.com/polemic-ai/polemic/internal/model/debate"
	"github.com/polemic-ai/polemic/internal/model/personality"
)

// pressureMarkers are explicit contradiction cues. Interrogatives and
// repetition of the bot's own claims are detected separately.
var pressureMarkers = []string{
	"but ", "but,", "actually", "that's false", "that is false", "that's not true",
	"that is not true", "you're wrong", "you are wrong", "nonsense", "no way",
	"evidence", "source", "study", "studies", "research shows", "consensus",
	"prove", "disagree", "fact check", "debunked", "citation",
}

// maxTier caps escalation; the tier never decreases within a session.
const maxTier = 3

// Synthesizer turns one user message into a rebuttal. It is a pure function
// of the session snapshot and the message: all mutation stays with the
// orchestrator.
type Synthesizer struct {
	catalog *personality.Catalog
}

// NewSynthesizer builds a synthesizer over the personality catalog.
func NewSynthesizer(catalog *personality.Catalog) *Synthesizer {
	return &Synthesizer{catalog: catalog}
}

// Synthesis is the computed outcome of one turn.
type Synthesis struct {
	Text        string
	Tier        int
	Tier3Streak int
	Device      personality.Device
}

// Synthesize computes the rebuttal, the new escalation tier and the tier-3
// streak for the given session snapshot. The snapshot is expected to already
// contain the user's turn; the generator is keyed by the lifetime turn
// counter, which keeps advancing after the history window caps.
func (s *Synthesizer) Synthesize(session model.Session, userText string) (Synthesis, error) {
	strategy, err := s.catalog.Get(session.PersonalityID)
	if err != nil {
		return Synthesis{}, fmt.Errorf("resolve personality %q: %w", session.PersonalityID, err)
	}

	tier := session.EscalationTier
	if s.underPressure(session, userText) && tier < maxTier {
		tier++
	}

	streak := 0
	if tier == maxTier {
		streak = session.Tier3Streak + 1
	}

	device := strategy.PreferredDevice(tier, userText)
	// A sustained tier-3 exchange deflects instead of looping.
	if streak > 1 {
		device = personality.DeviceTopicPivot
	}

	exchange := (session.TotalTurns + 1) / 2
	seed := personality.Seed(session.ID, session.TotalTurns)
	text := strategy.RenderTemplate(device, session.Stance, exchange, seed)

	return Synthesis{Text: text, Tier: tier, Tier3Streak: streak, Device: device}, nil
}

// underPressure reports whether the user's message pushes back: a question,
// an explicit contradiction, or a rehash of the bot's own last claim.
func (s *Synthesizer) underPressure(session model.Session, userText string) bool {
	normalized := strings.ToLower(strings.TrimSpace(userText))

	if strings.Contains(normalized, "?") {
		return true
	}
	for _, marker := range pressureMarkers {
		if strings.Contains(normalized, marker) {
			return true
		}
	}
	if last, ok := session.LastBotTurn(); ok && repeatsClaim(normalized, last.Text) {
		return true
	}
	return false
}

// repeatsClaim reports whether the user text echoes a four-word run from the
// bot's previous rebuttal, the cheap signal that the user is quoting the
// claim back. Quoted spans are skipped: the fallback stance quotes the
// user's own opening message, and restating your own words is not pressure.
func repeatsClaim(userText, botText string) bool {
	words := strings.Fields(strings.ToLower(stripQuoted(botText)))
	const run = 4
	for i := 0; i+run <= len(words); i++ {
		if strings.Contains(userText, strings.Join(words[i:i+run], " ")) {
			return true
		}
	}
	return false
}

// stripQuoted removes double-quoted spans. Builtin templates never contain
// double quotes, so this only drops the snippet embedded by the fallback
// stance.
func stripQuoted(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inQuote := false
	for _, r := range s {
		if r == '"' {
			inQuote = !inQuote
			continue
		}
		if !inQuote {
			b.WriteRune(r)
		}
	}
	return b.String()
}
