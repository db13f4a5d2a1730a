// Package topic infers the debate topic and the contrarian stance from a
// conversation's opening message. Classification runs exactly once per
// session; the result is immutable afterwards.
package topic

import (
	"fmt"
	"strings"

	"github.com/polemic-ai/polemic/internal/model/personality"
)

// GeneralTopic is assigned when no taxonomy entry matches.
const GeneralTopic = "general"

// Entry maps trigger keywords to a topic, the two possible stances and the
// personality most affine to the topic. Declaration order is the tie-break
// priority, so the slice order in Taxonomy is load-bearing.
type Entry struct {
	Topic         string
	Keywords      []string
	ContraStance  string // argued when the user supports the topic's popular claim
	ProStance     string // argued when the user attacks it
	PersonalityID string
}

// Result is the outcome of classifying an opening message.
type Result struct {
	Topic         string
	Stance        string
	PersonalityID string
}

// Taxonomy returns the static keyword-to-topic mapping in priority order.
func Taxonomy() []Entry {
	return []Entry{
		{
			Topic:         "vaccines and public health",
			Keywords:      []string{"vaccine", "vaccination", "immunity", "immune", "pharma"},
			ContraStance:  "vaccines do more harm than good and natural immunity is superior",
			ProStance:     "vaccination is the most effective public-health intervention ever devised",
			PersonalityID: personality.ConspiracyTheorist,
		},
		{
			Topic:         "climate change",
			Keywords:      []string{"climate", "warming", "carbon", "greenhouse", "emission", "fossil"},
			ContraStance:  "climate change is not primarily human-caused",
			ProStance:     "climate change is an urgent, human-caused crisis that demands immediate action",
			PersonalityID: personality.SkepticalScientist,
		},
		{
			Topic:         "earth shape and geography",
			Keywords:      []string{"flat earth", "earth", "globe", "planet"},
			ContraStance:  "the globe model is accepted on authority, not on evidence you can verify yourself",
			ProStance:     "the earth is demonstrably a sphere and doubting that is indefensible",
			PersonalityID: personality.ConspiracyTheorist,
		},
		{
			Topic:         "government and politics",
			Keywords:      []string{"government", "politics", "political", "election", "democracy", "state"},
			ContraStance:  "government power exists to serve insiders, not citizens",
			ProStance:     "strong public institutions are what keep ordinary people safe and free",
			PersonalityID: personality.ConspiracyTheorist,
		},
		{
			Topic:         "health and medicine",
			Keywords:      []string{"health", "medicine", "medical", "doctor", "disease", "treatment"},
			ContraStance:  "modern medicine overtreats and underdelivers compared with its reputation",
			ProStance:     "evidence-based medicine outperforms every alternative that has ever been tried",
			PersonalityID: personality.SkepticalScientist,
		},
		{
			Topic:         "technology and society",
			Keywords:      []string{"technology", "tech", "ai", "artificial intelligence", "internet", "social media", "algorithm", "automation"},
			ContraStance:  "technology concentrates wealth and power while hollowing out ordinary work",
			ProStance:     "technology is the great equalizer and resisting it hurts working people most",
			PersonalityID: personality.PopulistDebater,
		},
		{
			Topic:         "education system",
			Keywords:      []string{"education", "school", "university", "college", "student", "teacher"},
			ContraStance:  "formal education is an overpriced credential mill that practical experience beats",
			ProStance:     "universal formal education is the surest ladder out of poverty ever built",
			PersonalityID: personality.PopulistDebater,
		},
		{
			Topic:         "economic policies",
			Keywords:      []string{"economy", "economic", "capitalism", "market", "business", "job", "worker", "wage", "tax"},
			ContraStance:  "the economy is rigged to reward insiders at working people's expense",
			ProStance:     "open markets have lifted more people out of poverty than any policy in history",
			PersonalityID: personality.PopulistDebater,
		},
		{
			Topic:         "scientific methodology",
			Keywords:      []string{"science", "scientific", "research", "study", "experiment", "evidence"},
			ContraStance:  "the scientific consensus machine rewards conformity over truth",
			ProStance:     "the scientific method is the most reliable tool humanity has for finding truth",
			PersonalityID: personality.SkepticalScientist,
		},
	}
}

// Support and opposition polarity cues. Opposition cues weigh double:
// an explicit attack ("X is a hoax") should win over a framing phrase
// ("I believe ...") appearing in the same sentence.
var (
	supportMarkers = []string{
		"i believe", "i think", "i support", "we should", "we need", "i love",
		"is good", "is great", "is true", "is real", "is important", "is essential",
		"matters", "serious threat", "works",
	}
	opposeMarkers = []string{
		"i don't believe", "i do not believe", "i oppose", "i hate",
		"is bad", "is false", "is a hoax", "is a scam", "is a lie", "isn't real",
		"is not real", "overrated", "useless", "waste", "doesn't work", "does not work",
	}
)

// Classifier assigns topic, stance and personality to an opening message.
type Classifier struct {
	taxonomy   []Entry
	fallbackID string
}

// NewClassifier builds a classifier over the static taxonomy. fallbackID is
// the personality used when nothing matches; empty selects ContrarianThinker.
func NewClassifier(fallbackID string) *Classifier {
	if fallbackID == "" {
		fallbackID = personality.ContrarianThinker
	}
	return &Classifier{taxonomy: Taxonomy(), fallbackID: fallbackID}
}

// Classify scores the message against every taxonomy entry and derives the
// stance opposing the detected user polarity. Callers guarantee the message
// is non-empty; the only fallback path here is "no entry matched".
func (c *Classifier) Classify(openingMessage string) Result {
	normalized := strings.ToLower(strings.TrimSpace(openingMessage))

	var best *Entry
	bestScore := 0
	for i := range c.taxonomy {
		entry := &c.taxonomy[i]
		score := 0
		for _, keyword := range entry.Keywords {
			if strings.Contains(normalized, keyword) {
				score += 3
			}
		}
		// Strictly greater keeps declaration order as the tie-break.
		if score > bestScore {
			best = entry
			bestScore = score
		}
	}

	if best == nil {
		return Result{
			Topic:         GeneralTopic,
			Stance:        fallbackStance(openingMessage),
			PersonalityID: c.fallbackID,
		}
	}

	stance := best.ContraStance
	if polarity(normalized) < 0 {
		stance = best.ProStance
	}
	return Result{Topic: best.Topic, Stance: stance, PersonalityID: best.PersonalityID}
}

// polarity returns >= 0 for supportive or ambiguous messages and < 0 when
// opposition cues dominate.
func polarity(normalized string) int {
	score := 0
	for _, marker := range supportMarkers {
		if strings.Contains(normalized, marker) {
			score++
		}
	}
	for _, marker := range opposeMarkers {
		if strings.Contains(normalized, marker) {
			score -= 2
		}
	}
	return score
}

// fallbackStance negates the literal proposition when no topic matched.
func fallbackStance(openingMessage string) string {
	snippet := strings.TrimSpace(openingMessage)
	if len(snippet) > 80 {
		snippet = strings.TrimSpace(snippet[:80])
	}
	return fmt.Sprintf("%q is a much weaker claim than it sounds, and the opposite is closer to the truth", snippet)
}
