// Package personality holds the closed set of rhetorical strategies the
// debate engine argues with. The set is fixed at compile time; there is no
// plugin loading.
package personality

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
)

// Device is a categorized persuasion tactic.
type Device string

const (
	DeviceFabricatedStatistic Device = "fabricated_statistic"
	DeviceAppealToDistrust    Device = "appeal_to_distrust"
	DeviceAnecdote            Device = "anecdote"
	DeviceCommonSenseAppeal   Device = "common_sense_appeal"
	DeviceCircularLogic       Device = "circular_logic"
	DeviceTopicPivot          Device = "topic_pivot"
)

// Personality identifiers. ContrarianThinker is the classifier fallback.
const (
	ConspiracyTheorist = "conspiracy_theorist"
	SkepticalScientist = "skeptical_scientist"
	PopulistDebater    = "populist_debater"
	ContrarianThinker  = "contrarian_thinker"
)

// Strategy is the capability surface a personality exposes to the
// synthesizer. Implementations are pure: the same inputs always give the
// same device and the same rendered text.
type Strategy interface {
	ID() string
	Name() string
	Style() string
	TopicAffinities() []string
	PreferredDevice(tier int, recentUserText string) Device
	RenderTemplate(device Device, stance string, exchange int, seed int64) string
}

// Seed derives the generator seed for one rendered turn. Keyed by session id
// and turn index so output varies across turns but replays identically.
func Seed(sessionID string, turnIndex int) int64 {
	h := fnv.New64a()
	h.Write([]byte(sessionID))
	return int64(h.Sum64() ^ uint64(turnIndex))
}

// strategy is the data-driven implementation behind every builtin
// personality: an ordered device preference per escalation band and a bank
// of templates per device.
type strategy struct {
	id         string
	name       string
	style      string
	affinities []string
	baseline   []Device // preference order at tiers 0-1
	escalated  []Device // preference order at tiers 2-3, unlocks circular_logic
	templates  map[Device][]string
}

func (s *strategy) ID() string                { return s.id }
func (s *strategy) Name() string              { return s.name }
func (s *strategy) Style() string             { return s.style }
func (s *strategy) TopicAffinities() []string { return s.affinities }

// PreferredDevice picks from the tier-gated preference list. The pick is a
// deterministic function of the recent user text so a turn is reproducible.
func (s *strategy) PreferredDevice(tier int, recentUserText string) Device {
	pool := s.baseline
	if tier >= 2 {
		pool = s.escalated
	}
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(recentUserText))))
	return pool[(int(h.Sum32()%uint32(len(pool)))+tier)%len(pool)]
}

// RenderTemplate fills a template with the stance and fabricated numeric
// details drawn from the seeded generator. The variant cycles with the
// exchange ordinal, so two consecutive exchanges on the same device never
// reuse the same phrasing.
func (s *strategy) RenderTemplate(device Device, stance string, exchange int, seed int64) string {
	bank, ok := s.templates[device]
	if !ok || len(bank) == 0 {
		bank = s.templates[DeviceCommonSenseAppeal]
	}

	if exchange < 0 {
		exchange = -exchange
	}
	text := bank[exchange%len(bank)]

	rng := rand.New(rand.NewSource(seed))

	sampleSize := 1200 + rng.Intn(23800)
	percentage := 55 + rng.Intn(41)
	pValue := 0.001 + rng.Float64()*0.048

	replacer := strings.NewReplacer(
		"{stance}", stance,
		"{n}", fmt.Sprintf("%d", sampleSize),
		"{pct}", fmt.Sprintf("%d", percentage),
		"{p}", fmt.Sprintf("%.3f", pValue),
	)
	return replacer.Replace(text)
}
