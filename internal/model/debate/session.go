package debate

import "time"

// Session captures one ongoing debate. Topic, Stance and PersonalityID are
// assigned on the first turn and never change afterwards; EscalationTier only
// ever goes up. TotalTurns counts every turn ever appended and is never
// reduced by trimming, so it stays usable as a per-turn generator key after
// the history window caps.
type Session struct {
	ID             string    `json:"id"`
	Topic          string    `json:"topic"`
	Stance         string    `json:"stance"`
	PersonalityID  string    `json:"personalityId"`
	EscalationTier int       `json:"escalationTier"`
	Tier3Streak    int       `json:"tier3Streak"`
	TotalTurns     int       `json:"totalTurns"`
	History        []Turn    `json:"history"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewSession builds a session with the classification result fixed for its
// whole lifetime.
func NewSession(id, topic, stance, personalityID string, createdAt time.Time) Session {
	return Session{
		ID:            id,
		Topic:         topic,
		Stance:        stance,
		PersonalityID: personalityID,
		History:       make([]Turn, 0, 16),
		CreatedAt:     createdAt,
	}
}

// Append adds a turn to the history and advances the lifetime turn counter.
func (s *Session) Append(role Role, text string, at time.Time) {
	s.History = append(s.History, Turn{Role: role, Text: text, Timestamp: at})
	s.TotalTurns++
}

// LastBotTurn returns the most recent bot turn, if any.
func (s *Session) LastBotTurn() (Turn, bool) {
	for i := len(s.History) - 1; i >= 0; i-- {
		if s.History[i].Role == RoleBot {
			return s.History[i], true
		}
	}
	return Turn{}, false
}

// Trim drops the oldest turns so that at most maxExchanges user/bot pairs
// remain. Eviction is FIFO; the most recent exchanges always survive.
func (s *Session) Trim(maxExchanges int) {
	if maxExchanges < 1 {
		return
	}
	limit := maxExchanges * 2
	if excess := len(s.History) - limit; excess > 0 {
		s.History = append(s.History[:0:0], s.History[excess:]...)
	}
}

// Clone returns a copy whose history does not alias the receiver's.
func (s Session) Clone() Session {
	cloned := s
	cloned.History = append([]Turn(nil), s.History...)
	return cloned
}
