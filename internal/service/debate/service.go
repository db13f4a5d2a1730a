// Package debate coordinates the conversation lifecycle: classification on
// the first turn, rebuttal synthesis on every turn, history trimming and
// persistence through the conversation store.
package debate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/polemic-ai/polemic/internal/analysis/topic"
	model "github.com/polemic-ai/polemic/internal/model/debate"
	"github.com/polemic-ai/polemic/internal/model/personality"
	"github.com/polemic-ai/polemic/internal/store"
)

// ErrSessionNotFound mirrors the store sentinel so handlers can match it
// without importing the store package.
var ErrSessionNotFound = store.ErrSessionNotFound

// DefaultMaxExchanges retains five user/bot pairs per session.
const DefaultMaxExchanges = 5

// TurnView is one turn in the shape the presentation layer exposes.
type TurnView struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

// ChatResult is the outcome of one debate turn.
type ChatResult struct {
	ConversationID string     `json:"conversationId"`
	Exchange       []TurnView `json:"exchange"`
}

// Service is the debate orchestrator.
type Service struct {
	store        store.Store
	classifier   *topic.Classifier
	synth        *Synthesizer
	maxExchanges int
}

// NewService wires the orchestrator. maxExchanges < 1 falls back to the
// default window of five exchanges.
func NewService(st store.Store, classifier *topic.Classifier, catalog *personality.Catalog, maxExchanges int) *Service {
	if maxExchanges < 1 {
		maxExchanges = DefaultMaxExchanges
	}
	return &Service{
		store:        st,
		classifier:   classifier,
		synth:        NewSynthesizer(catalog),
		maxExchanges: maxExchanges,
	}
}

// Chat dispatches a turn: an empty conversation id starts a session, any
// other id continues one.
func (s *Service) Chat(ctx context.Context, conversationID, message string) (ChatResult, error) {
	if conversationID == "" {
		return s.StartSession(ctx, message)
	}
	return s.ContinueSession(ctx, conversationID, message)
}

// StartSession classifies the opening message, fixes topic, stance and
// personality for the session's lifetime, produces the first rebuttal and
// persists the new session.
func (s *Service) StartSession(ctx context.Context, message string) (ChatResult, error) {
	id := s.store.NewID()
	unlock := s.store.Lock(id)
	defer unlock()

	assigned := s.classifier.Classify(message)
	session := model.NewSession(id, assigned.Topic, assigned.Stance, assigned.PersonalityID, time.Now().UTC())

	if err := s.takeTurn(&session, message); err != nil {
		return ChatResult{}, err
	}
	if err := s.store.Put(ctx, id, session); err != nil {
		return ChatResult{}, fmt.Errorf("persist session %s: %w", id, err)
	}
	return result(session), nil
}

// ContinueSession loads an existing session, appends the exchange, trims the
// history window and writes the session back. The load-modify-store span is
// serialized per session id by the store lock.
func (s *Service) ContinueSession(ctx context.Context, conversationID, message string) (ChatResult, error) {
	unlock := s.store.Lock(conversationID)
	defer unlock()

	session, err := s.store.Get(ctx, conversationID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return ChatResult{}, err
		}
		return ChatResult{}, fmt.Errorf("load session %s: %w", conversationID, err)
	}

	if err := s.takeTurn(&session, message); err != nil {
		return ChatResult{}, err
	}
	if err := s.store.Put(ctx, conversationID, session); err != nil {
		return ChatResult{}, fmt.Errorf("persist session %s: %w", conversationID, err)
	}
	return result(session), nil
}

// takeTurn appends the user turn, synthesizes the rebuttal against the
// updated snapshot, applies the escalation outcome and trims the window.
func (s *Service) takeTurn(session *model.Session, message string) error {
	session.Append(model.RoleUser, message, time.Now().UTC())

	synthesis, err := s.synth.Synthesize(*session, message)
	if err != nil {
		return err
	}

	session.EscalationTier = synthesis.Tier
	session.Tier3Streak = synthesis.Tier3Streak
	session.Append(model.RoleBot, synthesis.Text, time.Now().UTC())
	session.Trim(s.maxExchanges)
	return nil
}

// result exposes the full retained history, oldest first.
func result(session model.Session) ChatResult {
	exchange := make([]TurnView, 0, len(session.History))
	for _, turn := range session.History {
		exchange = append(exchange, TurnView{Role: string(turn.Role), Message: turn.Text})
	}
	return ChatResult{ConversationID: session.ID, Exchange: exchange}
}
