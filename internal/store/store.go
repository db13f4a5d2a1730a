// Package store owns conversation persistence. The engine talks to it
// through a narrow read/write contract and treats a turn's load-modify-store
// as one logical transaction, serialized per session via Lock.
package store

import (
	"context"
	"errors"

	"github.com/polemic-ai/polemic/internal/model/debate"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrStoreUnavailable = errors.New("conversation store unavailable")
)

// Store is the conversation repository contract. Implementations must give
// atomic visibility of a session's full state to any reader; ordering is
// only guaranteed within one session, never across sessions.
type Store interface {
	// NewID issues an identifier that is never reused.
	NewID() string
	// Get returns a copy of the session or ErrSessionNotFound.
	Get(ctx context.Context, sessionID string) (debate.Session, error)
	// Put writes the session state, replacing any previous version.
	Put(ctx context.Context, sessionID string, session debate.Session) error
	// Lock serializes turns for one session id. The returned func releases
	// the scope; concurrent turns for different sessions never contend.
	Lock(sessionID string) (unlock func())
}
