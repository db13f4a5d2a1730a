package store

import (
	"container/list"
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/polemic-ai/polemic/internal/model/debate"
)

// DefaultCapacity bounds the in-memory store when no capacity is configured.
const DefaultCapacity = 1024

// Memory keeps sessions in a capacity-bounded map. When full, the least
// recently touched session is evicted; continuing an evicted conversation
// surfaces as ErrSessionNotFound, which the API maps to a client error.
type Memory struct {
	mu       sync.Mutex
	capacity int
	sessions map[string]*memoryEntry
	order    *list.List // front = most recently used

	lockMu sync.Mutex
	locks  map[string]*sessionLock
}

type memoryEntry struct {
	session debate.Session
	elem    *list.Element
}

// sessionLock is refcounted so an entry is only removed once no goroutine
// holds or waits on it. Eviction never touches locks: deleting a held mutex
// would let two turns for the same id run unserialized.
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// NewMemory returns a store holding at most capacity sessions.
func NewMemory(capacity int) *Memory {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Memory{
		capacity: capacity,
		sessions: make(map[string]*memoryEntry),
		order:    list.New(),
		locks:    make(map[string]*sessionLock),
	}
}

// NewID issues a fresh conversation identifier.
func (m *Memory) NewID() string {
	return uuid.NewString()
}

// Get returns a copy of the stored session and marks it recently used.
func (m *Memory) Get(_ context.Context, sessionID string) (debate.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[sessionID]
	if !ok {
		return debate.Session{}, ErrSessionNotFound
	}
	m.order.MoveToFront(entry.elem)
	return entry.session.Clone(), nil
}

// Put stores a copy of the session, evicting the least recently used entry
// once the capacity is exceeded.
func (m *Memory) Put(_ context.Context, sessionID string, session debate.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry, ok := m.sessions[sessionID]; ok {
		entry.session = session.Clone()
		m.order.MoveToFront(entry.elem)
		return nil
	}

	entry := &memoryEntry{session: session.Clone()}
	entry.elem = m.order.PushFront(sessionID)
	m.sessions[sessionID] = entry

	for len(m.sessions) > m.capacity {
		oldest := m.order.Back()
		if oldest == nil {
			break
		}
		evictedID := oldest.Value.(string)
		m.order.Remove(oldest)
		delete(m.sessions, evictedID)
	}
	return nil
}

// Lock acquires the per-session serialization scope. The entry stays alive
// until the last holder or waiter releases it, then it is reclaimed.
func (m *Memory) Lock(sessionID string) func() {
	m.lockMu.Lock()
	entry, ok := m.locks[sessionID]
	if !ok {
		entry = &sessionLock{}
		m.locks[sessionID] = entry
	}
	entry.refs++
	m.lockMu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		m.lockMu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(m.locks, sessionID)
		}
		m.lockMu.Unlock()
	}
}

// Len reports the number of retained sessions.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
