package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store defines the interface for session storage
type Store interface {
	// GetOrCreate resolves id to an existing session, or creates a fresh one
	// (with a server-generated id) when id is empty or unknown.
	GetOrCreate(ctx context.Context, id string) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Put(ctx context.Context, s *Session) error
}

// MemoryStore keeps sessions in a process-lifetime map. There is no eviction:
// a session lives until the process exits. Overlapping turns on the same id
// are not coordinated; last write wins.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore creates a new in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate returns the session for id, creating one when id is empty or unknown.
func (m *MemoryStore) GetOrCreate(ctx context.Context, id string) (*Session, error) {
	if id != "" {
		m.mu.RLock()
		s, ok := m.sessions[id]
		m.mu.RUnlock()
		if ok {
			return s, nil
		}
	}

	s := New(uuid.NewString())
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

// Get retrieves an existing session by id.
func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Put writes a session back. The memory store hands out live pointers, so
// this only refreshes the bookkeeping timestamp.
func (m *MemoryStore) Put(ctx context.Context, s *Session) error {
	s.UpdatedAt = time.Now().UTC()
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return nil
}

var _ Store = (*MemoryStore)(nil)
