package session

import (
	"context"
	"sync"
)

// MemoryStore keeps the session in process memory. Used by tests and one-shot runs.
type MemoryStore struct {
	mu sync.RWMutex
	s  *Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.s == nil {
		return nil, ErrSessionNotFound
	}
	cp := *m.s
	return &cp, nil
}

func (m *MemoryStore) Save(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = &s
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = nil
	return nil
}

func (m *MemoryStore) Close() error { return nil }
