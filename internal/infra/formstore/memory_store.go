package formstore

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/convertia/internal/domain/form"
)

type sessionRecord struct {
	payload   form.Session
	expiresAt time.Time
}

// MemoryStore is an in-memory implementation of the form store for tests/dev.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]sessionRecord
	now      func() time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]sessionRecord),
		now:      time.Now,
	}
}

// Load implements form.Store.
func (s *MemoryStore) Load(_ context.Context, id string) (form.Session, bool, error) {
	s.mu.RLock()
	record, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return form.Session{}, false, nil
	}
	if s.hasExpired(record.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return form.Session{}, false, nil
	}
	return record.payload, true, nil
}

// Save stores the session with optional TTL.
func (s *MemoryStore) Save(_ context.Context, session form.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = s.now().Add(ttl)
	}
	s.sessions[session.ID] = sessionRecord{payload: session, expiresAt: exp}
	s.sweepLocked()
	return nil
}

// Delete removes a session; unknown ids are ignored.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

// size reports the number of live sessions.
func (s *MemoryStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	return len(s.sessions)
}

func (s *MemoryStore) sweepLocked() {
	for id, record := range s.sessions {
		if s.hasExpired(record.expiresAt) {
			delete(s.sessions, id)
		}
	}
}

func (s *MemoryStore) hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(s.now())
}

var _ form.Store = (*MemoryStore)(nil)
