package session

import (
	"context"
	"sync"
	"time"

	"movie-catalog/internal/model"
	"movie-catalog/internal/utils"
)

type memoryEntry struct {
	user      model.User
	expiresAt time.Time
}

// MemoryStore is a process-local Store used when Redis is unavailable and in
// tests. Expired entries are dropped lazily on lookup.
type MemoryStore struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, m: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Create(_ context.Context, u model.User) (string, error) {
	token := utils.NewSessionToken()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[token] = memoryEntry{user: u, expiresAt: time.Now().Add(s.ttl)}
	return token, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.m[token]
	if !ok {
		return model.User{}, ErrNoSession
	}
	if time.Now().After(e.expiresAt) {
		delete(s.m, token)
		return model.User{}, ErrNoSession
	}
	return e.user, nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[token]; !ok {
		return ErrNoSession
	}
	delete(s.m, token)
	return nil
}
