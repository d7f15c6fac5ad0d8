package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps sessions in process. Idle sessions expire after the TTL.
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &MemoryStore{cache: cache.New(ttl, 10*time.Minute)}
}

func (m *MemoryStore) Create(_ context.Context, s *Session) error {
	if err := m.cache.Add(s.ID.String(), s.clone(), cache.DefaultExpiration); err != nil {
		return fmt.Errorf("failed to create session %s: %w", s.ID, err)
	}
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id uuid.UUID) (*Session, error) {
	v, ok := m.cache.Get(id.String())
	if !ok {
		return nil, ErrNotFound
	}
	return v.(*Session).clone(), nil
}

// Save replaces a stored session and restarts its TTL
func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	if err := m.cache.Replace(s.ID.String(), s.clone(), cache.DefaultExpiration); err != nil {
		return ErrNotFound
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.cache.Get(id.String()); !ok {
		return ErrNotFound
	}
	m.cache.Delete(id.String())
	return nil
}

func (m *MemoryStore) Close() {}
