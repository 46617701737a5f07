package memory

import (
	"context"
	"sync"

	"github.com/workwhisperer/timekeeper-backend-go/internal/kvstore"
)

// Store is an in-process key-value store. It backs the zero-config
// development mode and every service test.
type Store struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewStore() *Store {
	return &Store{blobs: make(map[string][]byte)}
}

func (s *Store) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.blobs[key]
	if !ok {
		return nil, kvstore.ErrKeyNotFound
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

func (s *Store) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	s.blobs[key] = cp
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}
