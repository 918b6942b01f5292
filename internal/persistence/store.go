package persistence

import (
	"context"
	"sync"
)

// Store is a key/value backend for caller-supplied persistence.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// StoreCallbacks adapts a Store into the callback strategy, reading and
// writing a single value under key.
func StoreCallbacks(store Store, key string) *Callbacks {
	if key == "" {
		key = DefaultKey
	}
	return &Callbacks{
		Persist: func(ctx context.Context, name string) error {
			return store.Set(ctx, key, name)
		},
		Restore: func(ctx context.Context) (string, bool, error) {
			return store.Get(ctx, key)
		},
	}
}

// MapStore is a Store held in memory.
type MapStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMapStore returns an empty MapStore.
func NewMapStore() *MapStore {
	return &MapStore{values: make(map[string]string)}
}

// Get implements Store.
func (s *MapStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set implements Store.
func (s *MapStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[key] = value
	return nil
}
