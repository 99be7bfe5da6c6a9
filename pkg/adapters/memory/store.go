package memory

import (
	"context"
	"sync"

	"github.com/aretw0/nsutil/pkg/domain"
)

// Store implements ports.NamespaceStore in memory.
// Safe for concurrent use.
type Store struct {
	data domain.Table
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store, optionally seeded with bindings.
func NewStore(seed ...domain.Table) *Store {
	s := &Store{data: make(domain.Table)}
	for _, t := range seed {
		for k, v := range t {
			s.data[k] = v
		}
	}
	return s
}

// Load returns a copy so callers can't mutate the store through the map.
func (s *Store) Load(ctx context.Context) (domain.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone(), nil
}

// Put stores the binding.
func (s *Store) Put(ctx context.Context, prefix, uri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[prefix] = uri
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}
