package middleware

import (
	"context"
	"sync"

	"github.com/aretw0/nsutil/pkg/domain"
	"github.com/aretw0/nsutil/pkg/ports"
)

type dryRunMiddleware struct {
	next ports.NamespaceStore

	mu      sync.RWMutex
	overlay domain.Table
}

// NewDryRunMiddleware creates a middleware that keeps writes in memory.
// Load returns the underlying table with the pending writes applied, so a run
// behaves as if it committed, but the wrapped store is never written.
func NewDryRunMiddleware() Middleware {
	return func(next ports.NamespaceStore) ports.NamespaceStore {
		return &dryRunMiddleware{
			next:    next,
			overlay: make(domain.Table),
		}
	}
}

func (m *dryRunMiddleware) Load(ctx context.Context) (domain.Table, error) {
	table, err := m.next.Load(ctx)
	if err != nil {
		return nil, err
	}
	if table == nil {
		table = make(domain.Table)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for prefix, uri := range m.overlay {
		table[prefix] = uri
	}
	return table, nil
}

func (m *dryRunMiddleware) Put(ctx context.Context, prefix, uri string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overlay[prefix] = uri
	return nil
}

func (m *dryRunMiddleware) Close() error {
	return m.next.Close()
}

// Pending returns the writes a dry-run store held back.
// It returns nil for stores not created by NewDryRunMiddleware.
func Pending(store ports.NamespaceStore) domain.Table {
	m, ok := store.(*dryRunMiddleware)
	if !ok {
		return nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.overlay.Clone()
}
