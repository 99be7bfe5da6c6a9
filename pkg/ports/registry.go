package ports

import (
	"context"

	"github.com/aretw0/nsutil/pkg/domain"
)

// Registry is the namespace registry as consumed by the reconciliation workflow.
type Registry interface {
	// Mappings returns the current table, reflecting every committed Register.
	Mappings(ctx context.Context) (domain.Table, error)

	// Register binds prefix to uri and commits the change.
	// Refusals are returned as *domain.RegistryError.
	Register(ctx context.Context, prefix, uri string) error
}

// NamespaceStore defines the persistence underneath a Registry.
// Implementations perform no validation; the Registry enforces policy.
type NamespaceStore interface {
	// Load returns every stored binding. An empty store yields an empty, non-nil table.
	Load(ctx context.Context) (domain.Table, error)

	// Put stores (or overwrites) a single binding and commits it before returning.
	Put(ctx context.Context, prefix, uri string) error

	// Close releases the store's resources.
	Close() error
}
