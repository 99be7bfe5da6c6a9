package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/nsutil/internal/logging"
	"github.com/aretw0/nsutil/pkg/domain"
	"github.com/aretw0/nsutil/pkg/ports"
)

// Registry enforces the namespace policy on top of a NamespaceStore.
// Every accepted Register is committed by the store before it returns.
type Registry struct {
	store  ports.NamespaceStore
	policy domain.Policy
	logger *slog.Logger
}

// Option configures the Registry.
type Option func(*Registry)

// WithPolicy replaces the default write policy.
func WithPolicy(p domain.Policy) Option {
	return func(r *Registry) {
		r.policy = p
	}
}

// WithLogger configures a logger for committed writes.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New creates a Registry backed by store.
func New(store ports.NamespaceStore, opts ...Option) *Registry {
	r := &Registry{
		store:  store,
		policy: domain.DefaultPolicy(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mappings returns a fresh snapshot of the store.
func (r *Registry) Mappings(ctx context.Context) (domain.Table, error) {
	table, err := r.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load namespaces: %w", err)
	}
	if table == nil {
		table = domain.Table{}
	}
	return table, nil
}

// Register validates the binding against the policy and commits it.
func (r *Registry) Register(ctx context.Context, prefix, uri string) error {
	if err := r.policy.Check(prefix, uri); err != nil {
		r.logger.Debug("Register refused", "prefix", prefix, "uri", uri, "err", err)
		return err
	}

	if err := r.store.Put(ctx, prefix, uri); err != nil {
		return &domain.RegistryError{
			Prefix: prefix,
			URI:    uri,
			Reason: "store write failed",
			Err:    err,
		}
	}

	r.logger.Info("Namespace registered", "prefix", prefix, "uri", uri)
	return nil
}

// Close releases the underlying store.
func (r *Registry) Close() error {
	return r.store.Close()
}
