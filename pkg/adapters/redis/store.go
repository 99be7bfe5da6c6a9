package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/nsutil/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.NamespaceStore using a Redis hash.
type Store struct {
	client   *backend.Client
	prefix   string
	leaseTTL time.Duration
	lease    *Lease
}

type Option func(*Store)

// WithPrefix sets the key prefix for the namespace hash.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithLease makes Open claim an operator lease with the given TTL,
// so a second operator against the same registry is turned away.
// Every Load and Put renews the lease; an idle session longer than ttl loses
// it, and the next call fails with ErrLeaseLost.
func WithLease(ttl time.Duration) Option {
	return func(s *Store) {
		s.leaseTTL = ttl
	}
}

// Open connects to the Redis server described by url (redis://[:password@]host:port/db).
func Open(ctx context.Context, url string, opts ...Option) (*Store, error) {
	o, err := backend.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := backend.NewClient(o)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", o.Addr, err)
	}

	store, err := NewFromClient(ctx, client, opts...)
	if err != nil {
		client.Close()
		return nil, err
	}
	return store, nil
}

// NewFromClient creates a store from an existing client.
func NewFromClient(ctx context.Context, client *backend.Client, opts ...Option) (*Store, error) {
	store := &Store{
		client: client,
		prefix: "nsutil:",
	}
	for _, opt := range opts {
		opt(store)
	}

	if store.leaseTTL > 0 {
		lease, err := NewLocker(client, store.prefix).TryLease(ctx, "operator", store.leaseTTL)
		if err != nil {
			return nil, err
		}
		store.lease = lease
	}
	return store, nil
}

func (s *Store) key() string {
	return s.prefix + "namespaces"
}

func (s *Store) renew(ctx context.Context) error {
	if s.lease == nil {
		return nil
	}
	if err := s.lease.Renew(ctx); err != nil {
		return fmt.Errorf("operator lease: %w", err)
	}
	return nil
}

// Load reads the whole namespace hash.
func (s *Store) Load(ctx context.Context) (domain.Table, error) {
	if err := s.renew(ctx); err != nil {
		return nil, err
	}
	vals, err := s.client.HGetAll(ctx, s.key()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read from redis: %w", err)
	}
	table := make(domain.Table, len(vals))
	for k, v := range vals {
		table[k] = v
	}
	return table, nil
}

// Put writes a single field. Redis applies it immediately.
func (s *Store) Put(ctx context.Context, prefix, uri string) error {
	if err := s.renew(ctx); err != nil {
		return err
	}
	if err := s.client.HSet(ctx, s.key(), prefix, uri).Err(); err != nil {
		return fmt.Errorf("failed to write to redis: %w", err)
	}
	return nil
}

// Close releases the operator lease (if any) and closes the client.
func (s *Store) Close() error {
	if s.lease != nil {
		// Best effort; the TTL reclaims the lease anyway.
		_ = s.lease.Release(context.Background())
		s.lease = nil
	}
	return s.client.Close()
}
