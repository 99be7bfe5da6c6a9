package registry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/nsutil/pkg/adapters/memory"
	"github.com/aretw0/nsutil/pkg/domain"
	"github.com/aretw0/nsutil/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	*memory.Store
}

func (f failingStore) Put(ctx context.Context, prefix, uri string) error {
	return errors.New("disk full")
}

func TestRegistry_RegisterCommits(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	reg := registry.New(store)

	require.NoError(t, reg.Register(ctx, "dc", "http://purl.org/dc/elements/1.1/"))

	table, err := reg.Mappings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Table{"dc": "http://purl.org/dc/elements/1.1/"}, table)
}

func TestRegistry_RegisterRejectsMalformed(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	reg := registry.New(store)

	err := reg.Register(ctx, "not a prefix", "http://example.org/")
	require.ErrorIs(t, err, domain.ErrMalformedPrefix)

	table, err := reg.Mappings(ctx)
	require.NoError(t, err)
	assert.Empty(t, table, "a refused write must not reach the store")
}

func TestRegistry_CustomPolicy(t *testing.T) {
	ctx := context.Background()
	reg := registry.New(memory.NewStore(), registry.WithPolicy(domain.Policy{
		Builtins: map[string]string{"fedora": "http://fedora.info/definitions/v4/repository#"},
	}))

	err := reg.Register(ctx, "fedora", "http://example.org/other#")
	require.ErrorIs(t, err, domain.ErrBindingForbidden)

	// Defaults are replaced, not merged.
	require.NoError(t, reg.Register(ctx, "jcr", "http://example.org/jcr"))
}

func TestRegistry_StoreFailureIsRegistryError(t *testing.T) {
	reg := registry.New(failingStore{memory.NewStore()})

	err := reg.Register(context.Background(), "dc", "http://purl.org/dc/elements/1.1/")

	var regErr *domain.RegistryError
	require.True(t, errors.As(err, &regErr))
	assert.Equal(t, "dc", regErr.Prefix)
	assert.Contains(t, err.Error(), "disk full")
}
