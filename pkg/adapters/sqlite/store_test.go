package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aretw0/nsutil/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_Contract(t *testing.T) {
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "ns.db"))
	require.NoError(t, err)
	defer store.Close()

	ports.RunNamespaceStoreContract(t, store)
}

func TestSQLiteStore_InMemory(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put(ctx, "dc", "http://purl.org/dc/elements/1.1/"))
	table, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, table, 1)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sub", "ns.db")

	store, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "foo", "http://example.org/foo"))
	require.NoError(t, store.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	table, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/foo", table["foo"])
}
