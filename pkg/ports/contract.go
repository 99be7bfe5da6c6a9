package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunNamespaceStoreContract runs a suite of tests to verify that a NamespaceStore
// implementation adheres to the defined interface contract.
// The store must be empty when handed over.
func RunNamespaceStoreContract(t *testing.T, store NamespaceStore) {
	ctx := context.Background()

	t.Run("Load Empty", func(t *testing.T) {
		table, err := store.Load(ctx)
		require.NoError(t, err, "Load should not return error")
		assert.NotNil(t, table, "Load should return a non-nil table")
		assert.Empty(t, table)
	})

	t.Run("Put and Load", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "dc", "http://purl.org/dc/elements/1.1/"))
		require.NoError(t, store.Put(ctx, "foo", "http://example.org/foo"))

		table, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "http://purl.org/dc/elements/1.1/", table["dc"])
		assert.Equal(t, "http://example.org/foo", table["foo"])
		assert.Len(t, table, 2)
	})

	t.Run("Put Overwrites", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "foo", "http://example.org/foo/v2"))

		table, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "http://example.org/foo/v2", table["foo"])
		assert.Len(t, table, 2, "overwrite must not add a binding")
	})

	t.Run("Same URI Under Two Prefixes", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "dcelem", "http://purl.org/dc/elements/1.1/"))

		table, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, table["dc"], table["dcelem"])
	})

	t.Run("Load Returns Snapshot", func(t *testing.T) {
		table, err := store.Load(ctx)
		require.NoError(t, err)
		table["mutated"] = "urn:mutated"

		again, err := store.Load(ctx)
		require.NoError(t, err)
		assert.NotContains(t, again, "mutated", "mutating a loaded table must not write through")
	})
}
