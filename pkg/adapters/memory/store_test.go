package memory

import (
	"context"
	"testing"

	"github.com/aretw0/nsutil/pkg/domain"
	"github.com/aretw0/nsutil/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunNamespaceStoreContract(t, NewStore())
}

func TestMemoryStore_Seed(t *testing.T) {
	seed := domain.Table{"dc": "http://purl.org/dc/elements/1.1/"}
	store := NewStore(seed)

	seed["foo"] = "http://example.org/foo"

	table, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Table{"dc": "http://purl.org/dc/elements/1.1/"}, table)
}
