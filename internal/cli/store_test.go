package cli

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStore(t *testing.T) {
	mr := miniredis.RunT(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		url  string
	}{
		{"memory", "memory:"},
		{"file", "file:" + filepath.Join(dir, "ns.yaml")},
		{"sqlite", "sqlite:" + filepath.Join(dir, "ns.db")},
		{"redis", "redis://" + mr.Addr() + "/0"},
		{"loam", "loam:" + filepath.Join(dir, "loam")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store, err := OpenStore(ctx, tt.url, 0)
			require.NoError(t, err)
			defer store.Close()

			require.NoError(t, store.Put(ctx, "dc", "http://purl.org/dc/elements/1.1/"))
			table, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, "http://purl.org/dc/elements/1.1/", table["dc"])
		})
	}
}

func TestOpenStore_Invalid(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"no scheme", "namespaces.yaml", "missing scheme"},
		{"unknown scheme", "postgres://localhost/ns", "unsupported scheme"},
		{"sqlite without path", "sqlite:", "missing database path"},
		{"loam without dir", "loam:", "missing directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OpenStore(context.Background(), tt.url, 0)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestOpenStore_LeaseOnlyForRedis(t *testing.T) {
	ctx := context.Background()

	for _, url := range []string{"memory:", "file:" + filepath.Join(t.TempDir(), "ns.yaml")} {
		_, err := OpenStore(ctx, url, time.Minute)
		assert.ErrorContains(t, err, "lease is only supported by redis", url)
	}

	mr := miniredis.RunT(t)
	store, err := OpenStore(ctx, "redis://"+mr.Addr()+"/0", time.Minute)
	require.NoError(t, err)
	assert.True(t, mr.Exists("nsutil:lock:operator"))
	require.NoError(t, store.Close())
}
