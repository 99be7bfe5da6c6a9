package middleware_test

import (
	"context"
	"testing"

	"github.com/aretw0/nsutil/pkg/adapters/memory"
	"github.com/aretw0/nsutil/pkg/domain"
	"github.com/aretw0/nsutil/pkg/persistence/middleware"
	"github.com/aretw0/nsutil/pkg/ports"
)

const dcURI = "http://purl.org/dc/elements/1.1/"

func TestDryRunMiddleware_Contract(t *testing.T) {
	store := middleware.Chain(memory.NewStore(), middleware.NewDryRunMiddleware())
	ports.RunNamespaceStoreContract(t, store)
}

func TestDryRunMiddleware_NeverWritesThrough(t *testing.T) {
	underlying := memory.NewStore(domain.Table{"dc": dcURI})
	store := middleware.NewDryRunMiddleware()(underlying)
	ctx := context.Background()

	if err := store.Put(ctx, "dc", "http://purl.org/dc/terms/"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Put(ctx, "foaf", "http://xmlns.com/foaf/0.1/"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// 1. The wrapped store sees pending writes.
	table, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if table["dc"] != "http://purl.org/dc/terms/" || table["foaf"] == "" {
		t.Fatalf("expected pending writes in table, got %v", table)
	}

	// 2. The underlying store does not.
	raw, err := underlying.Load(ctx)
	if err != nil {
		t.Fatalf("underlying Load failed: %v", err)
	}
	if len(raw) != 1 || raw["dc"] != dcURI {
		t.Fatalf("underlying store was modified: %v", raw)
	}

	pending := middleware.Pending(store)
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending writes, got %v", pending)
	}
}

func TestPending_NotDryRun(t *testing.T) {
	if p := middleware.Pending(memory.NewStore()); p != nil {
		t.Fatalf("expected nil, got %v", p)
	}
}

type closeCounter struct {
	ports.NamespaceStore
	closed int
}

func (c *closeCounter) Close() error {
	c.closed++
	return nil
}

func TestChain_OrderAndClose(t *testing.T) {
	inner := &closeCounter{NamespaceStore: memory.NewStore()}

	var order []string
	tag := func(name string) middleware.Middleware {
		return func(next ports.NamespaceStore) ports.NamespaceStore {
			order = append(order, name)
			return next
		}
	}

	store := middleware.Chain(inner, tag("outer"), tag("inner"), middleware.NewDryRunMiddleware())
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if len(order) != 2 || order[0] != "inner" || order[1] != "outer" {
		t.Fatalf("unexpected wrap order: %v", order)
	}
	if inner.closed != 1 {
		t.Fatalf("expected Close to reach the store once, got %d", inner.closed)
	}
}
