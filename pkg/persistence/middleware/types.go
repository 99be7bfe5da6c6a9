package middleware

import "github.com/aretw0/nsutil/pkg/ports"

// Middleware allows wrapping a NamespaceStore to add behavior.
type Middleware func(ports.NamespaceStore) ports.NamespaceStore

// Chain applies mws to store. The first middleware is the outermost.
func Chain(store ports.NamespaceStore, mws ...Middleware) ports.NamespaceStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
