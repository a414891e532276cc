package cache

import "context"

// FetchFunc loads fresh data for a query key from the remote store.
type FetchFunc func(ctx context.Context) (interface{}, error)

// QueryCache holds server-fetched data keyed by semantic query identity.
// The discipline is invalidate-then-lazily-refetch: mutation paths only mark
// entries stale, and the read path repopulates them. SetEntry is reserved for
// immediately-known-fresh data such as a just-authenticated user; booking
// mutation results must never be written through it.
type QueryCache interface {
	// SetEntry stores a known-fresh value under the key and registers the
	// key as active.
	SetEntry(ctx context.Context, key string, value interface{}) error
	// GetOrFetch decodes the cached value into dest when the entry is
	// fresh; otherwise it calls fetch, stores the result and decodes that.
	// The key is registered as active either way.
	GetOrFetch(ctx context.Context, key string, dest interface{}, fetch FetchFunc) error
	// Invalidate marks entries whose key matches the predicate as stale.
	// Data is kept; it just cannot be trusted until refetched.
	Invalidate(ctx context.Context, pred func(key string) bool) error
	// InvalidateActive marks every registered active key stale.
	InvalidateActive(ctx context.Context) error
}
