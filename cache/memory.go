package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// MemoryQueryCache implements QueryCache in process memory. It carries the
// same envelope semantics as the Redis implementation and backs tests and
// single-node deployments without a Redis instance.
type MemoryQueryCache struct {
	mu      sync.Mutex
	entries map[string]*entry
	active  map[string]struct{}
}

// NewMemoryQueryCache creates an empty in-memory QueryCache.
func NewMemoryQueryCache() *MemoryQueryCache {
	return &MemoryQueryCache{
		entries: make(map[string]*entry),
		active:  make(map[string]struct{}),
	}
}

func (c *MemoryQueryCache) put(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry %q: %w", key, err)
	}
	c.entries[key] = &entry{Data: data, FetchedAt: time.Now()}
	c.active[key] = struct{}{}
	return nil
}

// SetEntry stores a known-fresh value under the key.
func (c *MemoryQueryCache) SetEntry(_ context.Context, key string, value interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.put(key, value)
}

// GetOrFetch serves the cached value when fresh and lazily refetches otherwise.
func (c *MemoryQueryCache) GetOrFetch(ctx context.Context, key string, dest interface{}, fetch FetchFunc) error {
	c.mu.Lock()
	env, ok := c.entries[key]
	if ok && !env.Stale {
		c.active[key] = struct{}{}
		data := env.Data
		c.mu.Unlock()
		return json.Unmarshal(data, dest)
	}
	c.mu.Unlock()

	// Fetch outside the lock; a concurrent fetch for the same key is
	// harmless, the last writer wins.
	value, err := fetch(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	err = c.put(key, value)
	c.mu.Unlock()
	if err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal fetched value for %q: %w", key, err)
	}
	return json.Unmarshal(data, dest)
}

// Invalidate marks entries whose key matches the predicate as stale.
func (c *MemoryQueryCache) Invalidate(_ context.Context, pred func(key string) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, env := range c.entries {
		if pred(key) {
			env.Stale = true
		}
	}
	return nil
}

// InvalidateActive marks every registered active key stale.
func (c *MemoryQueryCache) InvalidateActive(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.active {
		if env, ok := c.entries[key]; ok {
			env.Stale = true
		}
	}
	return nil
}
