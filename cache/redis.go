package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	entryKeyPrefix = "query:"
	activeSetKey   = "query:activeKeys"
	entryTTL       = 24 * time.Hour
)

// entry is the stored envelope around cached data.
type entry struct {
	Data      json.RawMessage `json:"data"`
	Stale     bool            `json:"stale"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

// RedisQueryCache implements QueryCache on Redis.
type RedisQueryCache struct {
	client *redis.Client
}

// NewRedisQueryCache creates a QueryCache on the given Redis client.
func NewRedisQueryCache(client *redis.Client) *RedisQueryCache {
	return &RedisQueryCache{client: client}
}

func entryKey(key string) string {
	return entryKeyPrefix + key
}

func (c *RedisQueryCache) writeEntry(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry %q: %w", key, err)
	}
	env := entry{Data: data, FetchedAt: time.Now()}
	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal cache envelope %q: %w", key, err)
	}
	if err := c.client.Set(ctx, entryKey(key), raw, entryTTL).Err(); err != nil {
		return fmt.Errorf("failed to store cache entry %q: %w", key, err)
	}
	return c.client.SAdd(ctx, activeSetKey, key).Err()
}

func (c *RedisQueryCache) readEntry(ctx context.Context, key string) (*entry, error) {
	raw, err := c.client.Get(ctx, entryKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cache entry %q: %w", key, err)
	}
	var env entry
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		// Corrupt envelope; treat as a miss so the read path refetches.
		return nil, nil
	}
	return &env, nil
}

// SetEntry stores a known-fresh value under the key.
func (c *RedisQueryCache) SetEntry(ctx context.Context, key string, value interface{}) error {
	return c.writeEntry(ctx, key, value)
}

// GetOrFetch serves the cached value when fresh and lazily refetches otherwise.
func (c *RedisQueryCache) GetOrFetch(ctx context.Context, key string, dest interface{}, fetch FetchFunc) error {
	env, err := c.readEntry(ctx, key)
	if err != nil {
		return err
	}
	if env != nil && !env.Stale {
		// Still register: a fresh hit means the key backs a rendered view.
		if err := c.client.SAdd(ctx, activeSetKey, key).Err(); err != nil {
			return err
		}
		return json.Unmarshal(env.Data, dest)
	}

	value, err := fetch(ctx)
	if err != nil {
		return err
	}
	if err := c.writeEntry(ctx, key, value); err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal fetched value for %q: %w", key, err)
	}
	return json.Unmarshal(data, dest)
}

// Invalidate marks entries whose key matches the predicate as stale.
func (c *RedisQueryCache) Invalidate(ctx context.Context, pred func(key string) bool) error {
	keys, err := c.client.Keys(ctx, entryKeyPrefix+"*").Result()
	if err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}
	for _, fullKey := range keys {
		if fullKey == activeSetKey {
			continue
		}
		key := strings.TrimPrefix(fullKey, entryKeyPrefix)
		if !pred(key) {
			continue
		}
		if err := c.markStale(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// InvalidateActive marks every registered active key stale.
func (c *RedisQueryCache) InvalidateActive(ctx context.Context) error {
	keys, err := c.client.SMembers(ctx, activeSetKey).Result()
	if err != nil {
		return fmt.Errorf("failed to list active cache keys: %w", err)
	}
	for _, key := range keys {
		if err := c.markStale(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func (c *RedisQueryCache) markStale(ctx context.Context, key string) error {
	env, err := c.readEntry(ctx, key)
	if err != nil {
		return err
	}
	if env == nil || env.Stale {
		return nil
	}
	env.Stale = true
	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal cache envelope %q: %w", key, err)
	}
	return c.client.Set(ctx, entryKey(key), raw, redis.KeepTTL).Err()
}
