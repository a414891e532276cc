package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"staywise/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "authSession:"

// SessionStore persists session records keyed by token hash.
type SessionStore interface {
	Save(ctx context.Context, tokenHash string, session models.StoreSession) error
	Get(ctx context.Context, tokenHash string) (*models.StoreSession, error)
	Delete(ctx context.Context, tokenHash string) error
}

// SessionCache implements SessionStore on Redis with a TTL matching the
// token lifetime.
type SessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionCache creates a SessionCache on the given Redis client.
func NewSessionCache(client *redis.Client, ttl time.Duration) *SessionCache {
	return &SessionCache{client: client, ttl: ttl}
}

// Save stores the session record under the token hash.
func (c *SessionCache) Save(ctx context.Context, tokenHash string, session models.StoreSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := c.client.Set(ctx, sessionKeyPrefix+tokenHash, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Get retrieves a session record, or (nil, nil) when none is stored.
func (c *SessionCache) Get(ctx context.Context, tokenHash string) (*models.StoreSession, error) {
	data, err := c.client.Get(ctx, sessionKeyPrefix+tokenHash).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var session models.StoreSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete removes a session record.
func (c *SessionCache) Delete(ctx context.Context, tokenHash string) error {
	return c.client.Del(ctx, sessionKeyPrefix+tokenHash).Err()
}
