package utils

import (
	"context"
	"log"
	"time"

	"staywise/config"

	"github.com/go-redis/redis/v8"
)

var (
	// QueryCacheClient backs the reactive query cache.
	QueryCacheClient *redis.Client
	// AuthCacheClient is the dedicated client for auth session records.
	AuthCacheClient *redis.Client
)

// InitQueryCache initializes the Redis client backing the query cache.
func InitQueryCache() {
	QueryCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueryDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := QueryCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Query Cache): %v", err)
	}
}

// GetQueryCacheClient returns the query cache client.
func GetQueryCacheClient() *redis.Client {
	if QueryCacheClient == nil {
		InitQueryCache()
	}
	return QueryCacheClient
}

// InitAuthCache initializes the Redis client for auth session records.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for auth session records.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}
