package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache implements a Redis-backed cache for multi-instance deployments.
// Expiration is delegated to Redis key TTLs.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// RedisConfig holds connection settings for a Redis cache backend.
type RedisConfig struct {
	Addr     string // host:port (e.g., "localhost:6379")
	Password string // empty if no auth
	DB       int    // database number
	Prefix   string // key prefix to isolate fontwell entries (e.g., "fontwell:")
}

// NewRedisCache connects to Redis and returns a cache backed by it.
// The connection is verified with a PING before returning.
func NewRedisCache(ctx context.Context, cfg RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisCache{client: client, prefix: cfg.Prefix}, nil
}

// Get retrieves a value from Redis.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value in Redis with the given TTL.
// A TTL of zero stores the key without expiration.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, data, ttl).Err()
}

// Delete removes a value from Redis.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Ensure RedisCache implements Cache.
var _ Cache = (*RedisCache)(nil)
