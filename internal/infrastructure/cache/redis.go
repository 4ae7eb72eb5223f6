package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/safeglow/backend/internal/domain"
	"github.com/sethvargo/go-retry"
)

const keyPrefix = "safeglow:"

// RedisCache implements domain.CacheRepository on top of Redis. Values are
// stored as JSON.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis-backed cache from a redis:// URL. No
// connection is made until the first command or Ping.
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	return &RedisCache{client: redis.NewClient(opts)}, nil
}

// Ping verifies connectivity, retrying with Fibonacci backoff up to maxRetries times
func (c *RedisCache) Ping(ctx context.Context, maxRetries uint64) error {
	b := retry.WithMaxRetries(maxRetries, retry.NewFibonacci(200*time.Millisecond))

	return retry.Do(ctx, b, func(ctx context.Context) error {
		if err := c.client.Ping(ctx).Err(); err != nil {
			log.Printf("[Cache] Redis ping failed: %v", err)
			return retry.RetryableError(err)
		}
		return nil
	})
}

// Get retrieves and decodes a value from Redis
func (c *RedisCache) Get(ctx context.Context, key string) (interface{}, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("redis decode: %w", err)
	}
	return value, nil
}

// Set encodes value as JSON and stores it with the given TTL
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, keyPrefix+key, encoded, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes a key from Redis
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Exists reports whether a key is present in Redis
func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, keyPrefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists: %w", err)
	}
	return n > 0, nil
}

// Close releases the underlying connection pool
func (c *RedisCache) Close() error {
	return c.client.Close()
}
