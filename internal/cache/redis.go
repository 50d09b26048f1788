package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient wraps the go-redis client with the helpers the fetcher
// needs. A nil *RedisClient is valid and behaves as cache-off, so callers
// never branch on availability.
type RedisClient struct {
	client *redis.Client
}

// New connects using a redis URL (redis://host:port/db). An empty URL
// returns a nil client, which disables caching.
func New(url string) (*RedisClient, error) {
	if url == "" {
		return nil, nil
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return &RedisClient{client: client}, nil
}

// Get retrieves a value; the second return is false on miss, error, or
// when caching is disabled.
func (r *RedisClient) Get(ctx context.Context, key string) (string, bool) {
	if r == nil {
		return "", false
	}
	v, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

// Set stores a key with TTL, best-effort.
func (r *RedisClient) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if r == nil {
		return
	}
	_ = r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisClient) Close() error {
	if r == nil {
		return nil
	}
	return r.client.Close()
}
