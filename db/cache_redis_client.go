package db

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// CacheRedisClient implements RedisClient on top of go-redis.
type CacheRedisClient struct {
	client *redis.Client
}

// NewCacheRedisClient wraps an initialized go-redis client.
func NewCacheRedisClient(client *redis.Client) *CacheRedisClient {
	return &CacheRedisClient{client: client}
}

func (r *CacheRedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

func (r *CacheRedisClient) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *CacheRedisClient) Del(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (r *CacheRedisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	keys, err := r.client.Keys(ctx, pattern).Result()
	if err != nil {
		return nil, fmt.Errorf("redis keys %s: %w", pattern, err)
	}
	return keys, nil
}

func (r *CacheRedisClient) IncrWithExpire(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incr %s: %w", key, err)
	}
	if count == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return count, fmt.Errorf("redis expire %s: %w", key, err)
		}
	}
	return count, nil
}

func (r *CacheRedisClient) Ping(ctx context.Context) error {
	if _, err := r.client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}
