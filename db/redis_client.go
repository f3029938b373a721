package db

import (
	"context"
	"time"
)

// ErrCacheMiss is returned by Get when the key does not exist.
type cacheMissError struct{}

func (cacheMissError) Error() string { return "cache miss" }

var ErrCacheMiss error = cacheMissError{}

// RedisClient defines the cache operations the app depends on: session
// lookup, fixed-window rate limiting, and the hot map-listings cache.
type RedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Keys(ctx context.Context, pattern string) ([]string, error)
	// IncrWithExpire increments key and, on first increment, starts the
	// expiry window. Returns the post-increment count.
	IncrWithExpire(ctx context.Context, key string, window time.Duration) (int64, error)
	Ping(ctx context.Context) error
}
