package redis

import (
	"context"
	"fmt"
	"time"

	"roomshare-server/db"
)

const RATE_LIMIT_KEY_FORMAT_V1 = "rate_v1:%s:%d"

// RateLimiter is a fixed-window request counter per caller.
type RateLimiter struct {
	client db.RedisClient
	limit  int64
	window time.Duration
}

func NewRateLimiter(client db.RedisClient, limitPerWindow int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, limit: int64(limitPerWindow), window: window}
}

// Allow counts a request for the caller and reports whether it is within
// the limit. When denied it also returns the seconds until the window
// rolls over, for the Retry-After header.
func (rl *RateLimiter) Allow(ctx context.Context, callerID string) (allowed bool, retryAfterSeconds int, err error) {
	windowStart := time.Now().Unix() / int64(rl.window.Seconds())
	key := fmt.Sprintf(RATE_LIMIT_KEY_FORMAT_V1, callerID, windowStart)

	count, err := rl.client.IncrWithExpire(ctx, key, rl.window)
	if err != nil {
		return false, 0, fmt.Errorf("rate limiter incr: %w", err)
	}
	if count > rl.limit {
		elapsed := time.Now().Unix() % int64(rl.window.Seconds())
		return false, int(int64(rl.window.Seconds()) - elapsed), nil
	}
	return true, 0, nil
}
