// Package redis
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter is a fixed-window counter: at most limit attempts per key per
// window.
type LoginLimiter struct {
	redis  *redis.Client
	limit  int
	window time.Duration
}

func NewLoginLimiter(r *redis.Client, limit int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{redis: r, limit: limit, window: window}
}

func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := "login_attempts:" + key

	count, err := l.redis.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("limiter incr failed: %w", err)
	}

	if count == 1 {
		if err := l.redis.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("limiter expire failed: %w", err)
		}
	}

	return count <= int64(l.limit), nil
}
