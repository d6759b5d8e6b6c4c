package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "banco:ratelimit:"

// RedisLimiter is a fixed-window counter shared by every replica.
type RedisLimiter struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
}

func NewRedisLimiter(client redis.Cmdable, limit int64, window time.Duration) *RedisLimiter {
	if window <= 0 {
		window = time.Second
	}
	return &RedisLimiter{client: client, limit: limit, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := redisKeyPrefix + key

	pipe := l.client.Pipeline()
	incrCmd := pipe.Incr(ctx, redisKey)
	ttlCmd := pipe.TTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("redis pipeline failed: %w", err)
	}

	count, err := incrCmd.Result()
	if err != nil {
		return false, fmt.Errorf("redis INCR failed: %w", err)
	}

	// TTL reports a negative duration when the key has no expiry yet.
	if ttl, err := ttlCmd.Result(); err == nil && ttl < 0 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("redis EXPIRE failed: %w", err)
		}
	}

	return count <= l.limit, nil
}
