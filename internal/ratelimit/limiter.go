package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter implements sliding window rate limiting using Redis. A single
// limiter instance is safe to share across server processes; the window
// state lives entirely in Redis.
type Limiter struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
}

func NewLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *Limiter {
	return &Limiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

// slidingWindow removes entries older than the window, counts the rest, and
// records the request if under the limit. Runs as a single Lua script so
// concurrent checks cannot interleave.
var slidingWindow = redis.NewScript(`
	local key = KEYS[1]
	local now = tonumber(ARGV[1])
	local window_start = tonumber(ARGV[2])
	local limit = tonumber(ARGV[3])
	local window_ms = tonumber(ARGV[4])

	redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)

	local current = redis.call('ZCARD', key)
	if current < limit then
		local counter = redis.call('INCR', key .. ':counter')
		redis.call('ZADD', key, now, now .. ':' .. counter)
		local expire_seconds = math.ceil(window_ms / 1000)
		redis.call('EXPIRE', key, expire_seconds)
		redis.call('EXPIRE', key .. ':counter', expire_seconds)
		return 1
	end
	return 0
`)

// Allow reports whether a request under the given key is within the limit,
// recording it when allowed.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()
	redisKey := l.prefix + key

	allowed, err := slidingWindow.Run(ctx, l.client,
		[]string{redisKey},
		now.UnixMilli(),
		now.Add(-l.window).UnixMilli(),
		l.limit,
		l.window.Milliseconds(),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("redis script error: %w", err)
	}

	return allowed == 1, nil
}

// Reset clears the rate limit for a specific key.
func (l *Limiter) Reset(ctx context.Context, key string) error {
	redisKey := l.prefix + key
	return l.client.Del(ctx, redisKey, redisKey+":counter").Err()
}
