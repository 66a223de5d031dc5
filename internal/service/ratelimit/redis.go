package ratelimit

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// RedisLimiter shares counters between every API instance using INCR with a window TTL.
type RedisLimiter struct {
	client *redis.Client
	opts   Options
}

func NewRedisLimiter(client *redis.Client, opts Options) *RedisLimiter {
	return &RedisLimiter{client: client, opts: opts.withDefaults()}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	k := keyPrefix + key

	count, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return Result{}, errors.Wrap(err, "unable to increment rate limit counter")
	}

	ttl, err := l.client.PTTL(ctx, k).Result()
	if err != nil {
		return Result{}, errors.Wrap(err, "unable to read rate limit ttl")
	}

	// A counter without TTL is either new or lost its expiry; start the window now.
	if count == 1 || ttl < 0 {
		if err := l.client.PExpire(ctx, k, l.opts.Window).Err(); err != nil {
			return Result{}, errors.Wrap(err, "unable to set rate limit window")
		}
		ttl = l.opts.Window
	}

	return newResult(count, l.opts, time.Duration(ttl)), nil
}
