// Package ratelimit bounds how many requests a single client key may make per window.
package ratelimit

import (
	"context"
	"time"
)

const (
	DefaultMax    = 10
	DefaultWindow = time.Minute
)

type Options struct {
	Max    int
	Window time.Duration
}

func (o Options) withDefaults() Options {
	if o.Max < 1 {
		o.Max = DefaultMax
	}
	if o.Window <= 0 {
		o.Window = DefaultWindow
	}
	return o
}

type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter is a fixed-window counter keyed by client.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

func newResult(count int64, opts Options, resetIn time.Duration) Result {
	remaining := opts.Max - int(count)
	if remaining < 0 {
		remaining = 0
	}
	res := Result{
		Allowed:   count <= int64(opts.Max),
		Limit:     opts.Max,
		Remaining: remaining,
	}
	if !res.Allowed {
		res.RetryAfter = resetIn
	}
	return res
}
