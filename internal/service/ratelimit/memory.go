package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count int64
	start time.Time
}

// MemoryLimiter keeps counters in process. Counts are not shared between
// instances, so it only fits single-instance and development setups.
type MemoryLimiter struct {
	mu      sync.Mutex
	opts    Options
	windows map[string]*window
	now     func() time.Time
}

func NewMemoryLimiter(opts Options) *MemoryLimiter {
	return &MemoryLimiter{
		opts:    opts.withDefaults(),
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.opts.Window {
		w = &window{start: now}
		l.windows[key] = w
	}

	// Rejected requests do not extend the count past the limit.
	if w.count < int64(l.opts.Max)+1 {
		w.count++
	}

	return newResult(w.count, l.opts, w.start.Add(l.opts.Window).Sub(now)), nil
}

// Sweep drops windows that have already expired.
func (l *MemoryLimiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, w := range l.windows {
		if now.Sub(w.start) >= l.opts.Window {
			delete(l.windows, key)
		}
	}
}

// StartJanitor sweeps expired windows until ctx is done.
func (l *MemoryLimiter) StartJanitor(ctx context.Context, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.Sweep()
			}
		}
	}()
}

func (l *MemoryLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}
