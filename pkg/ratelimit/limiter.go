package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Result describes the outcome of a rate limit check.
type Result struct {
	// Allowed indicates whether the request is allowed.
	Allowed bool
	// Limit is the maximum number of requests allowed in the window.
	Limit int
	// Remaining is the number of requests left in the current window.
	Remaining int
	// ResetAt is when the current window ends.
	ResetAt time.Time
}

// RetryAfter returns how long to wait before the next request is allowed.
// Returns 0 if the current request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Limiter checks and consumes request quota per key.
type Limiter interface {
	// Allow checks if one request is allowed for the key and consumes a
	// slot when it is.
	Allow(ctx context.Context, key string) (*Result, error)
	// Reset clears the counter for the key.
	Reset(ctx context.Context, key string) error
}

type window struct {
	count   int
	resetAt time.Time
}

// FixedWindow is an in-memory fixed-window limiter. Safe for concurrent
// use.
type FixedWindow struct {
	limit    int
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	windows map[string]*window
}

// FixedWindowOption configures a FixedWindow.
type FixedWindowOption func(*FixedWindow)

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) FixedWindowOption {
	return func(fw *FixedWindow) {
		if now != nil {
			fw.now = now
		}
	}
}

// NewFixedWindow creates a limiter allowing limit requests per interval
// for each key.
func NewFixedWindow(limit int, interval time.Duration, opts ...FixedWindowOption) (*FixedWindow, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if interval <= 0 {
		return nil, ErrInvalidWindow
	}

	fw := &FixedWindow{
		limit:    limit,
		interval: interval,
		now:      time.Now,
		windows:  make(map[string]*window),
	}
	for _, opt := range opts {
		opt(fw)
	}
	return fw, nil
}

// Allow consumes one slot for the key if the window has capacity.
func (fw *FixedWindow) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	now := fw.now()

	fw.mu.Lock()
	defer fw.mu.Unlock()

	w, ok := fw.windows[key]
	if !ok || !now.Before(w.resetAt) {
		fw.pruneLocked(now)
		w = &window{resetAt: now.Add(fw.interval)}
		fw.windows[key] = w
	}

	allowed := w.count < fw.limit
	if allowed {
		w.count++
	}

	return &Result{
		Allowed:   allowed,
		Limit:     fw.limit,
		Remaining: max(0, fw.limit-w.count),
		ResetAt:   w.resetAt,
	}, nil
}

// Reset clears the counter for the key.
func (fw *FixedWindow) Reset(ctx context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	fw.mu.Lock()
	delete(fw.windows, key)
	fw.mu.Unlock()
	return nil
}

// pruneLocked drops expired windows so the map does not grow with one
// entry per client forever. Called while holding fw.mu, only on the slow
// path where a new window is being created.
func (fw *FixedWindow) pruneLocked(now time.Time) {
	for key, w := range fw.windows {
		if !now.Before(w.resetAt) {
			delete(fw.windows, key)
		}
	}
}
