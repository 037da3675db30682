// Package ratelimit gates requests behind a shared quota before they
// reach the handlers.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter decides whether a request may proceed. An error means the
// decision could not be made; callers must reject the request rather
// than fail open.
type Limiter interface {
	Check(ctx context.Context) (bool, error)
}

// FixedWindow is an in-process limiter with a single shared bucket:
// every request in the process draws from the same quota, regardless of
// user or client address.
type FixedWindow struct {
	mu          sync.Mutex
	limit       int
	window      time.Duration
	windowStart time.Time
	count       int

	now func() time.Time
}

func NewFixedWindow(limit int, window time.Duration) *FixedWindow {
	return &FixedWindow{
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

func (l *FixedWindow) Check(_ context.Context) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	if now.Sub(l.windowStart) >= l.window {
		l.windowStart = now
		l.count = 0
	}

	l.count++

	return l.count <= l.limit, nil
}
