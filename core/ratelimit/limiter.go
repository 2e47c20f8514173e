package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter is a sliding-window request counter. At most MaxRequests calls to Wait
// return within any trailing Window.
type Limiter struct {
	maxRequests int
	window      time.Duration

	mu     sync.Mutex
	stamps []time.Time

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a limiter allowing maxRequests per window.
// A non-positive maxRequests disables limiting.
func New(maxRequests int, window time.Duration) *Limiter {
	return &Limiter{
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
		sleep:       sleepContext,
	}
}

// Wait blocks the calling goroutine until a request slot is free inside the window,
// then records the request. Other goroutines are not blocked while this one sleeps.
// It returns ctx.Err() if the context ends while waiting.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil || l.maxRequests <= 0 {
		return nil
	}

	for {
		l.mu.Lock()
		now := l.now()
		l.prune(now)

		if len(l.stamps) < l.maxRequests {
			l.stamps = append(l.stamps, now)
			l.mu.Unlock()
			return nil
		}

		wait := l.window - now.Sub(l.stamps[0])
		l.mu.Unlock()

		if wait > 0 {
			if err := l.sleep(ctx, wait); err != nil {
				return err
			}
		}
		// Re-check: another goroutine may have taken the freed slot.
	}
}

// Pending returns how many requests are currently counted inside the window.
func (l *Limiter) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prune(l.now())
	return len(l.stamps)
}

// prune drops timestamps older than now - window. Caller holds mu.
func (l *Limiter) prune(now time.Time) {
	cutoff := now.Add(-l.window)
	i := 0
	for i < len(l.stamps) && !l.stamps[i].After(cutoff) {
		i++
	}
	if i > 0 {
		l.stamps = append(l.stamps[:0], l.stamps[i:]...)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
