// Package limiter throttles admin login attempts per client address.
//
// An address may make Max attempts inside a window that starts at its
// first attempt.  Once the window has elapsed the next attempt starts a
// new one.  A successful login clears the address.
package limiter

import (
	"context"
	"time"
)

// Store keeps attempt counters.  Implementations own the window length.
type Store interface {
	// Count returns the attempts recorded for key in its live window, or
	// zero when there is none.
	Count(ctx context.Context, key string, now time.Time) (int, error)
	// Add records one attempt, opening a new window when none is live, and
	// returns the updated count.
	Add(ctx context.Context, key string, now time.Time) (int, error)
	// Reset forgets key.
	Reset(ctx context.Context, key string) error
}

// Limiter applies the attempt ceiling on top of a Store.
type Limiter struct {
	store Store
	max   int
	now   func() time.Time
}

// New returns a limiter allowing max attempts per window.  now may be nil
// for time.Now.
func New(store Store, max int, now func() time.Time) *Limiter {
	if now == nil {
		now = time.Now
	}
	if max < 1 {
		max = 1
	}
	return &Limiter{store: store, max: max, now: now}
}

// Allow reports whether key may attempt a login now.  On a store error
// the caller decides; the returned bool is then true.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	n, err := l.store.Count(ctx, key, l.now())
	if err != nil {
		return true, err
	}
	return n < l.max, nil
}

// Fail records a failed attempt.
func (l *Limiter) Fail(ctx context.Context, key string) error {
	_, err := l.store.Add(ctx, key, l.now())
	return err
}

// Succeed clears key after a successful login.
func (l *Limiter) Succeed(ctx context.Context, key string) error {
	return l.store.Reset(ctx, key)
}
