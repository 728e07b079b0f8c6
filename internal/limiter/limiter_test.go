package limiter

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestLimiterBlocksAfterMaxFailures(t *testing.T) {
	ctx := context.Background()
	clk := &clock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := New(NewMemoryStore(15*time.Minute, 100), 5, clk.now)

	for i := 0; i < 5; i++ {
		ok, err := l.Allow(ctx, "1.2.3.4")
		if err != nil || !ok {
			t.Fatalf("attempt %d blocked early (ok=%v err=%v)", i+1, ok, err)
		}
		_ = l.Fail(ctx, "1.2.3.4")
		clk.t = clk.t.Add(time.Minute)
	}
	if ok, _ := l.Allow(ctx, "1.2.3.4"); ok {
		t.Fatal("6th attempt inside the window allowed")
	}
	if ok, _ := l.Allow(ctx, "5.6.7.8"); !ok {
		t.Error("another address was blocked")
	}

	// the window counts from the first attempt, made 5 minutes ago
	clk.t = clk.t.Add(10*time.Minute + time.Second)
	if ok, _ := l.Allow(ctx, "1.2.3.4"); !ok {
		t.Error("attempt after the window blocked")
	}
}

func TestLimiterSucceedClears(t *testing.T) {
	ctx := context.Background()
	l := New(NewMemoryStore(time.Hour, 10), 2, nil)
	_ = l.Fail(ctx, "ip")
	_ = l.Fail(ctx, "ip")
	if ok, _ := l.Allow(ctx, "ip"); ok {
		t.Fatal("expected block")
	}
	_ = l.Succeed(ctx, "ip")
	if ok, _ := l.Allow(ctx, "ip"); !ok {
		t.Error("Succeed did not clear the address")
	}
}

type brokenStore struct{}

func (brokenStore) Count(context.Context, string, time.Time) (int, error) {
	return 0, errors.New("down")
}
func (brokenStore) Add(context.Context, string, time.Time) (int, error) { return 0, errors.New("down") }
func (brokenStore) Reset(context.Context, string) error                 { return errors.New("down") }

func TestLimiterStoreErrorAllows(t *testing.T) {
	ok, err := New(brokenStore{}, 5, nil).Allow(context.Background(), "ip")
	if err == nil || !ok {
		t.Errorf("got ok=%v err=%v, want allowed with error", ok, err)
	}
}

func TestMemoryStoreWindowRestarts(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Minute, 10)

	_, _ = s.Add(ctx, "k", start)
	n, _ := s.Add(ctx, "k", start.Add(30*time.Second))
	if n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
	if n, _ := s.Count(ctx, "k", start.Add(time.Minute)); n != 2 {
		t.Errorf("count at window edge = %d, want 2", n)
	}
	n, _ = s.Add(ctx, "k", start.Add(61*time.Second))
	if n != 1 {
		t.Errorf("count after expiry = %d, want a fresh window", n)
	}
}

func TestMemoryStoreCapacity(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Hour, 3)

	for i := 0; i < 3; i++ {
		_, _ = s.Add(ctx, fmt.Sprintf("ip%d", i), start.Add(time.Duration(i)*time.Second))
	}
	_, _ = s.Add(ctx, "ip3", start.Add(10*time.Second))

	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	if n, _ := s.Count(ctx, "ip0", start.Add(11*time.Second)); n != 0 {
		t.Error("oldest window was not evicted")
	}
	if n, _ := s.Count(ctx, "ip3", start.Add(11*time.Second)); n != 1 {
		t.Error("new window missing")
	}
}

func TestMemoryStoreCapacityPrefersExpired(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Minute, 2)

	_, _ = s.Add(ctx, "old", start)
	_, _ = s.Add(ctx, "live", start.Add(90*time.Second))
	_, _ = s.Add(ctx, "new", start.Add(100*time.Second))

	if n, _ := s.Count(ctx, "live", start.Add(100*time.Second)); n != 1 {
		t.Error("live window evicted while an expired one was available")
	}
}

func TestMemoryStoreSweep(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Minute, 10)
	_, _ = s.Add(ctx, "a", start)
	_, _ = s.Add(ctx, "b", start.Add(50*time.Second))

	if n := s.Sweep(start.Add(70 * time.Second)); n != 1 {
		t.Errorf("Sweep removed %d, want 1", n)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestJanitorStopsWithContext(t *testing.T) {
	s := NewMemoryStore(time.Millisecond, 10)
	_, _ = s.Add(context.Background(), "a", time.Now().Add(-time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	s.StartJanitor(ctx, 5*time.Millisecond, nil)
	deadline := time.Now().Add(2 * time.Second)
	for s.Len() != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	if s.Len() != 0 {
		t.Error("janitor did not sweep the expired window")
	}
}
