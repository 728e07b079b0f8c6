package limiter

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type window struct {
	count int
	first time.Time
}

// MemoryStore is a process-local Store with a hard bound on tracked
// addresses.  When full, expired windows are swept first and then the
// oldest window is evicted.
type MemoryStore struct {
	mu       sync.Mutex
	windows  map[string]*window
	length   time.Duration
	capacity int
}

// NewMemoryStore returns a store whose windows last length and which
// tracks at most capacity addresses.
func NewMemoryStore(length time.Duration, capacity int) *MemoryStore {
	if capacity < 1 {
		capacity = 1
	}
	return &MemoryStore{
		windows:  make(map[string]*window),
		length:   length,
		capacity: capacity,
	}
}

func (s *MemoryStore) expired(w *window, now time.Time) bool {
	return now.Sub(w.first) > s.length
}

func (s *MemoryStore) Count(_ context.Context, key string, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.windows[key]
	if !ok {
		return 0, nil
	}
	if s.expired(w, now) {
		delete(s.windows, key)
		return 0, nil
	}
	return w.count, nil
}

func (s *MemoryStore) Add(_ context.Context, key string, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.windows[key]; ok && !s.expired(w, now) {
		w.count++
		return w.count, nil
	}
	delete(s.windows, key)
	if len(s.windows) >= s.capacity {
		s.sweepLocked(now)
	}
	if len(s.windows) >= s.capacity {
		s.evictOldestLocked()
	}
	s.windows[key] = &window{count: 1, first: now}
	return 1, nil
}

func (s *MemoryStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.windows, key)
	s.mu.Unlock()
	return nil
}

// Len returns the number of tracked addresses.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}

// Sweep drops every expired window and returns how many were removed.
func (s *MemoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(now)
}

func (s *MemoryStore) sweepLocked(now time.Time) int {
	n := 0
	for k, w := range s.windows {
		if s.expired(w, now) {
			delete(s.windows, k)
			n++
		}
	}
	return n
}

func (s *MemoryStore) evictOldestLocked() {
	var (
		oldestKey string
		oldest    time.Time
		found     bool
	)
	for k, w := range s.windows {
		if !found || w.first.Before(oldest) {
			oldestKey, oldest, found = k, w.first, true
		}
	}
	if found {
		delete(s.windows, oldestKey)
	}
}

// StartJanitor sweeps expired windows every interval until ctx is done.
func (s *MemoryStore) StartJanitor(ctx context.Context, interval time.Duration, log *zap.Logger) {
	if interval <= 0 {
		interval = time.Minute
	}
	if log == nil {
		log = zap.NewNop()
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if n := s.Sweep(now); n > 0 {
					log.Debug("login limiter sweep", zap.Int("removed", n))
				}
			}
		}
	}()
}
