package limiter

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// addScript increments the counter and starts its expiry on the first
// attempt only, so the window is measured from that attempt.
var addScript = redis.NewScript(`
	local n = redis.call('INCR', KEYS[1])
	if n == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	return n
`)

// RedisStore shares attempt counters between instances.  Window expiry is
// enforced by Redis key TTLs, so the now arguments are ignored.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	length time.Duration
}

func NewRedisStore(rdb *redis.Client, prefix string, length time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix, length: length}
}

func (s *RedisStore) key(k string) string { return s.prefix + ":" + k }

func (s *RedisStore) Count(ctx context.Context, key string, _ time.Time) (int, error) {
	n, err := s.rdb.Get(ctx, s.key(key)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

func (s *RedisStore) Add(ctx context.Context, key string, _ time.Time) (int, error) {
	n, err := addScript.Run(ctx, s.rdb, []string{s.key(key)}, s.length.Milliseconds()).Int()
	return n, err
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, s.key(key)).Err()
}
