package redis

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/lyftlogg/coach-backend/internal/pkg/logger"
)

// CounterStore is the external rate-limit counter: one atomic increment per
// request, with the key expiring after the window. The middleware falls back
// to an in-process map when any call here fails.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
	Close() error
}

type counterStore struct {
	log *logger.Logger
	rdb *goredis.Client
}

// NewCounterStore connects using RATE_LIMIT_REDIS_ADDR (falling back to
// REDIS_ADDR). A missing address is an error; the caller treats the store as
// unavailable and relies on the in-process fallback.
func NewCounterStore(log *logger.Logger) (CounterStore, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("RATE_LIMIT_REDIS_ADDR"))
	if addr == "" {
		addr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	}
	if addr == "" {
		return nil, fmt.Errorf("missing RATE_LIMIT_REDIS_ADDR")
	}

	opts := &goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	}
	if pw := strings.TrimSpace(os.Getenv("RATE_LIMIT_REDIS_PASSWORD")); pw != "" {
		opts.Password = pw
	}
	rdb := goredis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &counterStore{
		log: log.With("client", "RateLimitStore"),
		rdb: rdb,
	}, nil
}

// Incr is increment-then-check: the count is bumped atomically and the window
// expiry is attached only if the key has none, so concurrent requests from
// the same client never undercount.
func (s *counterStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	if s == nil || s.rdb == nil {
		return 0, fmt.Errorf("rate-limit store not initialized")
	}
	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (s *counterStore) Close() error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}
