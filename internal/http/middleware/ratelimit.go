package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	redisclient "github.com/lyftlogg/coach-backend/internal/clients/redis"
	"github.com/lyftlogg/coach-backend/internal/http/response"
	pkgerrors "github.com/lyftlogg/coach-backend/internal/pkg/errors"
	"github.com/lyftlogg/coach-backend/internal/pkg/logger"
)

// RateLimiter applies a per-client-IP sliding-window limit. The external
// counter store is preferred when available; any store error switches that
// request to the in-process window so rate limiting never takes the relay
// down with it.
type RateLimiter struct {
	log    *logger.Logger
	store  redisclient.CounterStore // nil when no external store is configured
	max    int
	window time.Duration

	mu    sync.Mutex
	local map[string][]time.Time
	now   func() time.Time
}

func NewRateLimiter(log *logger.Logger, store redisclient.CounterStore, max int, window time.Duration) *RateLimiter {
	if max <= 0 {
		max = 20
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		log:    log.With("middleware", "ratelimit"),
		store:  store,
		max:    max,
		window: window,
		local:  make(map[string][]time.Time),
		now:    time.Now,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.allow(c, ip) {
			response.AbortError(c, http.StatusTooManyRequests, "rate limited", pkgerrors.ErrRateLimited)
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(c *gin.Context, ip string) bool {
	if rl.store != nil {
		count, err := rl.store.Incr(c.Request.Context(), "coach:rl:"+ip, rl.window)
		if err == nil {
			return count <= int64(rl.max)
		}
		rl.log.Warn("Rate-limit store error, falling back to in-process window", "error", err.Error())
	}
	return rl.allowLocal(ip)
}

// allowLocal is the in-process sliding window: timestamps per IP, pruned to
// the window, appended before checking so concurrent requests are counted.
func (rl *RateLimiter) allowLocal(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)

	kept := rl.local[ip][:0]
	for _, t := range rl.local[ip] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	kept = append(kept, now)
	rl.local[ip] = kept

	return len(kept) <= rl.max
}
