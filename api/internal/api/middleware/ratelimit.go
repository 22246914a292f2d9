package middleware

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

// RateLimiter is an in-memory token bucket per client IP.
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	visitors sync.Map // ip -> *visitor
}

// NewRateLimiter starts an eviction loop that runs until ctx is cancelled.
func NewRateLimiter(ctx context.Context, limit rate.Limit, burst int) *RateLimiter {
	rl := &RateLimiter{
		limit:   limit,
		burst:   burst,
		idleTTL: 3 * time.Minute,
	}
	go rl.cleanupVisitors(ctx)
	return rl
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(clientIP(r)) {
			w.Header().Set("Retry-After", "1")
			http.Error(w, `{"message": "Rate limit exceeded"}`, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Allow consumes one token for ip.
func (rl *RateLimiter) Allow(ip string) bool {
	v, _ := rl.visitors.LoadOrStore(ip, &visitor{
		limiter:  rate.NewLimiter(rl.limit, rl.burst),
		lastSeen: time.Now(),
	})
	vis := v.(*visitor)

	vis.mu.Lock()
	vis.lastSeen = time.Now()
	vis.mu.Unlock()

	return vis.limiter.Allow()
}

func (rl *RateLimiter) cleanupVisitors(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.evictIdle(time.Now())
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.visitors.Range(func(key, value any) bool {
		vis := value.(*visitor)
		vis.mu.Lock()
		idle := now.Sub(vis.lastSeen) > rl.idleTTL
		vis.mu.Unlock()
		if idle {
			rl.visitors.Delete(key)
		}
		return true
	})
}

// clientIP relies on chi's RealIP middleware having rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
