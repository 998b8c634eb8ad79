package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const idleLimiterTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per client IP and Limit middleware.
type RateLimiter struct {
	limiters sync.Map // map[limiterKey]*entry
	stop     chan struct{}
	once     sync.Once
	now      func() time.Time
}

// budget identifies one Limit middleware. Buckets are keyed by its address,
// so two Limit calls with the same numbers still count separately.
type budget struct {
	every time.Duration
	burst int
}

type limiterKey struct {
	ip     string
	budget *budget
}

type entry struct {
	limiter *rate.Limiter

	mu       sync.Mutex
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{}), now: time.Now}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. It is safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware that allows maxPerMinute requests per IP, with
// a burst of the same size. Every call gets its own buckets, so a route
// limit nested inside the global one never drains it.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	b := &budget{every: time.Minute / time.Duration(maxPerMinute), burst: maxPerMinute}
	retryAfter := strconv.Itoa(int(b.every/time.Second) + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			e := rl.entryFor(limiterKey{ip: clientIP(r), budget: b})
			if !e.limiter.AllowN(rl.now(), 1) {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "rate_limited")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) entryFor(key limiterKey) *entry {
	val, ok := rl.limiters.Load(key)
	if !ok {
		val, _ = rl.limiters.LoadOrStore(key, &entry{
			limiter: rate.NewLimiter(rate.Every(key.budget.every), key.budget.burst),
		})
	}
	e := val.(*entry)
	e.mu.Lock()
	e.lastSeen = rl.now()
	e.mu.Unlock()
	return e
}

// clientIP strips the port from RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle()
		}
	}
}

func (rl *RateLimiter) evictIdle() {
	now := rl.now()
	rl.limiters.Range(func(key, value any) bool {
		e := value.(*entry)
		e.mu.Lock()
		idle := now.Sub(e.lastSeen)
		e.mu.Unlock()
		if idle > idleLimiterTTL {
			rl.limiters.Delete(key)
		}
		return true
	})
}
