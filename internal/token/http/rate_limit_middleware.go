package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter enforces per-IP rate limiting using a token bucket via
// golang.org/x/time/rate. Each client IP gets an independent limiter.
// Stale limiters are evicted by a background goroutine; call Stop when
// the limiter is no longer needed.
type RateLimiter struct {
	limiters sync.Map // map[string]*rateLimiterEntry
	rps      float64
	burst    int
	logger   *slog.Logger
	stop     chan struct{}
	stopOnce sync.Once
}

// rateLimiterEntry holds a rate limiter and last access time for cleanup.
type rateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

// NewRateLimiter creates a per-IP rate limiter allowing rps requests per
// second with the given burst capacity and starts its cleanup goroutine.
func NewRateLimiter(rps float64, burst int, logger *slog.Logger) *RateLimiter {
	r := &RateLimiter{
		rps:    rps,
		burst:  burst,
		logger: logger,
		stop:   make(chan struct{}),
	}

	// Cleanup goroutine for stale limiters (every 5 minutes)
	go r.cleanupStale(5 * time.Minute)

	return r
}

// Middleware returns the gin handler enforcing the rate limit. Returns 429
// Too Many Requests with a Retry-After header when the limit is exceeded.
func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := r.getLimiter(c.ClientIP())

		if !limiter.Allow() {
			reservation := limiter.Reserve()
			retryAfter := int(reservation.Delay().Seconds())
			reservation.Cancel()

			r.logger.Debug("rate limit exceeded",
				slog.String("client_ip", c.ClientIP()),
				slog.Int("retry_after", retryAfter))

			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate_limit_exceeded",
				"message": "Too many requests. Please retry after the specified delay.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// Stop terminates the background cleanup goroutine. Safe to call more
// than once.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
}

// getLimiter retrieves or creates a rate limiter for a client IP.
func (r *RateLimiter) getLimiter(clientIP string) *rate.Limiter {
	if val, ok := r.limiters.Load(clientIP); ok {
		entry := val.(*rateLimiterEntry)
		entry.mu.Lock()
		entry.lastAccess = time.Now()
		entry.mu.Unlock()
		return entry.limiter
	}

	limiter := rate.NewLimiter(rate.Limit(r.rps), r.burst)
	entry := &rateLimiterEntry{
		limiter:    limiter,
		lastAccess: time.Now(),
	}

	r.limiters.Store(clientIP, entry)
	return limiter
}

// cleanupStale removes rate limiters that haven't been accessed recently.
// Runs periodically to prevent unbounded memory growth.
func (r *RateLimiter) cleanupStale(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			threshold := time.Now().Add(-1 * time.Hour)
			r.limiters.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimiterEntry)
				entry.mu.Lock()
				shouldDelete := entry.lastAccess.Before(threshold)
				entry.mu.Unlock()

				if shouldDelete {
					r.limiters.Delete(key)
				}
				return true
			})
		}
	}
}
