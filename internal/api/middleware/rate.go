package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"formgate/internal/api/dto/common"
	"formgate/internal/service"
	"formgate/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines configuration for the global rate limiter
type RateLimitConfig struct {
	// Requests per second
	RPS int
	// Burst size (number of requests that can be made in a single burst)
	Burst int
}

// RateLimitMiddleware creates a process-wide token-bucket limiter.
// It caps overall throughput; per-client fairness is handled by the
// IP limiter on the submission route.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(config.RPS), config.Burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			utils.HandleAPIError(c, service.ErrRateLimitExceeded, http.StatusTooManyRequests, common.ErrCodeRateLimit, "Rate limit exceeded. Please try again later.")
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.RPS))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))

		c.Next()
	}
}

// ipWindow tracks one client's request count inside the current window
type ipWindow struct {
	count       int
	windowStart time.Time
}

// IPRateLimiter is a fixed-window per-IP limiter. Entries are created
// lazily on first request and kept for the process lifetime; counts
// reset once the window elapses. State is process-local, so this is
// best-effort protection, not a security guarantee.
type IPRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*ipWindow
	limit   int
	window  time.Duration

	// now is swappable for tests
	now func() time.Time
}

// NewIPRateLimiter creates a limiter allowing limit requests per
// window per client
func NewIPRateLimiter(limit int, window time.Duration) *IPRateLimiter {
	return &IPRateLimiter{
		clients: make(map[string]*ipWindow),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Allow records a request for the client and reports whether it is
// within the limit
func (l *IPRateLimiter) Allow(clientIP string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.clients[clientIP]
	if !ok || now.Sub(entry.windowStart) >= l.window {
		l.clients[clientIP] = &ipWindow{count: 1, windowStart: now}
		return true
	}

	if entry.count >= l.limit {
		return false
	}
	entry.count++
	return true
}

// RetryAfter returns how long the client must wait before the window
// resets
func (l *IPRateLimiter) RetryAfter(clientIP string) time.Duration {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.clients[clientIP]
	if !ok {
		return 0
	}
	remaining := l.window - now.Sub(entry.windowStart)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IPRateLimitMiddleware rejects clients that exceed the fixed-window
// limit with 429 and a Retry-After header
func IPRateLimitMiddleware(limiter *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := utils.GetRealIP(c)

		if !limiter.Allow(clientIP) {
			retryAfter := limiter.RetryAfter(clientIP)
			c.Header("Retry-After", fmt.Sprintf("%d", int(retryAfter.Seconds())+1))
			utils.HandleAPIError(c, service.ErrRateLimitExceeded, http.StatusTooManyRequests, common.ErrCodeRateLimit, "Too many submissions. Please wait a minute and try again.")
			c.Abort()
			return
		}

		c.Next()
	}
}
