package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiterFixedWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewIPRateLimiter(3, time.Minute)
	limiter.now = func() time.Time { return now }

	// First three requests in the window pass, the fourth is rejected
	assert.True(t, limiter.Allow("203.0.113.7"))
	assert.True(t, limiter.Allow("203.0.113.7"))
	assert.True(t, limiter.Allow("203.0.113.7"))
	assert.False(t, limiter.Allow("203.0.113.7"))
	assert.False(t, limiter.Allow("203.0.113.7"))
}

func TestIPRateLimiterWindowReset(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewIPRateLimiter(3, time.Minute)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("203.0.113.7"))
	}
	assert.False(t, limiter.Allow("203.0.113.7"))

	// Once the window elapses the count resets and a new request passes
	now = now.Add(61 * time.Second)
	assert.True(t, limiter.Allow("203.0.113.7"))

	// ...and the fresh window enforces the limit again
	assert.True(t, limiter.Allow("203.0.113.7"))
	assert.True(t, limiter.Allow("203.0.113.7"))
	assert.False(t, limiter.Allow("203.0.113.7"))
}

func TestIPRateLimiterPerClientIsolation(t *testing.T) {
	limiter := NewIPRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("198.51.100.1"))
	}
	assert.False(t, limiter.Allow("198.51.100.1"))

	// A different client has its own window
	assert.True(t, limiter.Allow("198.51.100.2"))
}

func TestIPRateLimiterRetryAfter(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewIPRateLimiter(3, time.Minute)
	limiter.now = func() time.Time { return now }

	assert.Equal(t, time.Duration(0), limiter.RetryAfter("203.0.113.7"))

	limiter.Allow("203.0.113.7")
	now = now.Add(20 * time.Second)
	assert.Equal(t, 40*time.Second, limiter.RetryAfter("203.0.113.7"))
}
