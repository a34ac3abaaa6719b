package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SuyashJain1994/Contract-Analyzer/pkg/logger"
)

// RateLimiter implements a simple fixed-window rate limiter keyed by client IP
type RateLimiter struct {
	mu        sync.Mutex
	counts    map[string]int
	lastReset time.Time
	rate      int           // requests per window
	window    time.Duration // time window
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counts:    make(map[string]int),
		lastReset: time.Now(),
		rate:      rate,
		window:    window,
	}
}

// Allow records a request for key and reports whether it is within the limit
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if time.Since(l.lastReset) > l.window {
		l.counts = make(map[string]int)
		l.lastReset = time.Now()
	}

	if l.counts[key] >= l.rate {
		return false
	}
	l.counts[key]++
	return true
}

// RateLimit middleware limits requests per IP. The health endpoint is
// exempt so probes are never throttled.
func RateLimit(rate int, window time.Duration) gin.HandlerFunc {
	limiter := NewRateLimiter(rate, window)

	return func(c *gin.Context) {
		if strings.HasSuffix(c.Request.URL.Path, "/health") {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if !limiter.Allow(clientIP) {
			logger.Warn(c.Request.Context(), "rate limit exceeded", "client_ip", clientIP)

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}

		c.Next()
	}
}
