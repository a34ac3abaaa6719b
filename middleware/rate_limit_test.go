package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	router.Use(RateLimit(3, time.Minute))
	router.POST("/api/upload", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/api/upload", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Request %d: Expected status 200, got %d", i+1, w.Code)
		}
	}

	// One over the limit
	req := httptest.NewRequest("POST", "/api/upload", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", w.Code)
	}
}

func TestRateLimitDifferentIPs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(2, time.Minute))
	router.POST("/api/upload", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	// Exhaust the limit for one client
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/api/upload", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}

	// Another client keeps its own budget
	req := httptest.NewRequest("POST", "/api/upload", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.2")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Different IP should not be rate limited, got %d", w.Code)
	}
}

func TestRateLimitExemptsHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(1, time.Minute))
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Health probes are never throttled, regardless of volume
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/api/health", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Probe %d: Expected status 200, got %d", i+1, w.Code)
		}
	}
}

func TestRateLimiterAllow(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)

	if !limiter.Allow("client-a") {
		t.Error("First request should be allowed")
	}
	if !limiter.Allow("client-a") {
		t.Error("Second request should be allowed")
	}
	if limiter.Allow("client-a") {
		t.Error("Third request should be denied")
	}
	if !limiter.Allow("client-b") {
		t.Error("Another key should have its own budget")
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	limiter := NewRateLimiter(1, 10*time.Millisecond)

	if !limiter.Allow("client-a") {
		t.Error("First request should be allowed")
	}
	if limiter.Allow("client-a") {
		t.Error("Second request should be denied")
	}

	time.Sleep(20 * time.Millisecond)

	if !limiter.Allow("client-a") {
		t.Error("Request after window reset should be allowed")
	}
}
