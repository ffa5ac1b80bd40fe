package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitExhaustion(t *testing.T) {
	gin.SetMode(gin.TestMode)
	SetRateLimitConfig(time.Hour, 3) // effectively no refill during the test

	r := gin.New()
	r.POST("/limited", RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/limited", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/limited", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after capacity spent, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header on 429")
	}
}

func TestRateLimitRefill(t *testing.T) {
	gin.SetMode(gin.TestMode)
	SetRateLimitConfig(50*time.Millisecond, 1)

	r := gin.New()
	r.POST("/limited", RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/limited", nil)
		req.RemoteAddr = "10.1.2.3:4444"
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do(); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", code)
	}
	time.Sleep(80 * time.Millisecond)
	if code := do(); code != http.StatusOK {
		t.Fatalf("after refill: expected 200, got %d", code)
	}
}
