package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type bucket struct {
	tokens     int
	lastRefill time.Time
}

var (
	rlMu        sync.Mutex
	buckets     = map[string]*bucket{}
	window      = 10 * time.Second
	capacity    = 5
	refillPerWd = capacity
)

// SetRateLimitConfig tunes the token bucket; called once at startup.
func SetRateLimitConfig(win time.Duration, cap int) {
	rlMu.Lock()
	window = win
	capacity = cap
	refillPerWd = cap
	rlMu.Unlock()
}

func clientIP(c *gin.Context) string {
	ip := strings.TrimSpace(c.ClientIP())
	if ip == "" {
		host, _, _ := net.SplitHostPort(strings.TrimSpace(c.Request.RemoteAddr))
		ip = host
	}
	return ip
}

// RateLimit is a per-client token bucket guarding the message-sending path.
func RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := clientIP(c)
		now := time.Now()

		rlMu.Lock()
		b := buckets[key]
		if b == nil {
			b = &bucket{tokens: capacity, lastRefill: now}
			buckets[key] = b
		}
		elapsed := now.Sub(b.lastRefill)
		if elapsed > 0 {
			add := int(float64(refillPerWd) * (float64(elapsed) / float64(window)))
			if add > 0 {
				b.tokens += add
				if b.tokens > capacity {
					b.tokens = capacity
				}
				b.lastRefill = now
			}
		}
		if b.tokens <= 0 {
			rlMu.Unlock()
			c.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "too many requests"})
			return
		}
		b.tokens--
		rlMu.Unlock()

		c.Next()
	}
}
