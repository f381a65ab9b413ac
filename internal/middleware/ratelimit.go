package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgErrors "coffee-assistant/pkg/errors"
	"coffee-assistant/pkg/response"
)

const (
	defaultMaxTrackedPeers = 1000
	limiterTTL             = 5 * time.Minute
)

var errTooManyRequests = pkgErrors.NewHTTPError(http.StatusTooManyRequests, "too many requests, please slow down")

// RateLimit limits requests per client IP.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter == nil {
			c.Next()
			return
		}

		if !mw.limiter.Allow(c.ClientIP()) {
			mw.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: %s exceeded limit on %s", c.ClientIP(), c.FullPath())
			response.Error(c, errTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per peer. Peers idle for limiterTTL expire.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, maxPeers int) *rateLimiter {
	return newRateLimiterWithTTL(requestsPerMin, maxPeers, limiterTTL)
}

func newRateLimiterWithTTL(requestsPerMin, maxPeers int, ttl time.Duration) *rateLimiter {
	if maxPeers <= 0 {
		maxPeers = defaultMaxTrackedPeers
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxPeers, nil, ttl),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    max(requestsPerMin/10, 1),
	}
}

// Allow reports whether key may proceed. Every call re-adds the bucket so an
// active peer keeps its bucket instead of getting a fresh one on expiry.
func (rl *rateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Peek(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
	}
	rl.limiters.Add(key, limiter)
	rl.mu.Unlock()

	return limiter.Allow()
}
