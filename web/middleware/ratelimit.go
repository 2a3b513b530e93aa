package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/velmara/heritage-panel/logger"
)

// RateLimitConfig configures the fixed-window per-IP limiter used on
// the public contact form.
type RateLimitConfig struct {
	RequestsPerMinute int
	KeyFunc           func(c *gin.Context) string
}

// DefaultRateLimitConfig returns the default contact-form limit.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerMinute: 10,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// RateLimit creates rate limiting middleware backed by an in-memory
// cache with one-minute windows.
func RateLimit(config RateLimitConfig) gin.HandlerFunc {
	store := cache.New(time.Minute, 2*time.Minute)

	return func(c *gin.Context) {
		key := "ratelimit:" + config.KeyFunc(c) + ":" + c.Request.URL.Path

		count := 0
		if v, found := store.Get(key); found {
			count, _ = v.(int)
		}

		if count >= config.RequestsPerMinute {
			logger.Warningf("rate limit exceeded for %s on %s (count: %d)", config.KeyFunc(c), c.Request.URL.Path, count)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"msg":     "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}

		if count == 0 {
			store.Set(key, 1, cache.DefaultExpiration)
		} else {
			if _, err := store.IncrementInt(key, 1); err != nil {
				store.Set(key, 1, cache.DefaultExpiration)
			}
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.RequestsPerMinute))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(config.RequestsPerMinute-count-1))
		c.Next()
	}
}
