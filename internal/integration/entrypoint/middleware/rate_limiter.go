// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/household-finance/backend/internal/domain/error"
	"github.com/household-finance/backend/internal/integration/entrypoint/dto"
)

// RateLimiter enforces a fixed-window limit on write requests, keyed by
// client IP and backed by Redis so multiple instances share one window. A
// nil client disables the limiter.
type RateLimiter struct {
	client         *redis.Client
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates a new rate limiter instance.
func NewRateLimiter(client *redis.Client, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		client:         client,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.client == nil || os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		key := "ratelimit:" + clientIP
		ctx := c.Request.Context()

		attempts, err := rl.client.Incr(ctx, key).Result()
		if err != nil {
			// Redis being down must not take the API with it.
			slog.Warn("Rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}
		if attempts == 1 {
			rl.client.Expire(ctx, key, rl.windowDuration)
		}

		if attempts > int64(rl.maxAttempts) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
