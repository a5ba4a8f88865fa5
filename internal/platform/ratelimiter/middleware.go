package ratelimiter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Limiter is satisfied by RateLimiter.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider (RateLimiter).
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Middleware はクライアントIPごとにリクエストを制限する Gin ミドルウェアを返します。
// Redis に障害がある場合はリクエストを通します (fail-open)。
func Middleware(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "client_ip", c.ClientIP(), "error", err)
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
