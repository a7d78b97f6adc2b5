package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"investiguide_backend/internal/api"
	"investiguide_backend/internal/shared/ratelimiter"
)

// RateLimit はクライアントIPごとにリクエストを制限し、超過時は429を返します。
func RateLimit(limiter ratelimiter.RateLimiterInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.Allow(ip) {
			slog.Warn("rate limit exceeded", "client_ip", ip, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.MessageResponse{Message: "too many requests"})
			return
		}
		c.Next()
	}
}
