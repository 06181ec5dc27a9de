package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pixelpress/pixelpress/internal/modules/ratelimit"
	"github.com/pixelpress/pixelpress/internal/service/http/handler/response"
)

// RateLimit rejects requests over the limiter's per-address window budget
// with a fixed JSON body. No queueing.
func RateLimit(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.TooManyRequests)
			return
		}
		c.Next()
	}
}
