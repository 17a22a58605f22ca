package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Ealanisln/vetify-api/internal/httperr"
	"github.com/Ealanisln/vetify-api/internal/ratelimit"
)

// RateLimit throttles by client IP. A limiter failure lets the request
// through and is logged.
func RateLimit(limiter ratelimit.Limiter, window time.Duration) gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(window.Seconds()))
	return func(c *gin.Context) {
		ok, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("rate limiter unavailable")
			c.Next()
			return
		}
		if !ok {
			c.Header("Retry-After", retryAfter)
			httperr.TooManyRequests(c, "rate_limited", "Too many requests, try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
