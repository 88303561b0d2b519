package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"voltmarket/internal/infrastructure/ratelimit"
	"voltmarket/pkg/logger"
)

// RateLimitMiddleware applies a per-IP token bucket to the credential
// endpoints. The limiter only slows brute force at this node; the provider
// enforces its own account-level limits on top.
func RateLimitMiddleware(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := action + ":" + c.RealIP()

			allowed, wait := limiter.Allow(key)
			if !allowed {
				logger.Warn("Rate limit exceeded for %s (retry in %v)", key, wait)
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Too many attempts, please try again later",
					"retry_after": int(wait / time.Second),
				})
			}

			return next(c)
		}
	}
}
