package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Limiter decides whether a request identified by key may proceed within the
// current window. Implementations fail open: an unavailable backend must not
// lock out logins.
type Limiter interface {
	Allow(key string, limit int, window time.Duration) bool
}

// RateLimit throttles a route per client IP. Intended for the credential
// routes, where unthrottled guessing is the concern.
func RateLimit(limiter Limiter, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil {
				return next(c)
			}
			key := "ratelimit:" + c.Path() + ":" + c.RealIP()
			if !limiter.Allow(key, limit, window) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, try again later")
			}
			return next(c)
		}
	}
}
