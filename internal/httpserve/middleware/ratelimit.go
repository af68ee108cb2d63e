package middleware

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/wharfd/wharfd/pkg/kv"
	"github.com/wharfd/wharfd/pkg/logger"
)

// RateLimit builds a per-client-IP rate limiter backed by a persistent
// starskey store under dir. A store that cannot be opened disables the
// limiter rather than blocking startup.
func RateLimit(dir string, rps float64, burst int) echo.MiddlewareFunc {
	store, err := kv.OpenRateLimiterStore(filepath.Join(dir, "ratelimit"), rps, burst)
	if err != nil {
		logger.Warn("rate limiter disabled", "error", err)
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "request rejected")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
		},
	})
}
