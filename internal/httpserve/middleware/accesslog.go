// Package middleware holds the echo middleware specific to this
// service; stock echo middleware is configured in the router.
package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wharfd/wharfd/pkg/logger"
)

// AccessLog logs one line per request with method, path, status,
// duration, and the request id assigned upstream.
func AccessLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			req := c.Request()
			res := c.Response()
			logger.Info("request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"duration", time.Since(start).Round(time.Millisecond).String(),
				"request_id", res.Header().Get(echo.HeaderXRequestID),
			)
			return nil
		}
	}
}
