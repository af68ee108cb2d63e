package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/wharfd/wharfd/internal/server"
)

// SystemVersion handles GET /api/system/version.
func SystemVersion(c echo.Context, a *server.App) error {
	env, status := a.System.Version(c.Request().Context())
	return respond(c, env, status)
}

// SystemInfo handles GET /api/system/info.
func SystemInfo(c echo.Context, a *server.App) error {
	env, status := a.System.Info(c.Request().Context())
	return respond(c, env, status)
}

// SystemDiskUsage handles GET /api/system/df.
func SystemDiskUsage(c echo.Context, a *server.App) error {
	env, status := a.System.DiskUsage(c.Request().Context())
	return respond(c, env, status)
}

// SystemStatus handles GET /api/system/status. Always 200.
func SystemStatus(c echo.Context, a *server.App) error {
	env, status := a.System.Status(c.Request().Context())
	return respond(c, env, status)
}

// SystemStats handles GET /api/system/stats.
func SystemStats(c echo.Context, a *server.App) error {
	env, status := a.System.Stats(c.Request().Context())
	return respond(c, env, status)
}

// SystemHost handles GET /api/system/host.
func SystemHost(c echo.Context, a *server.App) error {
	env, status := a.System.HostInfo(c.Request().Context())
	return respond(c, env, status)
}
