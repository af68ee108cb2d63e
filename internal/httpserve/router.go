// Package httpserve builds the echo server: middleware per
// configuration, then the full route table over the facades.
package httpserve

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/wharfd/wharfd/internal/httpserve/handlers"
	"github.com/wharfd/wharfd/internal/httpserve/middleware"
	"github.com/wharfd/wharfd/internal/server"
)

// New builds a configured echo instance for the App.
func New(a *server.App) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	if a.Config.Server.CORS.Enabled {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: a.Config.Server.CORS.Origins,
		}))
	}
	if a.Config.Server.RateLimit.Enabled {
		e.Use(middleware.RateLimit(a.Config.Activity.Dir,
			a.Config.Server.RateLimit.RPS, a.Config.Server.RateLimit.Burst))
	}
	e.Use(middleware.AccessLog())

	Register(e, a)
	return e
}

// Register installs the route table.
func Register(e *echo.Echo, a *server.App) {
	h := func(fn handlers.Handler) echo.HandlerFunc {
		return func(c echo.Context) error { return fn(c, a) }
	}

	e.GET("/", h(handlers.Root))
	e.GET("/health", h(handlers.Health))

	api := e.Group("/api")
	api.GET("/commands", h(handlers.Commands))
	api.GET("/activity", h(handlers.Activity))

	api.GET("/containers", h(handlers.ContainerList))
	api.POST("/containers", h(handlers.ContainerCreate))
	api.GET("/containers/:id", h(handlers.ContainerGet))
	api.POST("/containers/:id/start", h(handlers.ContainerStart))
	api.POST("/containers/:id/stop", h(handlers.ContainerStop))
	api.POST("/containers/:id/restart", h(handlers.ContainerRestart))
	api.DELETE("/containers/:id/remove", h(handlers.ContainerRemove))
	api.GET("/containers/:id/logs", h(handlers.ContainerLogs))

	api.GET("/images", h(handlers.ImageList))
	api.POST("/images/pull", h(handlers.ImagePull))
	api.POST("/images/build", h(handlers.ImageBuild))
	api.GET("/images/search", h(handlers.ImageSearch))
	api.POST("/images/prune", h(handlers.ImagePrune))
	// Image references carry slashes and colons, so these two take the
	// rest of the path; delete also accepts a trailing /remove.
	api.GET("/images/*", h(handlers.ImageGet))
	api.DELETE("/images/*", h(handlers.ImageRemove))

	api.GET("/volumes", h(handlers.VolumeList))
	api.POST("/volumes", h(handlers.VolumeCreate))
	api.GET("/volumes/stats", h(handlers.VolumeStats))
	api.POST("/volumes/prune", h(handlers.VolumePrune))
	api.GET("/volumes/:name", h(handlers.VolumeGet))
	api.DELETE("/volumes/:name/remove", h(handlers.VolumeRemove))

	api.GET("/networks", h(handlers.NetworkList))
	api.POST("/networks", h(handlers.NetworkCreate))
	api.GET("/networks/stats", h(handlers.NetworkStats))
	api.POST("/networks/prune", h(handlers.NetworkPrune))
	api.GET("/networks/:id", h(handlers.NetworkGet))
	api.DELETE("/networks/:id/remove", h(handlers.NetworkRemove))
	api.POST("/networks/:id/connect", h(handlers.NetworkConnect))
	api.POST("/networks/:id/disconnect", h(handlers.NetworkDisconnect))

	api.GET("/system/version", h(handlers.SystemVersion))
	api.GET("/system/info", h(handlers.SystemInfo))
	api.GET("/system/df", h(handlers.SystemDiskUsage))
	api.GET("/system/status", h(handlers.SystemStatus))
	api.GET("/system/stats", h(handlers.SystemStats))
	api.GET("/system/host", h(handlers.SystemHost))
}
