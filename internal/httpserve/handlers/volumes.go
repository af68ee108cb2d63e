package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/wharfd/wharfd/internal/domain"
	"github.com/wharfd/wharfd/internal/server"
)

// VolumeList handles GET /api/volumes.
func VolumeList(c echo.Context, a *server.App) error {
	env, status := a.Volumes.List(c.Request().Context())
	return respond(c, env, status)
}

// VolumeGet handles GET /api/volumes/:name.
func VolumeGet(c echo.Context, a *server.App) error {
	env, status := a.Volumes.Get(c.Request().Context(), c.Param("name"))
	return respond(c, env, status)
}

// VolumeCreate handles POST /api/volumes.
func VolumeCreate(c echo.Context, a *server.App) error {
	var req domain.VolumeCreateRequest
	if err := bindJSON(c, &req); err != nil {
		return respondErr(c, err)
	}
	env, status := a.Volumes.Create(c.Request().Context(), req)
	return respond(c, env, status)
}

// VolumeRemove handles DELETE /api/volumes/:name/remove.
func VolumeRemove(c echo.Context, a *server.App) error {
	env, status := a.Volumes.Remove(c.Request().Context(), c.Param("name"), c.QueryParam("force"))
	return respond(c, env, status)
}

// VolumePrune handles POST /api/volumes/prune.
func VolumePrune(c echo.Context, a *server.App) error {
	env, status := a.Volumes.Prune(c.Request().Context())
	return respond(c, env, status)
}

// VolumeStats handles GET /api/volumes/stats.
func VolumeStats(c echo.Context, a *server.App) error {
	env, status := a.Volumes.Stats(c.Request().Context())
	return respond(c, env, status)
}
