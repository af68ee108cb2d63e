package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/wharfd/wharfd/internal/domain"
	"github.com/wharfd/wharfd/internal/server"
)

// ContainerList handles GET /api/containers.
func ContainerList(c echo.Context, a *server.App) error {
	env, status := a.Containers.List(c.Request().Context(), c.QueryParam("all"))
	return respond(c, env, status)
}

// ContainerGet handles GET /api/containers/:id.
func ContainerGet(c echo.Context, a *server.App) error {
	env, status := a.Containers.Get(c.Request().Context(), c.Param("id"))
	return respond(c, env, status)
}

// ContainerCreate handles POST /api/containers.
func ContainerCreate(c echo.Context, a *server.App) error {
	var req domain.ContainerCreateRequest
	if err := bindJSON(c, &req); err != nil {
		return respondErr(c, err)
	}
	env, status := a.Containers.Create(c.Request().Context(), req)
	return respond(c, env, status)
}

// ContainerStart handles POST /api/containers/:id/start.
func ContainerStart(c echo.Context, a *server.App) error {
	env, status := a.Containers.Start(c.Request().Context(), c.Param("id"))
	return respond(c, env, status)
}

// ContainerStop handles POST /api/containers/:id/stop.
func ContainerStop(c echo.Context, a *server.App) error {
	var req domain.ContainerTimeoutRequest
	if err := bindJSON(c, &req); err != nil {
		return respondErr(c, err)
	}
	env, status := a.Containers.Stop(c.Request().Context(), c.Param("id"), &req)
	return respond(c, env, status)
}

// ContainerRestart handles POST /api/containers/:id/restart.
func ContainerRestart(c echo.Context, a *server.App) error {
	var req domain.ContainerTimeoutRequest
	if err := bindJSON(c, &req); err != nil {
		return respondErr(c, err)
	}
	env, status := a.Containers.Restart(c.Request().Context(), c.Param("id"), &req)
	return respond(c, env, status)
}

// ContainerRemove handles DELETE /api/containers/:id/remove.
func ContainerRemove(c echo.Context, a *server.App) error {
	env, status := a.Containers.Remove(c.Request().Context(), c.Param("id"), c.QueryParam("force"))
	return respond(c, env, status)
}

// ContainerLogs handles GET /api/containers/:id/logs.
func ContainerLogs(c echo.Context, a *server.App) error {
	env, status := a.Containers.Logs(c.Request().Context(), c.Param("id"), c.QueryParam("tail"))
	return respond(c, env, status)
}
