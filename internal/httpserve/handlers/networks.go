package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/wharfd/wharfd/internal/domain"
	"github.com/wharfd/wharfd/internal/server"
)

// NetworkList handles GET /api/networks.
func NetworkList(c echo.Context, a *server.App) error {
	env, status := a.Networks.List(c.Request().Context())
	return respond(c, env, status)
}

// NetworkGet handles GET /api/networks/:id.
func NetworkGet(c echo.Context, a *server.App) error {
	env, status := a.Networks.Get(c.Request().Context(), c.Param("id"))
	return respond(c, env, status)
}

// NetworkCreate handles POST /api/networks.
func NetworkCreate(c echo.Context, a *server.App) error {
	var req domain.NetworkCreateRequest
	if err := bindJSON(c, &req); err != nil {
		return respondErr(c, err)
	}
	env, status := a.Networks.Create(c.Request().Context(), req)
	return respond(c, env, status)
}

// NetworkRemove handles DELETE /api/networks/:id/remove.
func NetworkRemove(c echo.Context, a *server.App) error {
	env, status := a.Networks.Remove(c.Request().Context(), c.Param("id"))
	return respond(c, env, status)
}

// NetworkConnect handles POST /api/networks/:id/connect.
func NetworkConnect(c echo.Context, a *server.App) error {
	var req domain.NetworkConnectRequest
	if err := bindJSON(c, &req); err != nil {
		return respondErr(c, err)
	}
	env, status := a.Networks.Connect(c.Request().Context(), c.Param("id"), req)
	return respond(c, env, status)
}

// NetworkDisconnect handles POST /api/networks/:id/disconnect.
func NetworkDisconnect(c echo.Context, a *server.App) error {
	var req domain.NetworkConnectRequest
	if err := bindJSON(c, &req); err != nil {
		return respondErr(c, err)
	}
	env, status := a.Networks.Disconnect(c.Request().Context(), c.Param("id"), req)
	return respond(c, env, status)
}

// NetworkPrune handles POST /api/networks/prune.
func NetworkPrune(c echo.Context, a *server.App) error {
	env, status := a.Networks.Prune(c.Request().Context())
	return respond(c, env, status)
}

// NetworkStats handles GET /api/networks/stats.
func NetworkStats(c echo.Context, a *server.App) error {
	env, status := a.Networks.Stats(c.Request().Context())
	return respond(c, env, status)
}
