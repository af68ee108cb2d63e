// Package handlers decodes HTTP requests, delegates to the facades,
// and writes envelope responses. No engine or canonicalization logic
// lives here.
package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/wharfd/wharfd/internal/domain"
	"github.com/wharfd/wharfd/internal/facade"
	"github.com/wharfd/wharfd/internal/normalize"
	"github.com/wharfd/wharfd/internal/server"
)

// Handler is the shape every route handler takes; the router closes
// over the App.
type Handler func(c echo.Context, a *server.App) error

// respond writes an envelope with its mapped status.
func respond(c echo.Context, env domain.Envelope, status int) error {
	return c.JSON(status, env)
}

// respondErr maps an error the same way the facades do, for failures
// that happen before a facade is reached.
func respondErr(c echo.Context, err error) error {
	rec := facade.MapError(err)
	return c.JSON(rec.HTTPStatus, domain.Fail(rec.Message))
}

// bindJSON decodes an optional JSON body. A decode failure is a
// validation error; an empty body leaves the target zero-valued.
func bindJSON(c echo.Context, target any) error {
	if err := c.Bind(target); err != nil {
		return normalize.Errorf("invalid request body")
	}
	return nil
}
