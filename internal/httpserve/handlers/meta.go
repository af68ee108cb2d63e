package handlers

import (
	"net/http"
	"sync"

	_ "embed"

	"github.com/labstack/echo/v4"
	"gopkg.in/yaml.v3"

	"github.com/wharfd/wharfd/internal/domain"
	"github.com/wharfd/wharfd/internal/normalize"
	"github.com/wharfd/wharfd/internal/server"
	"github.com/wharfd/wharfd/pkg/logger"
)

//go:embed commands.yml
var commandsYAML []byte

// Command is one entry of the self-description catalog.
type Command struct {
	Method      string `json:"method" yaml:"method"`
	Path        string `json:"path" yaml:"path"`
	Description string `json:"description" yaml:"description"`
}

var (
	commandsOnce sync.Once
	commandList  []Command
)

func commands() []Command {
	commandsOnce.Do(func() {
		var doc struct {
			Commands []Command `yaml:"commands"`
		}
		if err := yaml.Unmarshal(commandsYAML, &doc); err != nil {
			logger.Error("embedded command catalog is broken", "error", err)
			return
		}
		commandList = doc.Commands
	})
	return commandList
}

// Root handles GET /. It points at the discovery endpoints.
func Root(c echo.Context, a *server.App) error {
	return respond(c, domain.OK(map[string]any{
		"name":     "wharfd",
		"version":  server.Version,
		"health":   "/health",
		"commands": "/api/commands",
	}), http.StatusOK)
}

// Health handles GET /health. Always 200; the engine state rides in
// the payload.
func Health(c echo.Context, a *server.App) error {
	probe := a.System.Probe(c.Request().Context())
	return respond(c, domain.OK(map[string]any{
		"status": "ok",
		"engine": probe.Status,
		"ping":   probe.Ping,
	}), http.StatusOK)
}

// Commands handles GET /api/commands.
func Commands(c echo.Context, a *server.App) error {
	list := commands()
	return respond(c, domain.OKList(list, len(list)), http.StatusOK)
}

// Activity handles GET /api/activity.
func Activity(c echo.Context, a *server.App) error {
	if a.Activity == nil {
		return respond(c, domain.Fail("activity log is disabled"), http.StatusServiceUnavailable)
	}
	limit, err := activityLimit(c.QueryParam("limit"))
	if err != nil {
		return respondErr(c, err)
	}
	records, err := a.Activity.List(c.Request().Context(), limit)
	if err != nil {
		logger.Error("activity list failed", "error", err)
		return respond(c, domain.Fail("internal error"), http.StatusInternalServerError)
	}
	return respond(c, domain.OKList(records, len(records)), http.StatusOK)
}

func activityLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return normalize.LimitQuery(raw, "limit")
}
