// Package server wires the application together: engine client,
// facades, activity store, and the echo server around them.
package server

import (
	"fmt"

	"github.com/wharfd/wharfd/internal/activity"
	"github.com/wharfd/wharfd/internal/config"
	"github.com/wharfd/wharfd/internal/engine"
	"github.com/wharfd/wharfd/internal/facade"
	"github.com/wharfd/wharfd/internal/sysinfo"
	"github.com/wharfd/wharfd/pkg/logger"
)

// Version is stamped at build time.
var Version = "dev"

// App owns every long-lived dependency. One App serves one process.
type App struct {
	Config *config.Config
	Engine engine.Client

	Containers *facade.Containers
	Images     *facade.Images
	Volumes    *facade.Volumes
	Networks   *facade.Networks
	System     *facade.System

	Activity *activity.Store
}

// New builds the App from configuration. The engine client is created
// but not probed: an unreachable engine surfaces per request, and in
// the status operation, rather than failing startup.
func New(cfg *config.Config) (*App, error) {
	eng, err := engine.NewDocker(cfg.Engine.Host)
	if err != nil {
		return nil, fmt.Errorf("engine client: %w", err)
	}

	app := &App{Config: cfg, Engine: eng}

	if cfg.Activity.Enabled {
		store, err := activity.Open(cfg.Activity.Dir)
		if err != nil {
			// The audit trail is an extra, not a dependency.
			logger.Warn("activity log disabled", "error", err)
		} else {
			app.Activity = store
		}
	}

	var audit facade.Auditor
	if app.Activity != nil {
		audit = app.Activity
	}
	app.Containers = facade.NewContainers(eng, audit)
	app.Images = facade.NewImages(eng, audit)
	app.Volumes = facade.NewVolumes(eng, audit)
	app.Networks = facade.NewNetworks(eng, audit)
	app.System = facade.NewSystem(eng, sysinfo.NewProber(""), cfg.PingTimeout())
	return app, nil
}

// Close releases the App's resources in reverse construction order.
func (a *App) Close() {
	if a.Activity != nil {
		if err := a.Activity.Close(); err != nil {
			logger.Warn("activity store close", "error", err)
		}
	}
	if a.Engine != nil {
		if err := a.Engine.Close(); err != nil {
			logger.Warn("engine client close", "error", err)
		}
	}
}
