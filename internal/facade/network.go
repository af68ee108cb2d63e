package facade

import (
	"context"
	"fmt"

	"github.com/wharfd/wharfd/internal/canon"
	"github.com/wharfd/wharfd/internal/domain"
	"github.com/wharfd/wharfd/internal/engine"
	"github.com/wharfd/wharfd/internal/normalize"
)

const kindNetwork = "network"

// systemNetworks are the engine's built-in networks, counted separately
// in stats and never candidates for pruning.
var systemNetworks = map[string]bool{"bridge": true, "host": true, "none": true}

// Networks exposes the network operations.
type Networks struct {
	base
}

// NewNetworks builds the network facade. audit may be nil.
func NewNetworks(eng engine.Client, audit Auditor) *Networks {
	return &Networks{base{engine: eng, audit: audit}}
}

// List returns all networks.
func (f *Networks) List(ctx context.Context) (domain.Envelope, int) {
	items, err := f.engine.NetworkList(ctx)
	if err != nil {
		return fail(err)
	}
	lifted := canon.Networks(items)
	return okList(lifted, len(lifted))
}

// Get returns the detail shape for one network.
func (f *Networks) Get(ctx context.Context, id string) (domain.Envelope, int) {
	info, err := f.engine.NetworkInspect(ctx, id)
	if err != nil {
		return fail(err)
	}
	return ok(canon.NetworkDetail(info))
}

// Create creates a network.
func (f *Networks) Create(ctx context.Context, req domain.NetworkCreateRequest) (domain.Envelope, int) {
	name, opts, err := normalize.NetworkCreate(req)
	if err != nil {
		return fail(err)
	}
	info, err := f.engine.NetworkCreate(ctx, name, opts)
	f.note(ctx, kindNetwork, "create", name, err)
	if err != nil {
		return fail(err)
	}
	return created(canon.NetworkDetail(info))
}

// Remove deletes a network.
func (f *Networks) Remove(ctx context.Context, id string) (domain.Envelope, int) {
	info, err := f.engine.NetworkInspect(ctx, id)
	if err != nil {
		f.note(ctx, kindNetwork, "remove", id, err)
		return fail(err)
	}
	err = f.engine.NetworkRemove(ctx, info.ID)
	f.note(ctx, kindNetwork, "remove", info.Name, err)
	if err != nil {
		return fail(err)
	}
	return ok(domain.NetworkRemoveResult{
		Message:   fmt.Sprintf("network %s removed", info.Name),
		NetworkID: canon.ShortID(info.ID),
		Name:      info.Name,
		Status:    "removed",
	})
}

// Connect attaches a container to a network.
func (f *Networks) Connect(ctx context.Context, id string, req domain.NetworkConnectRequest) (domain.Envelope, int) {
	container, err := normalize.NetworkConnect(req)
	if err != nil {
		return fail(err)
	}
	err = f.engine.NetworkConnect(ctx, id, container)
	f.note(ctx, kindNetwork, "connect", id, err)
	if err != nil {
		return fail(err)
	}
	return ok(domain.NetworkConnectResult{
		Message:   fmt.Sprintf("container %s connected to network %s", container, id),
		NetworkID: canon.ShortID(id),
		Container: container,
		Status:    "connected",
	})
}

// Disconnect detaches a container from a network.
func (f *Networks) Disconnect(ctx context.Context, id string, req domain.NetworkConnectRequest) (domain.Envelope, int) {
	container, err := normalize.NetworkConnect(req)
	if err != nil {
		return fail(err)
	}
	err = f.engine.NetworkDisconnect(ctx, id, container, req.Force)
	f.note(ctx, kindNetwork, "disconnect", id, err)
	if err != nil {
		return fail(err)
	}
	return ok(domain.NetworkConnectResult{
		Message:   fmt.Sprintf("container %s disconnected from network %s", container, id),
		NetworkID: canon.ShortID(id),
		Container: container,
		Status:    "disconnected",
	})
}

// Prune removes unused custom networks.
func (f *Networks) Prune(ctx context.Context) (domain.Envelope, int) {
	report, err := f.engine.NetworksPrune(ctx)
	f.note(ctx, kindNetwork, "prune", "", err)
	if err != nil {
		return fail(err)
	}
	deleted := report.NetworksDeleted
	if deleted == nil {
		deleted = []string{}
	}
	return ok(domain.NetworkPruneResult{
		Message:         fmt.Sprintf("%d networks pruned", len(deleted)),
		NetworksDeleted: deleted,
		Status:          "pruned",
	})
}

// Stats aggregates the network inventory.
func (f *Networks) Stats(ctx context.Context) (domain.Envelope, int) {
	items, err := f.engine.NetworkList(ctx)
	if err != nil {
		return fail(err)
	}
	stats := domain.NetworkStats{
		TotalNetworks: len(items),
		Drivers:       map[string]int{},
		Scopes:        map[string]int{},
	}
	for _, item := range items {
		if item.Driver != "" {
			stats.Drivers[item.Driver]++
		}
		if item.Scope != "" {
			stats.Scopes[item.Scope]++
		}
		stats.TotalConnectedContainers += len(item.Containers)
		if systemNetworks[item.Name] {
			stats.SystemNetworks++
		}
	}
	return ok(stats)
}
