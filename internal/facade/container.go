package facade

import (
	"context"
	"fmt"

	"github.com/wharfd/wharfd/internal/canon"
	"github.com/wharfd/wharfd/internal/domain"
	"github.com/wharfd/wharfd/internal/engine"
	"github.com/wharfd/wharfd/internal/normalize"
)

const kindContainer = "container"

// Containers exposes the container operations.
type Containers struct {
	base
}

// NewContainers builds the container facade. audit may be nil.
func NewContainers(eng engine.Client, audit Auditor) *Containers {
	return &Containers{base{engine: eng, audit: audit}}
}

// List returns all containers, or only running ones when all is false.
func (f *Containers) List(ctx context.Context, allRaw string) (domain.Envelope, int) {
	all, err := normalize.BoolQuery(allRaw, "all", false)
	if err != nil {
		return fail(err)
	}
	items, err := f.engine.ContainerList(ctx, all)
	if err != nil {
		return fail(err)
	}
	lifted := canon.Containers(items)
	return okList(lifted, len(lifted))
}

// Get returns the detail shape for one container.
func (f *Containers) Get(ctx context.Context, id string) (domain.Envelope, int) {
	info, err := f.engine.ContainerInspect(ctx, id)
	if err != nil {
		return fail(err)
	}
	return ok(canon.ContainerDetail(info))
}

// Create creates a container without starting it.
func (f *Containers) Create(ctx context.Context, req domain.ContainerCreateRequest) (domain.Envelope, int) {
	params, err := normalize.ContainerCreate(req)
	if err != nil {
		return fail(err)
	}
	info, err := f.engine.ContainerCreate(ctx, params)
	f.note(ctx, kindContainer, "create", req.Name, err)
	if err != nil {
		return fail(err)
	}
	detail := canon.ContainerDetail(info)
	return created(domain.ContainerActionResult{
		Message:     fmt.Sprintf("container %s created", detail.Name),
		ContainerID: canon.ShortID(detail.ID),
		Name:        detail.Name,
		Image:       detail.Image,
		Status:      "created",
	})
}

// Start starts a stopped container.
func (f *Containers) Start(ctx context.Context, id string) (domain.Envelope, int) {
	return f.action(ctx, id, "start", "started", func(realID string) error {
		return f.engine.ContainerStart(ctx, realID)
	})
}

// Stop stops a running container, with an optional timeout in seconds.
func (f *Containers) Stop(ctx context.Context, id string, req *domain.ContainerTimeoutRequest) (domain.Envelope, int) {
	timeout, err := normalize.StopTimeout(req)
	if err != nil {
		return fail(err)
	}
	return f.action(ctx, id, "stop", "stopped", func(realID string) error {
		return f.engine.ContainerStop(ctx, realID, timeout)
	})
}

// Restart restarts a container, with an optional timeout in seconds.
func (f *Containers) Restart(ctx context.Context, id string, req *domain.ContainerTimeoutRequest) (domain.Envelope, int) {
	timeout, err := normalize.StopTimeout(req)
	if err != nil {
		return fail(err)
	}
	return f.action(ctx, id, "restart", "restarted", func(realID string) error {
		return f.engine.ContainerRestart(ctx, realID, timeout)
	})
}

// Remove deletes a container. A running container needs force.
func (f *Containers) Remove(ctx context.Context, id string, forceRaw string) (domain.Envelope, int) {
	force, err := normalize.BoolQuery(forceRaw, "force", false)
	if err != nil {
		return fail(err)
	}
	return f.action(ctx, id, "remove", "removed", func(realID string) error {
		return f.engine.ContainerRemove(ctx, realID, force)
	})
}

// Logs returns the tail of a container's log stream.
func (f *Containers) Logs(ctx context.Context, id string, tailRaw string) (domain.Envelope, int) {
	tail, err := normalize.LogTail(tailRaw)
	if err != nil {
		return fail(err)
	}
	info, err := f.engine.ContainerInspect(ctx, id)
	if err != nil {
		return fail(err)
	}
	logs, err := f.engine.ContainerLogs(ctx, info.ID, tail)
	if err != nil {
		return fail(err)
	}
	detail := canon.ContainerDetail(info)
	return ok(domain.ContainerLogsResult{
		ContainerID: canon.ShortID(detail.ID),
		Name:        detail.Name,
		Logs:        logs,
		Tail:        tail,
	})
}

// action resolves the container first so the result names it, then runs
// the lifecycle call against the full ID.
func (f *Containers) action(ctx context.Context, id, op, status string, run func(realID string) error) (domain.Envelope, int) {
	info, err := f.engine.ContainerInspect(ctx, id)
	if err != nil {
		f.note(ctx, kindContainer, op, id, err)
		return fail(err)
	}
	detail := canon.ContainerDetail(info)
	err = run(info.ID)
	f.note(ctx, kindContainer, op, detail.Name, err)
	if err != nil {
		return fail(err)
	}
	return ok(domain.ContainerActionResult{
		Message:     fmt.Sprintf("container %s %s", detail.Name, status),
		ContainerID: canon.ShortID(detail.ID),
		Name:        detail.Name,
		Status:      status,
	})
}
