package facade

import (
	"context"
	"fmt"

	"github.com/wharfd/wharfd/internal/canon"
	"github.com/wharfd/wharfd/internal/domain"
	"github.com/wharfd/wharfd/internal/engine"
	"github.com/wharfd/wharfd/internal/normalize"
	"github.com/wharfd/wharfd/pkg/humanize"
)

const kindVolume = "volume"

// Volumes exposes the volume operations.
type Volumes struct {
	base
}

// NewVolumes builds the volume facade. audit may be nil.
func NewVolumes(eng engine.Client, audit Auditor) *Volumes {
	return &Volumes{base{engine: eng, audit: audit}}
}

// List returns all volumes.
func (f *Volumes) List(ctx context.Context) (domain.Envelope, int) {
	items, err := f.engine.VolumeList(ctx)
	if err != nil {
		return fail(err)
	}
	lifted := canon.Volumes(items)
	return okList(lifted, len(lifted))
}

// Get returns one volume plus the containers mounting it.
func (f *Volumes) Get(ctx context.Context, name string) (domain.Envelope, int) {
	vol, err := f.engine.VolumeInspect(ctx, name)
	if err != nil {
		return fail(err)
	}
	using, err := f.containersUsing(ctx, vol.Name)
	if err != nil {
		return fail(err)
	}
	return ok(canon.VolumeDetail(vol, using))
}

// Create creates a volume. An empty body yields an engine-named one.
func (f *Volumes) Create(ctx context.Context, req domain.VolumeCreateRequest) (domain.Envelope, int) {
	opts := normalize.VolumeCreate(req)
	vol, err := f.engine.VolumeCreate(ctx, opts)
	f.note(ctx, kindVolume, "create", req.Name, err)
	if err != nil {
		return fail(err)
	}
	return created(canon.Volume(vol))
}

// Remove deletes a volume. A mounted volume needs force.
func (f *Volumes) Remove(ctx context.Context, name, forceRaw string) (domain.Envelope, int) {
	force, err := normalize.BoolQuery(forceRaw, "force", false)
	if err != nil {
		return fail(err)
	}
	err = f.engine.VolumeRemove(ctx, name, force)
	f.note(ctx, kindVolume, "remove", name, err)
	if err != nil {
		return fail(err)
	}
	return ok(domain.VolumeRemoveResult{
		Message: fmt.Sprintf("volume %s removed", name),
		Name:    name,
		Status:  "removed",
	})
}

// Prune removes unused volumes.
func (f *Volumes) Prune(ctx context.Context) (domain.Envelope, int) {
	report, err := f.engine.VolumesPrune(ctx)
	f.note(ctx, kindVolume, "prune", "", err)
	if err != nil {
		return fail(err)
	}
	deleted := report.VolumesDeleted
	if deleted == nil {
		deleted = []string{}
	}
	reclaimed := int64(report.SpaceReclaimed)
	return ok(domain.VolumePruneResult{
		Message:             fmt.Sprintf("%d volumes pruned", len(deleted)),
		VolumesDeleted:      deleted,
		SpaceReclaimed:      humanize.Bytes(reclaimed),
		SpaceReclaimedBytes: reclaimed,
		Status:              "pruned",
	})
}

// Stats aggregates volume usage from the engine's disk-usage report,
// which is the only listing that carries per-volume sizes.
func (f *Volumes) Stats(ctx context.Context) (domain.Envelope, int) {
	du, err := f.engine.DiskUsage(ctx)
	if err != nil {
		return fail(err)
	}
	stats := domain.VolumeStats{Drivers: map[string]int{}}
	var totalSize int64
	for _, vol := range du.Volumes {
		if vol == nil {
			continue
		}
		stats.TotalVolumes++
		stats.Drivers[vol.Driver]++
		if vol.UsageData != nil {
			if vol.UsageData.Size > 0 {
				totalSize += vol.UsageData.Size
			}
			if vol.UsageData.RefCount == 0 {
				stats.UnusedVolumes++
			}
		}
	}
	stats.TotalSize = humanize.Bytes(totalSize)
	stats.TotalSizeBytes = totalSize
	return ok(stats)
}

// containersUsing lists the names of containers with the volume mounted.
func (f *Volumes) containersUsing(ctx context.Context, name string) ([]string, error) {
	containers, err := f.engine.ContainerList(ctx, true)
	if err != nil {
		return nil, err
	}
	var using []string
	for _, c := range containers {
		for _, m := range c.Mounts {
			if m.Name == name {
				using = append(using, canon.Container(c).Name)
				break
			}
		}
	}
	return using, nil
}
