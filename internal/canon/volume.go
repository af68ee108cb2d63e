package canon

import (
	"github.com/docker/docker/api/types/volume"

	"github.com/wharfd/wharfd/internal/domain"
	"github.com/wharfd/wharfd/pkg/humanize"
)

// Volumes lifts a volume listing, preserving engine order.
func Volumes(items []*volume.Volume) []domain.Volume {
	out := make([]domain.Volume, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		out = append(out, Volume(*item))
	}
	return out
}

// Volume lifts one volume. Usage stays "unknown" unless the engine
// attached usage data (only disk-usage listings carry it).
func Volume(item volume.Volume) domain.Volume {
	out := domain.Volume{
		Name:       item.Name,
		Driver:     item.Driver,
		Mountpoint: item.Mountpoint,
		Created:    parseTime(item.CreatedAt),
		Scope:      item.Scope,
		Labels:     orEmptyMap(item.Labels),
		Options:    orEmptyMap(item.Options),
		Usage:      domain.VolumeUsage{Size: "unknown"},
	}
	if item.UsageData != nil {
		out.Usage = domain.VolumeUsage{
			Size:      humanize.Bytes(item.UsageData.Size),
			SizeBytes: item.UsageData.Size,
			RefCount:  item.UsageData.RefCount,
		}
		if item.UsageData.Size < 0 {
			out.Usage.Size = "unknown"
			out.Usage.SizeBytes = 0
		}
	}
	return out
}

// VolumeDetail lifts one volume together with the names of containers
// mounting it.
func VolumeDetail(item volume.Volume, containersUsing []string) domain.VolumeDetail {
	return domain.VolumeDetail{
		Volume:          Volume(item),
		ContainersUsing: orEmptyList(containersUsing),
	}
}
