package domain

// VolumeUsage carries the engine-reported disk usage of a volume.
// Size is "unknown" when the engine does not report usage data.
type VolumeUsage struct {
	Size      string `json:"size"`
	SizeBytes int64  `json:"size_bytes"`
	RefCount  int64  `json:"ref_count"`
}

// Volume is the canonical shape for one volume.
type Volume struct {
	Name       string            `json:"name"`
	Driver     string            `json:"driver"`
	Mountpoint string            `json:"mountpoint"`
	Created    string            `json:"created"`
	Scope      string            `json:"scope"`
	Labels     map[string]string `json:"labels"`
	Options    map[string]string `json:"options"`
	Usage      VolumeUsage       `json:"usage"`
}

// VolumeDetail adds the names of containers mounting the volume.
type VolumeDetail struct {
	Volume
	ContainersUsing []string `json:"containers_using"`
}

// VolumeRemoveResult reports a removed volume.
type VolumeRemoveResult struct {
	Message string `json:"message"`
	Name    string `json:"name"`
	Status  string `json:"status"`
}

// VolumePruneResult reports a prune pass.
type VolumePruneResult struct {
	Message             string   `json:"message"`
	VolumesDeleted      []string `json:"volumes_deleted"`
	SpaceReclaimed      string   `json:"space_reclaimed"`
	SpaceReclaimedBytes int64    `json:"space_reclaimed_bytes"`
	Status              string   `json:"status"`
}

// VolumeStats aggregates usage across all volumes.
type VolumeStats struct {
	TotalVolumes   int            `json:"total_volumes"`
	TotalSize      string         `json:"total_size"`
	TotalSizeBytes int64          `json:"total_size_bytes"`
	Drivers        map[string]int `json:"drivers"`
	UnusedVolumes  int            `json:"unused_volumes"`
}
