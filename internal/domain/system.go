package domain

// EngineVersion is the canonical shape of the engine version report.
type EngineVersion struct {
	Version       string `json:"version"`
	APIVersion    string `json:"api_version"`
	MinAPIVersion string `json:"min_api_version"`
	GitCommit     string `json:"git_commit"`
	GoVersion     string `json:"go_version"`
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	KernelVersion string `json:"kernel_version"`
	BuildTime     string `json:"build_time"`
	Experimental  bool   `json:"experimental"`
}

// ContainerCounts breaks the container total down by state.
type ContainerCounts struct {
	Total   int `json:"total"`
	Running int `json:"running"`
	Paused  int `json:"paused"`
	Stopped int `json:"stopped"`
}

// EnginePlugins lists the plugin names the engine reports.
type EnginePlugins struct {
	Volume  []string `json:"volume"`
	Network []string `json:"network"`
	Log     []string `json:"log"`
}

// SwarmStatus is the engine's swarm membership summary.
type SwarmStatus struct {
	NodeID           string `json:"node_id"`
	State            string `json:"state"`
	ControlAvailable bool   `json:"control_available"`
}

// EngineInfo is the canonical shape of the engine info report.
type EngineInfo struct {
	Name            string          `json:"name"`
	ServerVersion   string          `json:"server_version"`
	StorageDriver   string          `json:"storage_driver"`
	LoggingDriver   string          `json:"logging_driver"`
	CgroupDriver    string          `json:"cgroup_driver"`
	CgroupVersion   string          `json:"cgroup_version"`
	KernelVersion   string          `json:"kernel_version"`
	OperatingSystem string          `json:"operating_system"`
	OSType          string          `json:"os_type"`
	Architecture    string          `json:"architecture"`
	CPUs            int             `json:"cpus"`
	Memory          string          `json:"memory"`
	MemoryBytes     int64           `json:"memory_bytes"`
	Containers      ContainerCounts `json:"containers"`
	Images          int             `json:"images"`
	DockerRootDir   string          `json:"docker_root_dir"`
	DefaultRuntime  string          `json:"default_runtime"`
	Runtimes        []string        `json:"runtimes"`
	Plugins         EnginePlugins   `json:"plugins"`
	Swarm           SwarmStatus     `json:"swarm"`
	LiveRestore     bool            `json:"live_restore"`
	Experimental    bool            `json:"experimental"`
	Warnings        []string        `json:"warnings"`
	Labels          []string        `json:"labels"`
}

// DiskCategory is the usage of one disk-usage category.
type DiskCategory struct {
	Count            int    `json:"count"`
	Size             string `json:"size"`
	SizeBytes        int64  `json:"size_bytes"`
	Reclaimable      string `json:"reclaimable"`
	ReclaimableBytes int64  `json:"reclaimable_bytes"`
}

// DiskUsage is the canonical disk-usage report.
type DiskUsage struct {
	Containers DiskCategory `json:"containers"`
	Images     DiskCategory `json:"images"`
	Volumes    DiskCategory `json:"volumes"`
	BuildCache DiskCategory `json:"build_cache"`
	Total      DiskCategory `json:"total"`
}

// DaemonStatus never fails: when the engine is unreachable, Status is
// "unreachable", Error carries the reason, and the engine fields stay
// zero-valued.
type DaemonStatus struct {
	Status            string  `json:"status"`
	Ping              bool    `json:"ping"`
	ServerVersion     string  `json:"server_version"`
	APIVersion        string  `json:"api_version"`
	MinAPIVersion     string  `json:"min_api_version"`
	APICompatible     bool    `json:"api_compatible"`
	ContainersRunning int     `json:"containers_running"`
	ContainersTotal   int     `json:"containers_total"`
	ImagesTotal       int     `json:"images_total"`
	StorageDriver     string  `json:"storage_driver"`
	LoggingDriver     string  `json:"logging_driver"`
	LiveRestore       bool    `json:"live_restore"`
	Experimental      bool    `json:"experimental"`
	Error             *string `json:"error"`
}

// SystemStats is the aggregate inventory snapshot, composed from several
// engine calls. It is produced all-or-nothing.
type SystemStats struct {
	Engine struct {
		Version    string `json:"version"`
		APIVersion string `json:"api_version"`
	} `json:"engine"`
	Containers ContainerCounts `json:"containers"`
	Images     struct {
		Count     int    `json:"count"`
		Size      string `json:"size"`
		SizeBytes int64  `json:"size_bytes"`
	} `json:"images"`
	Volumes struct {
		Count     int    `json:"count"`
		Size      string `json:"size"`
		SizeBytes int64  `json:"size_bytes"`
	} `json:"volumes"`
	Networks struct {
		Count int `json:"count"`
	} `json:"networks"`
	Disk DiskCategory `json:"disk"`
}

// HostCPU describes the host processor.
type HostCPU struct {
	Count        int     `json:"count"`
	LogicalCount int     `json:"logical_count"`
	UsagePercent float64 `json:"usage_percent"`
}

// HostMemory describes host memory.
type HostMemory struct {
	Total          string  `json:"total"`
	TotalBytes     uint64  `json:"total_bytes"`
	Available      string  `json:"available"`
	AvailableBytes uint64  `json:"available_bytes"`
	UsedPercent    float64 `json:"used_percent"`
}

// HostDisk describes the filesystem holding Path.
type HostDisk struct {
	Path        string  `json:"path"`
	Total       string  `json:"total"`
	TotalBytes  uint64  `json:"total_bytes"`
	Free        string  `json:"free"`
	FreeBytes   uint64  `json:"free_bytes"`
	Used        string  `json:"used"`
	UsedBytes   uint64  `json:"used_bytes"`
	UsedPercent float64 `json:"used_percent"`
}

// HostInfo is the host platform snapshot, gathered from the host itself
// rather than the engine.
type HostInfo struct {
	Hostname        string     `json:"hostname"`
	OS              string     `json:"os"`
	Platform        string     `json:"platform"`
	PlatformVersion string     `json:"platform_version"`
	KernelVersion   string     `json:"kernel_version"`
	KernelArch      string     `json:"kernel_arch"`
	Uptime          string     `json:"uptime"`
	CPU             HostCPU    `json:"cpu"`
	Memory          HostMemory `json:"memory"`
	Disk            HostDisk   `json:"disk"`
}
