package canon

import (
	"sort"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/system"

	"github.com/wharfd/wharfd/internal/domain"
	"github.com/wharfd/wharfd/pkg/humanize"
)

// Version lifts the engine version report.
func Version(v types.Version) domain.EngineVersion {
	return domain.EngineVersion{
		Version:       v.Version,
		APIVersion:    v.APIVersion,
		MinAPIVersion: v.MinAPIVersion,
		GitCommit:     v.GitCommit,
		GoVersion:     v.GoVersion,
		OS:            v.Os,
		Arch:          v.Arch,
		KernelVersion: v.KernelVersion,
		BuildTime:     v.BuildTime,
		Experimental:  v.Experimental,
	}
}

// Info lifts the engine info report.
func Info(info system.Info) domain.EngineInfo {
	runtimes := make([]string, 0, len(info.Runtimes))
	for name := range info.Runtimes {
		runtimes = append(runtimes, name)
	}
	sort.Strings(runtimes)
	return domain.EngineInfo{
		Name:            info.Name,
		ServerVersion:   info.ServerVersion,
		StorageDriver:   info.Driver,
		LoggingDriver:   info.LoggingDriver,
		CgroupDriver:    info.CgroupDriver,
		CgroupVersion:   info.CgroupVersion,
		KernelVersion:   info.KernelVersion,
		OperatingSystem: info.OperatingSystem,
		OSType:          info.OSType,
		Architecture:    info.Architecture,
		CPUs:            info.NCPU,
		Memory:          humanize.Bytes(info.MemTotal),
		MemoryBytes:     info.MemTotal,
		Containers: domain.ContainerCounts{
			Total:   info.Containers,
			Running: info.ContainersRunning,
			Paused:  info.ContainersPaused,
			Stopped: info.ContainersStopped,
		},
		Images:         info.Images,
		DockerRootDir:  info.DockerRootDir,
		DefaultRuntime: info.DefaultRuntime,
		Runtimes:       runtimes,
		Plugins: domain.EnginePlugins{
			Volume:  orEmptyList(info.Plugins.Volume),
			Network: orEmptyList(info.Plugins.Network),
			Log:     orEmptyList(info.Plugins.Log),
		},
		Swarm: domain.SwarmStatus{
			NodeID:           info.Swarm.NodeID,
			State:            string(info.Swarm.LocalNodeState),
			ControlAvailable: info.Swarm.ControlAvailable,
		},
		LiveRestore:  info.LiveRestoreEnabled,
		Experimental: info.ExperimentalBuild,
		Warnings:     orEmptyList(info.Warnings),
		Labels:       orEmptyList(info.Labels),
	}
}

// DiskUsage lifts the engine disk-usage report into per-category
// figures plus a total. Reclaimable follows the engine's own rules:
// stopped containers, unused images and volumes, idle build cache.
func DiskUsage(du types.DiskUsage) domain.DiskUsage {
	var out domain.DiskUsage

	var size, reclaimable int64
	for _, c := range du.Containers {
		if c == nil {
			continue
		}
		size += c.SizeRw
		if string(c.State) != "running" {
			reclaimable += c.SizeRw
		}
	}
	out.Containers = diskCategory(len(du.Containers), size, reclaimable)

	size, reclaimable = 0, 0
	for _, img := range du.Images {
		if img == nil {
			continue
		}
		size += img.Size
		if img.Containers == 0 {
			reclaimable += img.Size
		}
	}
	out.Images = diskCategory(len(du.Images), size, reclaimable)

	size, reclaimable = 0, 0
	for _, v := range du.Volumes {
		if v == nil || v.UsageData == nil || v.UsageData.Size < 0 {
			continue
		}
		size += v.UsageData.Size
		if v.UsageData.RefCount == 0 {
			reclaimable += v.UsageData.Size
		}
	}
	out.Volumes = diskCategory(len(du.Volumes), size, reclaimable)

	size, reclaimable = 0, 0
	for _, bc := range du.BuildCache {
		if bc == nil {
			continue
		}
		size += bc.Size
		if !bc.InUse {
			reclaimable += bc.Size
		}
	}
	out.BuildCache = diskCategory(len(du.BuildCache), size, reclaimable)

	out.Total = diskCategory(
		out.Containers.Count+out.Images.Count+out.Volumes.Count+out.BuildCache.Count,
		out.Containers.SizeBytes+out.Images.SizeBytes+out.Volumes.SizeBytes+out.BuildCache.SizeBytes,
		out.Containers.ReclaimableBytes+out.Images.ReclaimableBytes+out.Volumes.ReclaimableBytes+out.BuildCache.ReclaimableBytes,
	)
	return out
}

func diskCategory(count int, size, reclaimable int64) domain.DiskCategory {
	return domain.DiskCategory{
		Count:            count,
		Size:             humanize.Bytes(size),
		SizeBytes:        size,
		Reclaimable:      humanize.Bytes(reclaimable),
		ReclaimableBytes: reclaimable,
	}
}
