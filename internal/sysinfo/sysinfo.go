// Package sysinfo snapshots the machine the service runs on. It probes
// the host directly, not the container engine, so it keeps working when
// the engine is down.
package sysinfo

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/wharfd/wharfd/internal/domain"
	"github.com/wharfd/wharfd/pkg/duration"
	"github.com/wharfd/wharfd/pkg/humanize"
)

// DefaultDiskPath is the filesystem reported in the disk section.
const DefaultDiskPath = "/"

// Prober implements facade.HostProber against the local machine.
type Prober struct {
	diskPath string
}

// NewProber builds a prober. diskPath "" means DefaultDiskPath.
func NewProber(diskPath string) *Prober {
	if diskPath == "" {
		diskPath = DefaultDiskPath
	}
	return &Prober{diskPath: diskPath}
}

// Snapshot gathers the host platform, CPU, memory, and disk figures.
func (p *Prober) Snapshot(ctx context.Context) (domain.HostInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return domain.HostInfo{}, fmt.Errorf("host info: %w", err)
	}
	physical, err := cpu.CountsWithContext(ctx, false)
	if err != nil {
		return domain.HostInfo{}, fmt.Errorf("cpu count: %w", err)
	}
	logical, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return domain.HostInfo{}, fmt.Errorf("cpu count: %w", err)
	}
	usage, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return domain.HostInfo{}, fmt.Errorf("cpu usage: %w", err)
	}
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return domain.HostInfo{}, fmt.Errorf("memory: %w", err)
	}
	du, err := disk.UsageWithContext(ctx, p.diskPath)
	if err != nil {
		return domain.HostInfo{}, fmt.Errorf("disk usage %s: %w", p.diskPath, err)
	}

	var usagePercent float64
	if len(usage) > 0 {
		usagePercent = usage[0]
	}
	return domain.HostInfo{
		Hostname:        info.Hostname,
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
		KernelArch:      info.KernelArch,
		Uptime:          duration.Format(time.Duration(info.Uptime) * time.Second),
		CPU: domain.HostCPU{
			Count:        physical,
			LogicalCount: logical,
			UsagePercent: usagePercent,
		},
		Memory: domain.HostMemory{
			Total:          humanize.Bytes(int64(vm.Total)),
			TotalBytes:     vm.Total,
			Available:      humanize.Bytes(int64(vm.Available)),
			AvailableBytes: vm.Available,
			UsedPercent:    vm.UsedPercent,
		},
		Disk: domain.HostDisk{
			Path:        du.Path,
			Total:       humanize.Bytes(int64(du.Total)),
			TotalBytes:  du.Total,
			Free:        humanize.Bytes(int64(du.Free)),
			FreeBytes:   du.Free,
			Used:        humanize.Bytes(int64(du.Used)),
			UsedBytes:   du.Used,
			UsedPercent: du.UsedPercent,
		},
	}, nil
}
