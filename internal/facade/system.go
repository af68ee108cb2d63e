package facade

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/wharfd/wharfd/internal/canon"
	"github.com/wharfd/wharfd/internal/domain"
	"github.com/wharfd/wharfd/internal/engine"
	"github.com/wharfd/wharfd/pkg/logger"
)

// MinAPIVersion is the oldest engine API version the canonical shapes
// are known to hold for.
const MinAPIVersion = "1.24"

// DefaultPingTimeout bounds the liveness probe when none is configured.
const DefaultPingTimeout = 2 * time.Second

// HostProber takes a snapshot of the machine the service runs on.
type HostProber interface {
	Snapshot(ctx context.Context) (domain.HostInfo, error)
}

// System exposes the engine- and host-level operations.
type System struct {
	base
	host        HostProber
	pingTimeout time.Duration
}

// NewSystem builds the system facade. host may be nil, in which case
// the host-info operation reports an internal error.
func NewSystem(eng engine.Client, host HostProber, pingTimeout time.Duration) *System {
	if pingTimeout <= 0 {
		pingTimeout = DefaultPingTimeout
	}
	return &System{base: base{engine: eng}, host: host, pingTimeout: pingTimeout}
}

// Version reports the engine version.
func (f *System) Version(ctx context.Context) (domain.Envelope, int) {
	v, err := f.engine.ServerVersion(ctx)
	if err != nil {
		return fail(err)
	}
	return ok(canon.Version(v))
}

// Info reports the engine info.
func (f *System) Info(ctx context.Context) (domain.Envelope, int) {
	info, err := f.engine.Info(ctx)
	if err != nil {
		return fail(err)
	}
	return ok(canon.Info(info))
}

// DiskUsage reports the engine's disk usage by category.
func (f *System) DiskUsage(ctx context.Context) (domain.Envelope, int) {
	du, err := f.engine.DiskUsage(ctx)
	if err != nil {
		return fail(err)
	}
	return ok(canon.DiskUsage(du))
}

// Status probes the engine and always succeeds: an unreachable engine
// becomes a payload describing the outage, never an error envelope.
func (f *System) Status(ctx context.Context) (domain.Envelope, int) {
	status, _ := f.probe(ctx)
	return ok(status)
}

// Probe returns the daemon-status payload directly, for callers outside
// the envelope path (the liveness route).
func (f *System) Probe(ctx context.Context) domain.DaemonStatus {
	status, _ := f.probe(ctx)
	return status
}

func (f *System) probe(ctx context.Context) (domain.DaemonStatus, bool) {
	pingCtx, cancel := context.WithTimeout(ctx, f.pingTimeout)
	defer cancel()

	ping, err := f.engine.Ping(pingCtx)
	if err != nil {
		return unreachable(err), false
	}
	version, err := f.engine.ServerVersion(ctx)
	if err != nil {
		return unreachable(err), false
	}
	info, err := f.engine.Info(ctx)
	if err != nil {
		return unreachable(err), false
	}
	apiVersion := ping.APIVersion
	if apiVersion == "" {
		apiVersion = version.APIVersion
	}
	return domain.DaemonStatus{
		Status:            "running",
		Ping:              true,
		ServerVersion:     version.Version,
		APIVersion:        apiVersion,
		MinAPIVersion:     MinAPIVersion,
		APICompatible:     apiCompatible(apiVersion),
		ContainersRunning: info.ContainersRunning,
		ContainersTotal:   info.Containers,
		ImagesTotal:       info.Images,
		StorageDriver:     info.Driver,
		LoggingDriver:     info.LoggingDriver,
		LiveRestore:       info.LiveRestoreEnabled,
		Experimental:      info.ExperimentalBuild,
	}, true
}

func unreachable(err error) domain.DaemonStatus {
	msg := MapError(err).Message
	return domain.DaemonStatus{Status: "unreachable", Error: &msg}
}

// apiCompatible gates the negotiated engine API version against the
// minimum this service supports.
func apiCompatible(apiVersion string) bool {
	if apiVersion == "" {
		return false
	}
	v, err := semver.NewVersion(apiVersion)
	if err != nil {
		logger.Debug("unparseable engine api version", "version", apiVersion)
		return false
	}
	floor := semver.MustParse(MinAPIVersion)
	return !v.LessThan(floor)
}

// Stats composes the aggregate inventory snapshot. Any constituent
// failure fails the whole operation; no partial data is returned.
func (f *System) Stats(ctx context.Context) (domain.Envelope, int) {
	version, err := f.engine.ServerVersion(ctx)
	if err != nil {
		return fail(err)
	}
	info, err := f.engine.Info(ctx)
	if err != nil {
		return fail(err)
	}
	du, err := f.engine.DiskUsage(ctx)
	if err != nil {
		return fail(err)
	}
	networks, err := f.engine.NetworkList(ctx)
	if err != nil {
		return fail(err)
	}

	disk := canon.DiskUsage(du)
	var stats domain.SystemStats
	stats.Engine.Version = version.Version
	stats.Engine.APIVersion = version.APIVersion
	stats.Containers = domain.ContainerCounts{
		Total:   info.Containers,
		Running: info.ContainersRunning,
		Paused:  info.ContainersPaused,
		Stopped: info.ContainersStopped,
	}
	stats.Images.Count = disk.Images.Count
	stats.Images.Size = disk.Images.Size
	stats.Images.SizeBytes = disk.Images.SizeBytes
	stats.Volumes.Count = disk.Volumes.Count
	stats.Volumes.Size = disk.Volumes.Size
	stats.Volumes.SizeBytes = disk.Volumes.SizeBytes
	stats.Networks.Count = len(networks)
	stats.Disk = disk.Total
	return ok(stats)
}

// HostInfo reports the host platform snapshot.
func (f *System) HostInfo(ctx context.Context) (domain.Envelope, int) {
	if f.host == nil {
		return fail(errHostProbeUnavailable)
	}
	info, err := f.host.Snapshot(ctx)
	if err != nil {
		logger.Error("host snapshot failed", "error", err)
		return fail(err)
	}
	return ok(info)
}

var errHostProbeUnavailable = errors.New("host probing is not wired")
