package engine

import (
	"context"
	"sync"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/api/types/system"
	"github.com/docker/docker/api/types/volume"
)

// Mock implements Client for tests. Each method delegates to the
// matching function field when set and returns zero values otherwise,
// and every call is counted so tests can assert how often (and whether)
// the engine was reached.
type Mock struct {
	mu    sync.Mutex
	calls map[string]int

	ContainerListFn    func(ctx context.Context, all bool) ([]container.Summary, error)
	ContainerInspectFn func(ctx context.Context, id string) (container.InspectResponse, error)
	ContainerCreateFn  func(ctx context.Context, params ContainerCreateParams) (container.InspectResponse, error)
	ContainerStartFn   func(ctx context.Context, id string) error
	ContainerStopFn    func(ctx context.Context, id string, timeout int) error
	ContainerRestartFn func(ctx context.Context, id string, timeout int) error
	ContainerRemoveFn  func(ctx context.Context, id string, force bool) error
	ContainerLogsFn    func(ctx context.Context, id string, tail int) (string, error)

	ImageListFn    func(ctx context.Context, all bool) ([]image.Summary, error)
	ImageInspectFn func(ctx context.Context, ref string) (image.InspectResponse, error)
	ImageHistoryFn func(ctx context.Context, ref string) ([]image.HistoryResponseItem, error)
	ImagePullFn    func(ctx context.Context, ref string) (image.InspectResponse, error)
	ImageBuildFn   func(ctx context.Context, params ImageBuildParams) (image.InspectResponse, error)
	ImageRemoveFn  func(ctx context.Context, ref string, force, noPrune bool) ([]image.DeleteResponse, error)
	ImageSearchFn  func(ctx context.Context, term string, limit int) ([]registry.SearchResult, error)
	ImagesPruneFn  func(ctx context.Context, danglingOnly bool) (image.PruneReport, error)

	VolumeListFn    func(ctx context.Context) ([]*volume.Volume, error)
	VolumeInspectFn func(ctx context.Context, name string) (volume.Volume, error)
	VolumeCreateFn  func(ctx context.Context, opts volume.CreateOptions) (volume.Volume, error)
	VolumeRemoveFn  func(ctx context.Context, name string, force bool) error
	VolumesPruneFn  func(ctx context.Context) (volume.PruneReport, error)

	NetworkListFn       func(ctx context.Context) ([]network.Summary, error)
	NetworkInspectFn    func(ctx context.Context, id string) (network.Inspect, error)
	NetworkCreateFn     func(ctx context.Context, name string, opts network.CreateOptions) (network.Inspect, error)
	NetworkRemoveFn     func(ctx context.Context, id string) error
	NetworkConnectFn    func(ctx context.Context, networkID, containerID string) error
	NetworkDisconnectFn func(ctx context.Context, networkID, containerID string, force bool) error
	NetworksPruneFn     func(ctx context.Context) (network.PruneReport, error)

	PingFn          func(ctx context.Context) (types.Ping, error)
	ServerVersionFn func(ctx context.Context) (types.Version, error)
	InfoFn          func(ctx context.Context) (system.Info, error)
	DiskUsageFn     func(ctx context.Context) (types.DiskUsage, error)
}

func (m *Mock) count(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

// Calls returns how many times the named method was invoked.
func (m *Mock) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// TotalCalls returns the number of engine calls across all methods.
func (m *Mock) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

func (m *Mock) ContainerList(ctx context.Context, all bool) ([]container.Summary, error) {
	m.count("ContainerList")
	if m.ContainerListFn != nil {
		return m.ContainerListFn(ctx, all)
	}
	return nil, nil
}

func (m *Mock) ContainerInspect(ctx context.Context, id string) (container.InspectResponse, error) {
	m.count("ContainerInspect")
	if m.ContainerInspectFn != nil {
		return m.ContainerInspectFn(ctx, id)
	}
	return container.InspectResponse{}, nil
}

func (m *Mock) ContainerCreate(ctx context.Context, params ContainerCreateParams) (container.InspectResponse, error) {
	m.count("ContainerCreate")
	if m.ContainerCreateFn != nil {
		return m.ContainerCreateFn(ctx, params)
	}
	return container.InspectResponse{}, nil
}

func (m *Mock) ContainerStart(ctx context.Context, id string) error {
	m.count("ContainerStart")
	if m.ContainerStartFn != nil {
		return m.ContainerStartFn(ctx, id)
	}
	return nil
}

func (m *Mock) ContainerStop(ctx context.Context, id string, timeout int) error {
	m.count("ContainerStop")
	if m.ContainerStopFn != nil {
		return m.ContainerStopFn(ctx, id, timeout)
	}
	return nil
}

func (m *Mock) ContainerRestart(ctx context.Context, id string, timeout int) error {
	m.count("ContainerRestart")
	if m.ContainerRestartFn != nil {
		return m.ContainerRestartFn(ctx, id, timeout)
	}
	return nil
}

func (m *Mock) ContainerRemove(ctx context.Context, id string, force bool) error {
	m.count("ContainerRemove")
	if m.ContainerRemoveFn != nil {
		return m.ContainerRemoveFn(ctx, id, force)
	}
	return nil
}

func (m *Mock) ContainerLogs(ctx context.Context, id string, tail int) (string, error) {
	m.count("ContainerLogs")
	if m.ContainerLogsFn != nil {
		return m.ContainerLogsFn(ctx, id, tail)
	}
	return "", nil
}

func (m *Mock) ImageList(ctx context.Context, all bool) ([]image.Summary, error) {
	m.count("ImageList")
	if m.ImageListFn != nil {
		return m.ImageListFn(ctx, all)
	}
	return nil, nil
}

func (m *Mock) ImageInspect(ctx context.Context, ref string) (image.InspectResponse, error) {
	m.count("ImageInspect")
	if m.ImageInspectFn != nil {
		return m.ImageInspectFn(ctx, ref)
	}
	return image.InspectResponse{}, nil
}

func (m *Mock) ImageHistory(ctx context.Context, ref string) ([]image.HistoryResponseItem, error) {
	m.count("ImageHistory")
	if m.ImageHistoryFn != nil {
		return m.ImageHistoryFn(ctx, ref)
	}
	return nil, nil
}

func (m *Mock) ImagePull(ctx context.Context, ref string) (image.InspectResponse, error) {
	m.count("ImagePull")
	if m.ImagePullFn != nil {
		return m.ImagePullFn(ctx, ref)
	}
	return image.InspectResponse{}, nil
}

func (m *Mock) ImageBuild(ctx context.Context, params ImageBuildParams) (image.InspectResponse, error) {
	m.count("ImageBuild")
	if m.ImageBuildFn != nil {
		return m.ImageBuildFn(ctx, params)
	}
	return image.InspectResponse{}, nil
}

func (m *Mock) ImageRemove(ctx context.Context, ref string, force, noPrune bool) ([]image.DeleteResponse, error) {
	m.count("ImageRemove")
	if m.ImageRemoveFn != nil {
		return m.ImageRemoveFn(ctx, ref, force, noPrune)
	}
	return nil, nil
}

func (m *Mock) ImageSearch(ctx context.Context, term string, limit int) ([]registry.SearchResult, error) {
	m.count("ImageSearch")
	if m.ImageSearchFn != nil {
		return m.ImageSearchFn(ctx, term, limit)
	}
	return nil, nil
}

func (m *Mock) ImagesPrune(ctx context.Context, danglingOnly bool) (image.PruneReport, error) {
	m.count("ImagesPrune")
	if m.ImagesPruneFn != nil {
		return m.ImagesPruneFn(ctx, danglingOnly)
	}
	return image.PruneReport{}, nil
}

func (m *Mock) VolumeList(ctx context.Context) ([]*volume.Volume, error) {
	m.count("VolumeList")
	if m.VolumeListFn != nil {
		return m.VolumeListFn(ctx)
	}
	return nil, nil
}

func (m *Mock) VolumeInspect(ctx context.Context, name string) (volume.Volume, error) {
	m.count("VolumeInspect")
	if m.VolumeInspectFn != nil {
		return m.VolumeInspectFn(ctx, name)
	}
	return volume.Volume{}, nil
}

func (m *Mock) VolumeCreate(ctx context.Context, opts volume.CreateOptions) (volume.Volume, error) {
	m.count("VolumeCreate")
	if m.VolumeCreateFn != nil {
		return m.VolumeCreateFn(ctx, opts)
	}
	return volume.Volume{}, nil
}

func (m *Mock) VolumeRemove(ctx context.Context, name string, force bool) error {
	m.count("VolumeRemove")
	if m.VolumeRemoveFn != nil {
		return m.VolumeRemoveFn(ctx, name, force)
	}
	return nil
}

func (m *Mock) VolumesPrune(ctx context.Context) (volume.PruneReport, error) {
	m.count("VolumesPrune")
	if m.VolumesPruneFn != nil {
		return m.VolumesPruneFn(ctx)
	}
	return volume.PruneReport{}, nil
}

func (m *Mock) NetworkList(ctx context.Context) ([]network.Summary, error) {
	m.count("NetworkList")
	if m.NetworkListFn != nil {
		return m.NetworkListFn(ctx)
	}
	return nil, nil
}

func (m *Mock) NetworkInspect(ctx context.Context, id string) (network.Inspect, error) {
	m.count("NetworkInspect")
	if m.NetworkInspectFn != nil {
		return m.NetworkInspectFn(ctx, id)
	}
	return network.Inspect{}, nil
}

func (m *Mock) NetworkCreate(ctx context.Context, name string, opts network.CreateOptions) (network.Inspect, error) {
	m.count("NetworkCreate")
	if m.NetworkCreateFn != nil {
		return m.NetworkCreateFn(ctx, name, opts)
	}
	return network.Inspect{}, nil
}

func (m *Mock) NetworkRemove(ctx context.Context, id string) error {
	m.count("NetworkRemove")
	if m.NetworkRemoveFn != nil {
		return m.NetworkRemoveFn(ctx, id)
	}
	return nil
}

func (m *Mock) NetworkConnect(ctx context.Context, networkID, containerID string) error {
	m.count("NetworkConnect")
	if m.NetworkConnectFn != nil {
		return m.NetworkConnectFn(ctx, networkID, containerID)
	}
	return nil
}

func (m *Mock) NetworkDisconnect(ctx context.Context, networkID, containerID string, force bool) error {
	m.count("NetworkDisconnect")
	if m.NetworkDisconnectFn != nil {
		return m.NetworkDisconnectFn(ctx, networkID, containerID, force)
	}
	return nil
}

func (m *Mock) NetworksPrune(ctx context.Context) (network.PruneReport, error) {
	m.count("NetworksPrune")
	if m.NetworksPruneFn != nil {
		return m.NetworksPruneFn(ctx)
	}
	return network.PruneReport{}, nil
}

func (m *Mock) Ping(ctx context.Context) (types.Ping, error) {
	m.count("Ping")
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return types.Ping{}, nil
}

func (m *Mock) ServerVersion(ctx context.Context) (types.Version, error) {
	m.count("ServerVersion")
	if m.ServerVersionFn != nil {
		return m.ServerVersionFn(ctx)
	}
	return types.Version{}, nil
}

func (m *Mock) Info(ctx context.Context) (system.Info, error) {
	m.count("Info")
	if m.InfoFn != nil {
		return m.InfoFn(ctx)
	}
	return system.Info{}, nil
}

func (m *Mock) DiskUsage(ctx context.Context) (types.DiskUsage, error) {
	m.count("DiskUsage")
	if m.DiskUsageFn != nil {
		return m.DiskUsageFn(ctx)
	}
	return types.DiskUsage{}, nil
}

func (m *Mock) Close() error { return nil }

var _ Client = (*Mock)(nil)
