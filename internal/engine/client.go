// Package engine defines the narrow port the facades consume from the
// container engine, plus the Docker SDK adapter implementing it.
// Engine-native types cross this boundary only on the way into the
// response canonicalizer; everything else speaks canonical shapes.
package engine

import (
	"context"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/api/types/system"
	"github.com/docker/docker/api/types/volume"
)

// ContainerCreateParams is the exact argument shape the engine needs for
// a container create. The request normalizer is the only producer.
type ContainerCreateParams struct {
	Name   string
	Config *container.Config
	Host   *container.HostConfig
}

// ImageBuildParams is the normalized argument shape for an image build.
type ImageBuildParams struct {
	ContextDir string
	Dockerfile string
	Tag        string
	Labels     map[string]string
	BuildArgs  map[string]string
	NoCache    bool
}

// Client is the engine port. Implementations must preserve the
// not-found / conflict / unreachable distinction in returned errors
// (see ErrNotFound and friends) — the error mapper depends on it.
// Implementations must be safe for concurrent use.
type Client interface {
	ContainerList(ctx context.Context, all bool) ([]container.Summary, error)
	ContainerInspect(ctx context.Context, id string) (container.InspectResponse, error)
	ContainerCreate(ctx context.Context, params ContainerCreateParams) (container.InspectResponse, error)
	ContainerStart(ctx context.Context, id string) error
	ContainerStop(ctx context.Context, id string, timeout int) error
	ContainerRestart(ctx context.Context, id string, timeout int) error
	ContainerRemove(ctx context.Context, id string, force bool) error
	ContainerLogs(ctx context.Context, id string, tail int) (string, error)

	ImageList(ctx context.Context, all bool) ([]image.Summary, error)
	ImageInspect(ctx context.Context, ref string) (image.InspectResponse, error)
	ImageHistory(ctx context.Context, ref string) ([]image.HistoryResponseItem, error)
	ImagePull(ctx context.Context, ref string) (image.InspectResponse, error)
	ImageBuild(ctx context.Context, params ImageBuildParams) (image.InspectResponse, error)
	ImageRemove(ctx context.Context, ref string, force, noPrune bool) ([]image.DeleteResponse, error)
	ImageSearch(ctx context.Context, term string, limit int) ([]registry.SearchResult, error)
	ImagesPrune(ctx context.Context, danglingOnly bool) (image.PruneReport, error)

	VolumeList(ctx context.Context) ([]*volume.Volume, error)
	VolumeInspect(ctx context.Context, name string) (volume.Volume, error)
	VolumeCreate(ctx context.Context, opts volume.CreateOptions) (volume.Volume, error)
	VolumeRemove(ctx context.Context, name string, force bool) error
	VolumesPrune(ctx context.Context) (volume.PruneReport, error)

	NetworkList(ctx context.Context) ([]network.Summary, error)
	NetworkInspect(ctx context.Context, id string) (network.Inspect, error)
	NetworkCreate(ctx context.Context, name string, opts network.CreateOptions) (network.Inspect, error)
	NetworkRemove(ctx context.Context, id string) error
	NetworkConnect(ctx context.Context, networkID, containerID string) error
	NetworkDisconnect(ctx context.Context, networkID, containerID string, force bool) error
	NetworksPrune(ctx context.Context) (network.PruneReport, error)

	Ping(ctx context.Context) (types.Ping, error)
	ServerVersion(ctx context.Context) (types.Version, error)
	Info(ctx context.Context) (system.Info, error)
	DiskUsage(ctx context.Context) (types.DiskUsage, error)

	Close() error
}
