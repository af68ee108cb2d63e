package engine

import (
	"archive/tar"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/api/types/system"
	"github.com/docker/docker/api/types/volume"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/jsonmessage"
	"github.com/docker/docker/pkg/stdcopy"
	"golang.org/x/time/rate"

	"github.com/wharfd/wharfd/pkg/logger"
)

// Docker is the SDK-backed implementation of Client. Every returned
// error goes through wrap so the port's error contract holds.
type Docker struct {
	cli *client.Client

	// progressLog bounds pull/build progress logging to one line per
	// second; the streams emit hundreds of messages for large images.
	progressLog *rate.Limiter
}

// NewDocker connects to the engine. An empty host falls back to the
// environment (DOCKER_HOST) and the platform default socket.
func NewDocker(host string) (*Docker, error) {
	opts := []client.Opt{client.FromEnv, client.WithAPIVersionNegotiation()}
	if host != "" {
		opts = append(opts, client.WithHost(host))
	}
	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("docker client: %w", err)
	}
	return &Docker{cli: cli, progressLog: rate.NewLimiter(1, 1)}, nil
}

// NewDockerWithClient wraps an existing SDK client (used by tests).
func NewDockerWithClient(cli *client.Client) *Docker {
	return &Docker{cli: cli, progressLog: rate.NewLimiter(1, 1)}
}

func (d *Docker) ContainerList(ctx context.Context, all bool) ([]container.Summary, error) {
	list, err := d.cli.ContainerList(ctx, container.ListOptions{All: all})
	if err != nil {
		return nil, wrap("container list", err)
	}
	return list, nil
}

func (d *Docker) ContainerInspect(ctx context.Context, id string) (container.InspectResponse, error) {
	resp, err := d.cli.ContainerInspect(ctx, id)
	if err != nil {
		return container.InspectResponse{}, wrap("container inspect", err)
	}
	return resp, nil
}

func (d *Docker) ContainerCreate(ctx context.Context, params ContainerCreateParams) (container.InspectResponse, error) {
	resp, err := d.cli.ContainerCreate(ctx, params.Config, params.Host, nil, nil, params.Name)
	if err != nil {
		return container.InspectResponse{}, wrap("container create", err)
	}
	logger.Debug("container created", "id", resp.ID, "name", params.Name)
	return d.ContainerInspect(ctx, resp.ID)
}

func (d *Docker) ContainerStart(ctx context.Context, id string) error {
	return wrap("container start", d.cli.ContainerStart(ctx, id, container.StartOptions{}))
}

func (d *Docker) ContainerStop(ctx context.Context, id string, timeout int) error {
	return wrap("container stop", d.cli.ContainerStop(ctx, id, container.StopOptions{Timeout: &timeout}))
}

func (d *Docker) ContainerRestart(ctx context.Context, id string, timeout int) error {
	return wrap("container restart", d.cli.ContainerRestart(ctx, id, container.StopOptions{Timeout: &timeout}))
}

func (d *Docker) ContainerRemove(ctx context.Context, id string, force bool) error {
	return wrap("container remove", d.cli.ContainerRemove(ctx, id, container.RemoveOptions{Force: force}))
}

// ContainerLogs returns a buffered tail. Non-TTY containers multiplex
// stdout/stderr with 8-byte headers; stdcopy demuxes them.
func (d *Docker) ContainerLogs(ctx context.Context, id string, tail int) (string, error) {
	inspect, err := d.cli.ContainerInspect(ctx, id)
	if err != nil {
		return "", wrap("container logs", err)
	}

	stream, err := d.cli.ContainerLogs(ctx, id, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Tail:       strconv.Itoa(tail),
	})
	if err != nil {
		return "", wrap("container logs", err)
	}
	defer stream.Close()

	var buf bytes.Buffer
	if inspect.Config != nil && inspect.Config.Tty {
		_, err = io.Copy(&buf, stream)
	} else {
		_, err = stdcopy.StdCopy(&buf, &buf, stream)
	}
	if err != nil {
		return "", wrap("container logs", err)
	}
	return buf.String(), nil
}

func (d *Docker) ImageList(ctx context.Context, all bool) ([]image.Summary, error) {
	list, err := d.cli.ImageList(ctx, image.ListOptions{All: all})
	if err != nil {
		return nil, wrap("image list", err)
	}
	return list, nil
}

func (d *Docker) ImageInspect(ctx context.Context, ref string) (image.InspectResponse, error) {
	resp, err := d.cli.ImageInspect(ctx, ref)
	if err != nil {
		return image.InspectResponse{}, wrap("image inspect", err)
	}
	return resp, nil
}

func (d *Docker) ImageHistory(ctx context.Context, ref string) ([]image.HistoryResponseItem, error) {
	history, err := d.cli.ImageHistory(ctx, ref)
	if err != nil {
		return nil, wrap("image history", err)
	}
	return history, nil
}

// ImagePull blocks until the pull stream is drained, then inspects the
// pulled image for the result.
func (d *Docker) ImagePull(ctx context.Context, ref string) (image.InspectResponse, error) {
	logger.Info("pulling image", "ref", ref)
	reader, err := d.cli.ImagePull(ctx, ref, image.PullOptions{})
	if err != nil {
		return image.InspectResponse{}, wrap("image pull", err)
	}
	defer reader.Close()

	if _, err := d.drainProgress(reader, "pull"); err != nil {
		return image.InspectResponse{}, wrap("image pull", err)
	}
	logger.Info("image pulled", "ref", ref)
	return d.ImageInspect(ctx, ref)
}

// ImageBuild tars the context directory in-process, drains the build
// stream and inspects the result. The build log is not returned.
func (d *Docker) ImageBuild(ctx context.Context, params ImageBuildParams) (image.InspectResponse, error) {
	buildCtx, err := tarDirectory(params.ContextDir)
	if err != nil {
		return image.InspectResponse{}, &Error{sentinel: ErrEngine, msg: "image build: " + err.Error()}
	}

	buildArgs := make(map[string]*string, len(params.BuildArgs))
	for k, v := range params.BuildArgs {
		v := v
		buildArgs[k] = &v
	}
	opts := types.ImageBuildOptions{
		Dockerfile: params.Dockerfile,
		Labels:     params.Labels,
		BuildArgs:  buildArgs,
		NoCache:    params.NoCache,
		Remove:     true,
	}
	if params.Tag != "" {
		opts.Tags = []string{params.Tag}
	}

	logger.Info("building image", "context", params.ContextDir, "tag", params.Tag)
	resp, err := d.cli.ImageBuild(ctx, buildCtx, opts)
	if err != nil {
		return image.InspectResponse{}, wrap("image build", err)
	}
	defer resp.Body.Close()

	builtID, err := d.drainProgress(resp.Body, "build")
	if err != nil {
		return image.InspectResponse{}, wrap("image build", err)
	}

	ref := params.Tag
	if ref == "" {
		ref = builtID
	}
	if ref == "" {
		return image.InspectResponse{}, &Error{sentinel: ErrEngine, msg: "image build: stream ended without an image id"}
	}
	logger.Info("image built", "ref", ref)
	return d.ImageInspect(ctx, ref)
}

func (d *Docker) ImageRemove(ctx context.Context, ref string, force, noPrune bool) ([]image.DeleteResponse, error) {
	deleted, err := d.cli.ImageRemove(ctx, ref, image.RemoveOptions{Force: force, PruneChildren: !noPrune})
	if err != nil {
		return nil, wrap("image remove", err)
	}
	return deleted, nil
}

func (d *Docker) ImageSearch(ctx context.Context, term string, limit int) ([]registry.SearchResult, error) {
	results, err := d.cli.ImageSearch(ctx, term, registry.SearchOptions{Limit: limit})
	if err != nil {
		return nil, wrap("image search", err)
	}
	return results, nil
}

func (d *Docker) ImagesPrune(ctx context.Context, danglingOnly bool) (image.PruneReport, error) {
	pruneFilters := filters.NewArgs(filters.Arg("dangling", strconv.FormatBool(danglingOnly)))
	report, err := d.cli.ImagesPrune(ctx, pruneFilters)
	if err != nil {
		return image.PruneReport{}, wrap("image prune", err)
	}
	return report, nil
}

func (d *Docker) VolumeList(ctx context.Context) ([]*volume.Volume, error) {
	resp, err := d.cli.VolumeList(ctx, volume.ListOptions{})
	if err != nil {
		return nil, wrap("volume list", err)
	}
	return resp.Volumes, nil
}

func (d *Docker) VolumeInspect(ctx context.Context, name string) (volume.Volume, error) {
	vol, err := d.cli.VolumeInspect(ctx, name)
	if err != nil {
		return volume.Volume{}, wrap("volume inspect", err)
	}
	return vol, nil
}

func (d *Docker) VolumeCreate(ctx context.Context, opts volume.CreateOptions) (volume.Volume, error) {
	vol, err := d.cli.VolumeCreate(ctx, opts)
	if err != nil {
		return volume.Volume{}, wrap("volume create", err)
	}
	logger.Debug("volume created", "name", vol.Name)
	return vol, nil
}

func (d *Docker) VolumeRemove(ctx context.Context, name string, force bool) error {
	return wrap("volume remove", d.cli.VolumeRemove(ctx, name, force))
}

func (d *Docker) VolumesPrune(ctx context.Context) (volume.PruneReport, error) {
	report, err := d.cli.VolumesPrune(ctx, filters.NewArgs())
	if err != nil {
		return volume.PruneReport{}, wrap("volume prune", err)
	}
	return report, nil
}

func (d *Docker) NetworkList(ctx context.Context) ([]network.Summary, error) {
	list, err := d.cli.NetworkList(ctx, network.ListOptions{})
	if err != nil {
		return nil, wrap("network list", err)
	}
	return list, nil
}

func (d *Docker) NetworkInspect(ctx context.Context, id string) (network.Inspect, error) {
	resp, err := d.cli.NetworkInspect(ctx, id, network.InspectOptions{})
	if err != nil {
		return network.Inspect{}, wrap("network inspect", err)
	}
	return resp, nil
}

func (d *Docker) NetworkCreate(ctx context.Context, name string, opts network.CreateOptions) (network.Inspect, error) {
	resp, err := d.cli.NetworkCreate(ctx, name, opts)
	if err != nil {
		return network.Inspect{}, wrap("network create", err)
	}
	logger.Debug("network created", "name", name, "id", resp.ID)
	return d.NetworkInspect(ctx, resp.ID)
}

func (d *Docker) NetworkRemove(ctx context.Context, id string) error {
	return wrap("network remove", d.cli.NetworkRemove(ctx, id))
}

func (d *Docker) NetworkConnect(ctx context.Context, networkID, containerID string) error {
	return wrap("network connect", d.cli.NetworkConnect(ctx, networkID, containerID, &network.EndpointSettings{}))
}

func (d *Docker) NetworkDisconnect(ctx context.Context, networkID, containerID string, force bool) error {
	return wrap("network disconnect", d.cli.NetworkDisconnect(ctx, networkID, containerID, force))
}

func (d *Docker) NetworksPrune(ctx context.Context) (network.PruneReport, error) {
	report, err := d.cli.NetworksPrune(ctx, filters.NewArgs())
	if err != nil {
		return network.PruneReport{}, wrap("network prune", err)
	}
	return report, nil
}

func (d *Docker) Ping(ctx context.Context) (types.Ping, error) {
	ping, err := d.cli.Ping(ctx)
	if err != nil {
		return types.Ping{}, wrap("ping", err)
	}
	return ping, nil
}

func (d *Docker) ServerVersion(ctx context.Context) (types.Version, error) {
	version, err := d.cli.ServerVersion(ctx)
	if err != nil {
		return types.Version{}, wrap("version", err)
	}
	return version, nil
}

func (d *Docker) Info(ctx context.Context) (system.Info, error) {
	info, err := d.cli.Info(ctx)
	if err != nil {
		return system.Info{}, wrap("info", err)
	}
	return info, nil
}

func (d *Docker) DiskUsage(ctx context.Context) (types.DiskUsage, error) {
	du, err := d.cli.DiskUsage(ctx, types.DiskUsageOptions{})
	if err != nil {
		return types.DiskUsage{}, wrap("disk usage", err)
	}
	return du, nil
}

func (d *Docker) Close() error {
	return d.cli.Close()
}

// drainProgress reads a pull/build JSON stream to completion, logging
// progress at debug level through the rate limiter. It returns the image
// ID announced by the stream, when there is one, and fails on in-stream
// errors (the engine reports build failures inside the stream body).
func (d *Docker) drainProgress(r io.Reader, op string) (string, error) {
	var builtID string
	dec := json.NewDecoder(r)
	for {
		var msg jsonmessage.JSONMessage
		if err := dec.Decode(&msg); err != nil {
			if err == io.EOF {
				break
			}
			return "", fmt.Errorf("%s stream: %w", op, err)
		}
		if msg.Error != nil {
			return "", fmt.Errorf("%s: %s", op, msg.Error.Message)
		}
		if msg.Aux != nil {
			var aux struct {
				ID string `json:"ID"`
			}
			if err := json.Unmarshal(*msg.Aux, &aux); err == nil && aux.ID != "" {
				builtID = aux.ID
			}
		}
		if id, ok := strings.CutPrefix(strings.TrimSpace(msg.Stream), "Successfully built "); ok {
			builtID = id
		}
		if d.progressLog.Allow() {
			switch {
			case msg.Status != "":
				logger.Debug(op+" progress", "status", msg.Status, "id", msg.ID)
			case msg.Stream != "":
				logger.Debug(op+" progress", "stream", strings.TrimSpace(msg.Stream))
			}
		}
	}
	return builtID, nil
}

// tarDirectory packs a build context directory into an in-memory tar.
func tarDirectory(dir string) (io.Reader, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("build context %q is not a directory", dir)
	}

	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	err = filepath.WalkDir(dir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}
		fi, err := entry.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		link := ""
		if fi.Mode()&os.ModeSymlink != 0 {
			if link, err = os.Readlink(path); err != nil {
				return err
			}
		}
		hdr, err := tar.FileInfoHeader(fi, link)
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(rel)
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if !fi.Mode().IsRegular() {
			return nil
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(tw, f)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := tw.Close(); err != nil {
		return nil, err
	}
	return &buf, nil
}

// Compile-time port check.
var _ Client = (*Docker)(nil)
