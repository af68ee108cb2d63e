package canon

import (
	"sort"
	"strconv"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"

	"github.com/wharfd/wharfd/internal/domain"
)

// Containers lifts a container listing, preserving engine order.
func Containers(items []container.Summary) []domain.Container {
	out := make([]domain.Container, 0, len(items))
	for _, item := range items {
		out = append(out, Container(item))
	}
	return out
}

// Container lifts one container summary into the list-item shape.
func Container(item container.Summary) domain.Container {
	name := ""
	if len(item.Names) > 0 {
		name = strings.TrimPrefix(item.Names[0], "/")
	}
	return domain.Container{
		ID:          ShortID(item.ID),
		Name:        name,
		Image:       item.Image,
		Status:      string(item.State),
		StateDetail: item.Status,
		Created:     unixTime(item.Created),
		Ports:       summaryPorts(item.Ports),
		Labels:      orEmptyMap(item.Labels),
	}
}

// ContainerDetail lifts a full inspect response.
func ContainerDetail(info container.InspectResponse) domain.ContainerDetail {
	detail := domain.ContainerDetail{
		ID:      info.ID,
		Name:    strings.TrimPrefix(info.Name, "/"),
		Created: parseTime(info.Created),
		Ports:   []domain.PortBinding{},
		Command: []string{},
	}
	if info.Config != nil {
		detail.Image = info.Config.Image
		detail.Environment = orEmptyList(info.Config.Env)
		detail.WorkingDir = info.Config.WorkingDir
		detail.Labels = orEmptyMap(info.Config.Labels)
		detail.Command = append(detail.Command, info.Config.Entrypoint...)
		detail.Command = append(detail.Command, info.Config.Cmd...)
	} else {
		detail.Environment = []string{}
		detail.Labels = map[string]string{}
	}
	if info.State != nil {
		detail.Status = string(info.State.Status)
		detail.StateDetail = containerStateDetail(info.State)
		detail.Started = parseTime(info.State.StartedAt)
		detail.Finished = parseTime(info.State.FinishedAt)
		detail.ExitCode = info.State.ExitCode
	}
	if info.HostConfig != nil {
		detail.RestartPolicy = domain.RestartPolicy{
			Name:              string(info.HostConfig.RestartPolicy.Name),
			MaximumRetryCount: info.HostConfig.RestartPolicy.MaximumRetryCount,
		}
	}
	detail.Networks = []string{}
	if info.NetworkSettings != nil {
		detail.Ports = portMapBindings(info.NetworkSettings.Ports)
		for netName := range info.NetworkSettings.Networks {
			detail.Networks = append(detail.Networks, netName)
		}
		sort.Strings(detail.Networks)
	}
	detail.Mounts = make([]domain.Mount, 0, len(info.Mounts))
	for _, m := range info.Mounts {
		mode := m.Mode
		if mode == "" {
			if m.RW {
				mode = "rw"
			} else {
				mode = "ro"
			}
		}
		source := m.Source
		if m.Name != "" {
			source = m.Name
		}
		detail.Mounts = append(detail.Mounts, domain.Mount{
			Source:      source,
			Destination: m.Destination,
			Mode:        mode,
		})
	}
	return detail
}

func containerStateDetail(state *container.State) string {
	if state.Status != "" {
		return string(state.Status)
	}
	return ""
}

// summaryPorts lifts the flat port list of a container summary, sorted
// by container port then protocol for a stable shape.
func summaryPorts(ports []container.Port) []domain.PortBinding {
	out := make([]domain.PortBinding, 0, len(ports))
	for _, p := range ports {
		binding := domain.PortBinding{
			ContainerPort: strconv.Itoa(int(p.PrivatePort)),
			Protocol:      string(p.Type),
			HostIP:        p.IP,
		}
		if p.PublicPort > 0 {
			binding.HostPort = strconv.Itoa(int(p.PublicPort))
		}
		out = append(out, binding)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ContainerPort != out[j].ContainerPort {
			return out[i].ContainerPort < out[j].ContainerPort
		}
		return out[i].Protocol < out[j].Protocol
	})
	return out
}

// portMapBindings lifts an inspect-style port map. Exposed-but-unpublished
// ports appear with empty host fields.
func portMapBindings(ports nat.PortMap) []domain.PortBinding {
	keys := make([]string, 0, len(ports))
	for port := range ports {
		keys = append(keys, string(port))
	}
	sort.Strings(keys)

	out := make([]domain.PortBinding, 0, len(keys))
	for _, key := range keys {
		port := nat.Port(key)
		bindings := ports[port]
		if len(bindings) == 0 {
			out = append(out, domain.PortBinding{
				ContainerPort: port.Port(),
				Protocol:      port.Proto(),
			})
			continue
		}
		for _, b := range bindings {
			out = append(out, domain.PortBinding{
				ContainerPort: port.Port(),
				Protocol:      port.Proto(),
				HostIP:        b.HostIP,
				HostPort:      b.HostPort,
			})
		}
	}
	return out
}
