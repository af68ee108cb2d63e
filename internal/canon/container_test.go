package canon

import (
	"testing"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerShortIDAndName(t *testing.T) {
	got := Container(container.Summary{
		ID:    "abcdef0123456789abcdef0123456789",
		Names: []string{"/w1"},
		Image: "nginx:latest",
	})
	assert.Equal(t, "abcdef012345", got.ID)
	assert.Equal(t, "w1", got.Name)
}

func TestContainerExplicitEmpties(t *testing.T) {
	got := Container(container.Summary{ID: "abc"})
	assert.NotNil(t, got.Labels)
	assert.Empty(t, got.Labels)
	assert.NotNil(t, got.Ports)
	assert.Empty(t, got.Ports)
	assert.Equal(t, "", got.Created)
}

func TestContainerTimestamps(t *testing.T) {
	got := Container(container.Summary{ID: "abc", Created: 1700000000})
	assert.Equal(t, "2023-11-14T22:13:20Z", got.Created)

	got = Container(container.Summary{ID: "abc", Created: 0})
	assert.Equal(t, "", got.Created)
}

func TestContainersPreserveOrder(t *testing.T) {
	got := Containers([]container.Summary{
		{ID: "c1", Names: []string{"/one"}},
		{ID: "c2", Names: []string{"/two"}},
		{ID: "c3", Names: []string{"/three"}},
	})
	require.Len(t, got, 3)
	assert.Equal(t, "one", got[0].Name)
	assert.Equal(t, "two", got[1].Name)
	assert.Equal(t, "three", got[2].Name)
}

func TestSummaryPortsSortedAndPublished(t *testing.T) {
	got := summaryPorts([]container.Port{
		{PrivatePort: 443, Type: "tcp"},
		{IP: "0.0.0.0", PrivatePort: 80, PublicPort: 8080, Type: "tcp"},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "443", got[0].ContainerPort)
	assert.Equal(t, "", got[0].HostPort)
	assert.Equal(t, "80", got[1].ContainerPort)
	assert.Equal(t, "8080", got[1].HostPort)
	assert.Equal(t, "0.0.0.0", got[1].HostIP)
}

func TestPortMapBindingsExposedOnly(t *testing.T) {
	got := portMapBindings(nat.PortMap{
		"80/tcp": []nat.PortBinding{{HostIP: "0.0.0.0", HostPort: "8080"}},
		"53/udp": nil,
	})
	require.Len(t, got, 2)
	assert.Equal(t, "53", got[0].ContainerPort)
	assert.Equal(t, "udp", got[0].Protocol)
	assert.Equal(t, "", got[0].HostPort)
	assert.Equal(t, "80", got[1].ContainerPort)
	assert.Equal(t, "8080", got[1].HostPort)
}

func TestContainerDetailLiftsStateAndConfig(t *testing.T) {
	finishedZero := "0001-01-01T00:00:00Z"
	info := container.InspectResponse{
		ContainerJSONBase: &container.ContainerJSONBase{
			ID:      "abcdef0123456789abcdef0123456789",
			Name:    "/w1",
			Created: "2024-03-01T10:00:00.123456789Z",
			State: &container.State{
				Status:     "running",
				StartedAt:  "2024-03-01T10:00:01Z",
				FinishedAt: finishedZero,
				ExitCode:   0,
			},
			HostConfig: &container.HostConfig{
				RestartPolicy: container.RestartPolicy{Name: "on-failure", MaximumRetryCount: 3},
			},
		},
		Config: &container.Config{
			Image:      "nginx:latest",
			Env:        []string{"MODE=prod"},
			Cmd:        []string{"nginx", "-g", "daemon off;"},
			WorkingDir: "/srv",
		},
	}
	got := ContainerDetail(info)
	assert.Equal(t, "abcdef0123456789abcdef0123456789", got.ID)
	assert.Equal(t, "w1", got.Name)
	assert.Equal(t, "running", got.Status)
	assert.Equal(t, "2024-03-01T10:00:00Z", got.Created)
	assert.Equal(t, "2024-03-01T10:00:01Z", got.Started)
	assert.Equal(t, "", got.Finished)
	assert.Equal(t, []string{"nginx", "-g", "daemon off;"}, got.Command)
	assert.Equal(t, "on-failure", got.RestartPolicy.Name)
	assert.NotNil(t, got.Networks)
	assert.NotNil(t, got.Mounts)
}
