package normalize

import (
	"testing"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharfd/wharfd/internal/domain"
)

func TestPortsBareIntAndExplicitListAreEquivalent(t *testing.T) {
	bare := map[string]any{"80/tcp": float64(8080)}
	explicit := map[string]any{"80/tcp": []any{map[string]any{"HostPort": "8080"}}}

	_, fromBare, err := Ports(bare)
	require.NoError(t, err)
	_, fromExplicit, err := Ports(explicit)
	require.NoError(t, err)

	assert.Equal(t, fromExplicit, fromBare)
	assert.Equal(t, []nat.PortBinding{{HostPort: "8080"}}, fromBare["80/tcp"])
}

func TestPortsIdempotence(t *testing.T) {
	// An already-canonical payload passes through unmodified.
	canonical := map[string]any{
		"80/tcp":  []any{map[string]any{"HostPort": "8080", "HostIp": "127.0.0.1"}},
		"53/udp":  []any{map[string]any{"HostPort": "5353"}},
		"443/tcp": []any{map[string]any{"HostPort": "8443"}},
	}
	_, first, err := Ports(canonical)
	require.NoError(t, err)
	_, second, err := Ports(canonical)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, []nat.PortBinding{{HostPort: "8080", HostIP: "127.0.0.1"}}, first["80/tcp"])
}

func TestPortsKeyWithoutProtocolDefaultsToTCP(t *testing.T) {
	exposed, bindings, err := Ports(map[string]any{"80": float64(8080)})
	require.NoError(t, err)
	_, ok := exposed["80/tcp"]
	assert.True(t, ok)
	assert.Contains(t, bindings, nat.Port("80/tcp"))
}

func TestPortsRejectsInvalidSpecs(t *testing.T) {
	tests := []struct {
		name  string
		ports map[string]any
	}{
		{"bad protocol", map[string]any{"80/icmp": float64(8080)}},
		{"port out of range", map[string]any{"99999/tcp": float64(8080)}},
		{"host port out of range", map[string]any{"80/tcp": float64(0)}},
		{"binding without HostPort", map[string]any{"80/tcp": []any{map[string]any{"HostIp": "0.0.0.0"}}}},
		{"value of wrong type", map[string]any{"80/tcp": true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Ports(tt.ports)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestEnvironmentMapAndListRoundTrip(t *testing.T) {
	fromMap, err := Environment(map[string]any{"B": "2", "A": "1"})
	require.NoError(t, err)
	fromList, err := Environment([]any{"A=1", "B=2"})
	require.NoError(t, err)
	assert.Equal(t, fromList, fromMap)
	assert.Equal(t, []string{"A=1", "B=2"}, fromMap)
}

func TestEnvironmentRejectsNonRoundTrippableEntries(t *testing.T) {
	for name, env := range map[string]any{
		"value with equals": map[string]any{"A": "1=2"},
		"key with equals":   map[string]any{"A=B": "1"},
		"empty key":         map[string]any{"": "1"},
		"non-string value":  map[string]any{"A": float64(1)},
		"wrong shape":       "A=1",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Environment(env)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestVolumeBindsDefaultsAndOrdering(t *testing.T) {
	binds, err := VolumeBinds(map[string]any{
		"data":      map[string]any{"bind": "/var/lib/data"},
		"/host/etc": map[string]any{"bind": "/etc/app", "mode": "ro"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/host/etc:/etc/app:ro", "data:/var/lib/data:rw"}, binds)
}

func TestVolumeBindsRejectsMissingBindAndBadMode(t *testing.T) {
	_, err := VolumeBinds(map[string]any{"data": map[string]any{"mode": "rw"}})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = VolumeBinds(map[string]any{"data": map[string]any{"bind": "/d", "mode": "rwx"}})
	assert.ErrorAs(t, err, &verr)
}

func TestCommandStringAndListForms(t *testing.T) {
	fromString, err := Command(`sh -c "echo hi"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"sh", "-c", "echo hi"}, fromString)

	fromList, err := Command([]any{"sh", "-c", "echo hi"})
	require.NoError(t, err)
	assert.Equal(t, fromString, fromList)
}

func TestContainerCreateRequiresImage(t *testing.T) {
	_, err := ContainerCreate(domain.ContainerCreateRequest{Name: "w1"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestContainerCreateLowersFullRequest(t *testing.T) {
	params, err := ContainerCreate(domain.ContainerCreateRequest{
		Image:       "nginx:latest",
		Name:        "w1",
		Ports:       map[string]any{"80/tcp": float64(8080)},
		Environment: map[string]any{"MODE": "prod"},
		Volumes:     map[string]any{"data": map[string]any{"bind": "/data"}},
		Labels:      map[string]string{"app": "web"},
		WorkingDir:  "/srv",
		RestartPolicy: &domain.RestartPolicy{
			Name: "on-failure", MaximumRetryCount: 3,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "w1", params.Name)
	assert.Equal(t, "nginx:latest", params.Config.Image)
	assert.Equal(t, []string{"MODE=prod"}, params.Config.Env)
	assert.Equal(t, "/srv", params.Config.WorkingDir)
	assert.Equal(t, []string{"data:/data:rw"}, params.Host.Binds)
	assert.Equal(t, "on-failure", string(params.Host.RestartPolicy.Name))
	assert.Equal(t, 3, params.Host.RestartPolicy.MaximumRetryCount)
	require.Contains(t, params.Host.PortBindings, nat.Port("80/tcp"))
	assert.Equal(t, "8080", params.Host.PortBindings["80/tcp"][0].HostPort)
}

func TestStopTimeoutDefault(t *testing.T) {
	n, err := StopTimeout(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultStopTimeout, n)

	five := 5
	n, err = StopTimeout(&domain.ContainerTimeoutRequest{Timeout: &five})
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	neg := -1
	_, err = StopTimeout(&domain.ContainerTimeoutRequest{Timeout: &neg})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}
