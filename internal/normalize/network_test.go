package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharfd/wharfd/internal/domain"
)

func TestNetworkCreateDefaults(t *testing.T) {
	name, opts, err := NetworkCreate(domain.NetworkCreateRequest{Name: "appnet"})
	require.NoError(t, err)
	assert.Equal(t, "appnet", name)
	assert.Equal(t, "bridge", opts.Driver)
	assert.Nil(t, opts.IPAM)
}

func TestNetworkCreateRequiresName(t *testing.T) {
	_, _, err := NetworkCreate(domain.NetworkCreateRequest{Driver: "overlay"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestNetworkCreateIPAM(t *testing.T) {
	req := domain.NetworkCreateRequest{
		Name: "appnet",
		IPAM: map[string]any{
			"driver": "default",
			"config": []any{map[string]any{
				"subnet":   "172.28.0.0/16",
				"ip_range": "172.28.5.0/24",
				"gateway":  "172.28.5.1",
			}},
		},
	}
	_, opts, err := NetworkCreate(req)
	require.NoError(t, err)
	require.NotNil(t, opts.IPAM)
	require.Len(t, opts.IPAM.Config, 1)
	assert.Equal(t, "172.28.0.0/16", opts.IPAM.Config[0].Subnet)
	assert.Equal(t, "172.28.5.0/24", opts.IPAM.Config[0].IPRange)
	assert.Equal(t, "172.28.5.1", opts.IPAM.Config[0].Gateway)
}

func TestNetworkCreateIPAMRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name string
		ipam map[string]any
	}{
		{"empty config", map[string]any{"config": []any{}}},
		{"missing subnet", map[string]any{"config": []any{map[string]any{"gateway": "10.0.0.1"}}}},
		{"bad subnet", map[string]any{"config": []any{map[string]any{"subnet": "not-a-cidr"}}}},
		{"bad gateway", map[string]any{"config": []any{map[string]any{"subnet": "10.0.0.0/24", "gateway": "nope"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NetworkCreate(domain.NetworkCreateRequest{Name: "n", IPAM: tt.ipam})
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestNetworkConnectRequiresContainer(t *testing.T) {
	_, err := NetworkConnect(domain.NetworkConnectRequest{})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	id, err := NetworkConnect(domain.NetworkConnectRequest{Container: "w1"})
	require.NoError(t, err)
	assert.Equal(t, "w1", id)
}

func TestVolumeCreateDefaultsDriver(t *testing.T) {
	opts := VolumeCreate(domain.VolumeCreateRequest{Name: "data"})
	assert.Equal(t, "data", opts.Name)
	assert.Equal(t, "local", opts.Driver)

	opts = VolumeCreate(domain.VolumeCreateRequest{})
	assert.Empty(t, opts.Name)
}
