package canon

import (
	"testing"
	"time"

	"github.com/docker/docker/api/types/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkShortIDAndTimestamps(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	got := Network(network.Summary{
		ID:      "abcdef0123456789abcdef0123456789",
		Name:    "appnet",
		Driver:  "bridge",
		Scope:   "local",
		Created: created,
	})
	assert.Equal(t, "abcdef012345", got.ID)
	assert.Equal(t, "2024-03-01T10:00:00Z", got.Created)
	assert.NotNil(t, got.Labels)
	assert.NotNil(t, got.Containers)
	assert.NotNil(t, got.IPAM.Config)
}

func TestNetworkDetailKeepsFullID(t *testing.T) {
	got := NetworkDetail(network.Inspect{
		ID:         "abcdef0123456789abcdef0123456789",
		Name:       "appnet",
		EnableIPv6: true,
		ConfigFrom: network.ConfigReference{Network: "base"},
	})
	assert.Equal(t, "abcdef0123456789abcdef0123456789", got.ID)
	assert.True(t, got.EnableIPv6)
	assert.Equal(t, "base", got.ConfigFrom)
}

func TestNetworkEndpointsStripCIDRAndSort(t *testing.T) {
	got := networkEndpoints(map[string]network.EndpointResource{
		"bbbbbbbbbbbbbbbb": {Name: "web", IPv4Address: "172.28.0.3/16", MacAddress: "02:42:ac:1c:00:03"},
		"aaaaaaaaaaaaaaaa": {Name: "db", IPv4Address: "172.28.0.2/16", IPv6Address: "fd00::2/64"},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "db", got[0].Name)
	assert.Equal(t, "172.28.0.2", got[0].IPv4Address)
	assert.Equal(t, "fd00::2", got[0].IPv6Address)
	assert.Equal(t, "web", got[1].Name)
	assert.Equal(t, "aaaaaaaaaaaa", got[0].ID)
}

func TestNetworkIPAMLifting(t *testing.T) {
	got := networkIPAM(network.IPAM{
		Driver: "default",
		Config: []network.IPAMConfig{{
			Subnet:  "172.28.0.0/16",
			IPRange: "172.28.5.0/24",
			Gateway: "172.28.5.1",
		}},
	})
	require.Len(t, got.Config, 1)
	assert.Equal(t, "172.28.0.0/16", got.Config[0].Subnet)
	assert.NotNil(t, got.Config[0].AuxAddresses)
	assert.NotNil(t, got.Options)
}
