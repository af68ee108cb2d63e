package canon

import (
	"testing"

	"github.com/docker/docker/api/types/volume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolumeWithoutUsageData(t *testing.T) {
	got := Volume(volume.Volume{
		Name:       "data",
		Driver:     "local",
		Mountpoint: "/var/lib/docker/volumes/data/_data",
		CreatedAt:  "2024-03-01T10:00:00Z",
		Scope:      "local",
	})
	assert.Equal(t, "unknown", got.Usage.Size)
	assert.Equal(t, int64(0), got.Usage.SizeBytes)
	assert.Equal(t, int64(0), got.Usage.RefCount)
	assert.Equal(t, "2024-03-01T10:00:00Z", got.Created)
	assert.NotNil(t, got.Labels)
	assert.NotNil(t, got.Options)
}

func TestVolumeWithUsageData(t *testing.T) {
	got := Volume(volume.Volume{
		Name:      "data",
		UsageData: &volume.UsageData{Size: 2048, RefCount: 2},
	})
	assert.Equal(t, "2.0 KB", got.Usage.Size)
	assert.Equal(t, int64(2048), got.Usage.SizeBytes)
	assert.Equal(t, int64(2), got.Usage.RefCount)
}

func TestVolumeUnknownSizeIsNotNegative(t *testing.T) {
	got := Volume(volume.Volume{
		Name:      "data",
		UsageData: &volume.UsageData{Size: -1, RefCount: 1},
	})
	assert.Equal(t, "unknown", got.Usage.Size)
	assert.Equal(t, int64(0), got.Usage.SizeBytes)
}

func TestVolumeDetailContainersUsing(t *testing.T) {
	got := VolumeDetail(volume.Volume{Name: "data"}, nil)
	assert.NotNil(t, got.ContainersUsing)
	assert.Empty(t, got.ContainersUsing)

	got = VolumeDetail(volume.Volume{Name: "data"}, []string{"w1", "w2"})
	require.Len(t, got.ContainersUsing, 2)
}

func TestVolumeBadTimestamp(t *testing.T) {
	got := Volume(volume.Volume{Name: "data", CreatedAt: "not-a-time"})
	assert.Equal(t, "", got.Created)
}
