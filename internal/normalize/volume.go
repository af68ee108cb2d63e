package normalize

import (
	"github.com/docker/docker/api/types/volume"

	"github.com/wharfd/wharfd/internal/domain"
)

// VolumeCreate lowers a volume-create request into engine options. No
// key is required: an empty body yields an engine-assigned name.
func VolumeCreate(req domain.VolumeCreateRequest) volume.CreateOptions {
	driver := req.Driver
	if driver == "" {
		driver = "local"
	}
	return volume.CreateOptions{
		Name:       req.Name,
		Driver:     driver,
		Labels:     req.Labels,
		DriverOpts: req.Options,
	}
}
