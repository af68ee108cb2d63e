package domain

// Request DTOs deliberately keep their flexible fields loosely typed
// (any / map[string]any): the request normalizer resolves the accepted
// shapes deterministically and rejects the rest with a validation error.
// Unrecognized JSON keys are ignored by decoding, never rejected.

// ContainerCreateRequest is the body of a container-create call.
// Image is the only required key.
type ContainerCreateRequest struct {
	Image         string            `json:"image"`
	Name          string            `json:"name"`
	Command       any               `json:"command"`     // string or []string
	Environment   any               `json:"environment"` // []"K=V" or map[K]V
	Ports         map[string]any    `json:"ports"`       // "80/tcp" -> int | string | [{"HostPort": ...}]
	Volumes       map[string]any    `json:"volumes"`     // host path or volume name -> {"bind", "mode"}
	Labels        map[string]string `json:"labels"`
	WorkingDir    string            `json:"working_dir"`
	RestartPolicy *RestartPolicy    `json:"restart_policy"`
}

// ContainerTimeoutRequest is the optional body of stop and restart calls.
type ContainerTimeoutRequest struct {
	Timeout *int `json:"timeout"`
}

// ImagePullRequest is the body of an image-pull call. Tag is ignored when
// Image already carries a tag or digest.
type ImagePullRequest struct {
	Image string `json:"image"`
	Tag   string `json:"tag"`
}

// ImageBuildRequest is the body of an image-build call.
type ImageBuildRequest struct {
	Path       string            `json:"path"`
	Dockerfile string            `json:"dockerfile"`
	Tag        string            `json:"tag"`
	Labels     map[string]string `json:"labels"`
	BuildArgs  map[string]string `json:"buildargs"`
	NoCache    bool              `json:"nocache"`
}

// VolumeCreateRequest is the body of a volume-create call. An empty body
// is valid: the engine assigns a name.
type VolumeCreateRequest struct {
	Name    string            `json:"name"`
	Driver  string            `json:"driver"`
	Labels  map[string]string `json:"labels"`
	Options map[string]string `json:"options"`
}

// NetworkCreateRequest is the body of a network-create call.
type NetworkCreateRequest struct {
	Name       string            `json:"name"`
	Driver     string            `json:"driver"`
	Internal   bool              `json:"internal"`
	Attachable bool              `json:"attachable"`
	Labels     map[string]string `json:"labels"`
	Options    map[string]string `json:"options"`
	IPAM       map[string]any    `json:"ipam"` // {"driver"?, "config": [{"subnet", "ip_range"?, "gateway"?}]}
}

// NetworkConnectRequest is the body of connect and disconnect calls.
// Force only applies to disconnect.
type NetworkConnectRequest struct {
	Container string `json:"container"`
	Force     bool   `json:"force"`
}
