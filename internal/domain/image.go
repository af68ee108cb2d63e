package domain

// Image is the canonical list-item shape for one image.
type Image struct {
	ID         string            `json:"id"`
	Tags       []string          `json:"tags"`
	Repository string            `json:"repository"`
	Tag        string            `json:"tag"`
	Created    string            `json:"created"`
	Size       string            `json:"size"`
	SizeBytes  int64             `json:"size_bytes"`
	Containers int64             `json:"containers"`
	Labels     map[string]string `json:"labels"`
}

// ImageConfig is the build-time configuration baked into an image.
type ImageConfig struct {
	Cmd          []string          `json:"cmd"`
	Entrypoint   []string          `json:"entrypoint"`
	Env          []string          `json:"env"`
	ExposedPorts []string          `json:"exposed_ports"`
	Labels       map[string]string `json:"labels"`
	User         string            `json:"user"`
	WorkingDir   string            `json:"working_dir"`
	Volumes      []string          `json:"volumes"`
}

// ImageLayer is one entry of an image's history.
type ImageLayer struct {
	Created   string   `json:"created"`
	CreatedBy string   `json:"created_by"`
	Size      string   `json:"size"`
	Tags      []string `json:"tags"`
}

// ImageDetail is the canonical detail shape for one image.
type ImageDetail struct {
	ID           string       `json:"id"`
	Tags         []string     `json:"tags"`
	Repository   string       `json:"repository"`
	Tag          string       `json:"tag"`
	Created      string       `json:"created"`
	Size         string       `json:"size"`
	SizeBytes    int64        `json:"size_bytes"`
	Architecture string       `json:"architecture"`
	OS           string       `json:"os"`
	Author       string       `json:"author"`
	Config       ImageConfig  `json:"config"`
	History      []ImageLayer `json:"history"`
}

// ImagePullResult reports a completed pull.
type ImagePullResult struct {
	Message string   `json:"message"`
	ImageID string   `json:"image_id"`
	Tags    []string `json:"tags"`
	Size    string   `json:"size"`
	Status  string   `json:"status"`
}

// ImageBuildResult reports a completed build.
type ImageBuildResult struct {
	Message string   `json:"message"`
	ImageID string   `json:"image_id"`
	Tags    []string `json:"tags"`
	Status  string   `json:"status"`
}

// ImageRemoveResult reports a removed image.
type ImageRemoveResult struct {
	Message string `json:"message"`
	ImageID string `json:"image_id"`
	Status  string `json:"status"`
}

// ImagePruneResult reports a prune pass.
type ImagePruneResult struct {
	Message             string   `json:"message"`
	ImagesDeleted       []string `json:"images_deleted"`
	SpaceReclaimed      string   `json:"space_reclaimed"`
	SpaceReclaimedBytes int64    `json:"space_reclaimed_bytes"`
	Status              string   `json:"status"`
}

// ImageSearchResult is one registry search hit.
type ImageSearchResult struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StarCount   int    `json:"star_count"`
	IsOfficial  bool   `json:"is_official"`
	IsAutomated bool   `json:"is_automated"`
}
