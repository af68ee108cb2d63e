package domain

// PortBinding is one published port of a container. HostIP and HostPort
// are empty strings when the port is exposed but not published.
type PortBinding struct {
	ContainerPort string `json:"container_port"`
	Protocol      string `json:"protocol"`
	HostIP        string `json:"host_ip"`
	HostPort      string `json:"host_port"`
}

// Container is the canonical list-item shape for one container.
type Container struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Image       string            `json:"image"`
	Status      string            `json:"status"`
	StateDetail string            `json:"state_detail"`
	Created     string            `json:"created"`
	Ports       []PortBinding     `json:"ports"`
	Labels      map[string]string `json:"labels"`
}

// Mount is one mounted path inside a container.
type Mount struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Mode        string `json:"mode"`
}

// RestartPolicy mirrors the engine restart policy of a container.
type RestartPolicy struct {
	Name              string `json:"name"`
	MaximumRetryCount int    `json:"maximum_retry_count"`
}

// ContainerDetail is the canonical detail shape. It carries the full ID
// where the list item carries the short one.
type ContainerDetail struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Image         string            `json:"image"`
	Status        string            `json:"status"`
	StateDetail   string            `json:"state_detail"`
	Created       string            `json:"created"`
	Started       string            `json:"started"`
	Finished      string            `json:"finished"`
	ExitCode      int               `json:"exit_code"`
	Command       []string          `json:"command"`
	Environment   []string          `json:"environment"`
	WorkingDir    string            `json:"working_dir"`
	RestartPolicy RestartPolicy     `json:"restart_policy"`
	Ports         []PortBinding     `json:"ports"`
	Networks      []string          `json:"networks"`
	Mounts        []Mount           `json:"mounts"`
	Labels        map[string]string `json:"labels"`
}

// ContainerActionResult reports a lifecycle action (start, stop, restart,
// remove, create). Image is only set on create.
type ContainerActionResult struct {
	Message     string `json:"message"`
	ContainerID string `json:"container_id"`
	Name        string `json:"name"`
	Image       string `json:"image,omitempty"`
	Status      string `json:"status"`
}

// ContainerLogsResult carries a buffered log tail.
type ContainerLogsResult struct {
	ContainerID string `json:"container_id"`
	Name        string `json:"name"`
	Logs        string `json:"logs"`
	Tail        int    `json:"tail"`
}
