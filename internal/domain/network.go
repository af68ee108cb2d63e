package domain

// IPAMConfig is one address pool of a network.
type IPAMConfig struct {
	Subnet       string            `json:"subnet"`
	IPRange      string            `json:"ip_range"`
	Gateway      string            `json:"gateway"`
	AuxAddresses map[string]string `json:"aux_addresses"`
}

// IPAM is the address-management block of a network.
type IPAM struct {
	Driver  string            `json:"driver"`
	Options map[string]string `json:"options"`
	Config  []IPAMConfig      `json:"config"`
}

// NetworkEndpoint is one container attached to a network. Addresses are
// reported without their CIDR suffix.
type NetworkEndpoint struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IPv4Address string `json:"ipv4_address"`
	IPv6Address string `json:"ipv6_address"`
	MacAddress  string `json:"mac_address"`
	EndpointID  string `json:"endpoint_id"`
}

// Network is the canonical list-item shape for one network.
type Network struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Driver     string            `json:"driver"`
	Scope      string            `json:"scope"`
	Created    string            `json:"created"`
	Internal   bool              `json:"internal"`
	Attachable bool              `json:"attachable"`
	Ingress    bool              `json:"ingress"`
	IPAM       IPAM              `json:"ipam"`
	Labels     map[string]string `json:"labels"`
	Containers []NetworkEndpoint `json:"containers"`
	Options    map[string]string `json:"options"`
}

// NetworkDetail is the canonical detail shape, full ID included.
type NetworkDetail struct {
	Network
	EnableIPv6 bool   `json:"enable_ipv6"`
	ConfigOnly bool   `json:"config_only"`
	ConfigFrom string `json:"config_from"`
}

// NetworkRemoveResult reports a removed network.
type NetworkRemoveResult struct {
	Message   string `json:"message"`
	NetworkID string `json:"network_id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
}

// NetworkConnectResult reports a connect or disconnect action.
type NetworkConnectResult struct {
	Message   string `json:"message"`
	NetworkID string `json:"network_id"`
	Container string `json:"container"`
	Status    string `json:"status"`
}

// NetworkPruneResult reports a prune pass.
type NetworkPruneResult struct {
	Message         string   `json:"message"`
	NetworksDeleted []string `json:"networks_deleted"`
	Status          string   `json:"status"`
}

// NetworkStats aggregates the network inventory.
type NetworkStats struct {
	TotalNetworks            int            `json:"total_networks"`
	Drivers                  map[string]int `json:"drivers"`
	Scopes                   map[string]int `json:"scopes"`
	TotalConnectedContainers int            `json:"total_connected_containers"`
	SystemNetworks           int            `json:"system_networks"`
}
