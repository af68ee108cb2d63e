package normalize

import (
	"net"

	"github.com/docker/docker/api/types/network"

	"github.com/wharfd/wharfd/internal/domain"
)

// NetworkCreate lowers a network-create request into engine options.
// Name is required. An absent ipam key means engine-default IPAM; a
// present one must carry at least one config entry with a valid subnet.
func NetworkCreate(req domain.NetworkCreateRequest) (string, network.CreateOptions, error) {
	if req.Name == "" {
		return "", network.CreateOptions{}, Errorf("name is required")
	}
	driver := req.Driver
	if driver == "" {
		driver = "bridge"
	}
	opts := network.CreateOptions{
		Driver:     driver,
		Internal:   req.Internal,
		Attachable: req.Attachable,
		Labels:     req.Labels,
		Options:    req.Options,
	}
	if req.IPAM != nil {
		ipam, err := ipamConfig(req.IPAM)
		if err != nil {
			return "", network.CreateOptions{}, err
		}
		opts.IPAM = ipam
	}
	return req.Name, opts, nil
}

// NetworkConnect validates the connect/disconnect body.
func NetworkConnect(req domain.NetworkConnectRequest) (string, error) {
	if req.Container == "" {
		return "", Errorf("container is required")
	}
	return req.Container, nil
}

func ipamConfig(raw map[string]any) (*network.IPAM, error) {
	ipam := &network.IPAM{}
	if driver, ok := raw["driver"].(string); ok {
		ipam.Driver = driver
	}
	entries, ok := raw["config"].([]any)
	if !ok || len(entries) == 0 {
		return nil, Errorf("ipam requires at least one config entry")
	}
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, Errorf("ipam config entries must be objects")
		}
		subnet, ok := m["subnet"].(string)
		if !ok || subnet == "" {
			return nil, Errorf("ipam config entry missing subnet")
		}
		if _, _, err := net.ParseCIDR(subnet); err != nil {
			return nil, Errorf("ipam subnet %q is not a valid CIDR", subnet)
		}
		cfg := network.IPAMConfig{Subnet: subnet}
		if ipRange, present := m["ip_range"]; present {
			s, ok := ipRange.(string)
			if !ok {
				return nil, Errorf("ipam ip_range must be a string")
			}
			if _, _, err := net.ParseCIDR(s); err != nil {
				return nil, Errorf("ipam ip_range %q is not a valid CIDR", s)
			}
			cfg.IPRange = s
		}
		if gateway, present := m["gateway"]; present {
			s, ok := gateway.(string)
			if !ok {
				return nil, Errorf("ipam gateway must be a string")
			}
			if net.ParseIP(s) == nil {
				return nil, Errorf("ipam gateway %q is not a valid IP", s)
			}
			cfg.Gateway = s
		}
		ipam.Config = append(ipam.Config, cfg)
	}
	return ipam, nil
}
