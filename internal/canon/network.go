package canon

import (
	"sort"
	"strings"

	"github.com/docker/docker/api/types/network"

	"github.com/wharfd/wharfd/internal/domain"
)

// Networks lifts a network listing, preserving engine order.
func Networks(items []network.Summary) []domain.Network {
	out := make([]domain.Network, 0, len(items))
	for _, item := range items {
		out = append(out, Network(item))
	}
	return out
}

// Network lifts one network into the list-item shape (short ID).
func Network(item network.Summary) domain.Network {
	return domain.Network{
		ID:         ShortID(item.ID),
		Name:       item.Name,
		Driver:     item.Driver,
		Scope:      item.Scope,
		Created:    stampTime(item.Created),
		Internal:   item.Internal,
		Attachable: item.Attachable,
		Ingress:    item.Ingress,
		IPAM:       networkIPAM(item.IPAM),
		Labels:     orEmptyMap(item.Labels),
		Containers: networkEndpoints(item.Containers),
		Options:    orEmptyMap(item.Options),
	}
}

// NetworkDetail lifts an inspect response (full ID).
func NetworkDetail(item network.Inspect) domain.NetworkDetail {
	out := domain.NetworkDetail{
		Network:    Network(item),
		EnableIPv6: item.EnableIPv6,
		ConfigOnly: item.ConfigOnly,
		ConfigFrom: item.ConfigFrom.Network,
	}
	out.ID = item.ID
	return out
}

func networkIPAM(ipam network.IPAM) domain.IPAM {
	out := domain.IPAM{
		Driver:  ipam.Driver,
		Options: orEmptyMap(ipam.Options),
		Config:  make([]domain.IPAMConfig, 0, len(ipam.Config)),
	}
	for _, cfg := range ipam.Config {
		out.Config = append(out.Config, domain.IPAMConfig{
			Subnet:       cfg.Subnet,
			IPRange:      cfg.IPRange,
			Gateway:      cfg.Gateway,
			AuxAddresses: orEmptyMap(cfg.AuxAddress),
		})
	}
	return out
}

// networkEndpoints lifts the attached-container map into a list sorted
// by container name. Addresses lose their CIDR suffix.
func networkEndpoints(containers map[string]network.EndpointResource) []domain.NetworkEndpoint {
	out := make([]domain.NetworkEndpoint, 0, len(containers))
	for id, ep := range containers {
		out = append(out, domain.NetworkEndpoint{
			ID:          ShortID(id),
			Name:        ep.Name,
			IPv4Address: stripCIDR(ep.IPv4Address),
			IPv6Address: stripCIDR(ep.IPv6Address),
			MacAddress:  ep.MacAddress,
			EndpointID:  ep.EndpointID,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func stripCIDR(addr string) string {
	if i := strings.IndexByte(addr, '/'); i >= 0 {
		return addr[:i]
	}
	return addr
}
