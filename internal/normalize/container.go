package normalize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/kballard/go-shellquote"

	"github.com/wharfd/wharfd/internal/domain"
	"github.com/wharfd/wharfd/internal/engine"
)

// DefaultStopTimeout is applied when a stop/restart body omits timeout.
const DefaultStopTimeout = 10

var restartPolicies = map[string]bool{
	"":               true,
	"no":             true,
	"always":         true,
	"unless-stopped": true,
	"on-failure":     true,
}

// ContainerCreate lowers a create request into engine parameters.
// Image is the only required key.
func ContainerCreate(req domain.ContainerCreateRequest) (engine.ContainerCreateParams, error) {
	if req.Image == "" {
		return engine.ContainerCreateParams{}, Errorf("image is required")
	}

	cmd, err := Command(req.Command)
	if err != nil {
		return engine.ContainerCreateParams{}, err
	}
	env, err := Environment(req.Environment)
	if err != nil {
		return engine.ContainerCreateParams{}, err
	}
	exposed, bindings, err := Ports(req.Ports)
	if err != nil {
		return engine.ContainerCreateParams{}, err
	}
	binds, err := VolumeBinds(req.Volumes)
	if err != nil {
		return engine.ContainerCreateParams{}, err
	}

	host := &container.HostConfig{
		PortBindings: bindings,
		Binds:        binds,
	}
	if req.RestartPolicy != nil {
		if !restartPolicies[req.RestartPolicy.Name] {
			return engine.ContainerCreateParams{}, Errorf("unknown restart policy %q", req.RestartPolicy.Name)
		}
		host.RestartPolicy = container.RestartPolicy{
			Name:              container.RestartPolicyMode(req.RestartPolicy.Name),
			MaximumRetryCount: req.RestartPolicy.MaximumRetryCount,
		}
	}

	return engine.ContainerCreateParams{
		Name: req.Name,
		Config: &container.Config{
			Image:        req.Image,
			Cmd:          cmd,
			Env:          env,
			ExposedPorts: exposed,
			Labels:       req.Labels,
			WorkingDir:   req.WorkingDir,
		},
		Host: host,
	}, nil
}

// StopTimeout resolves the optional stop/restart body.
func StopTimeout(req *domain.ContainerTimeoutRequest) (int, error) {
	if req == nil || req.Timeout == nil {
		return DefaultStopTimeout, nil
	}
	if *req.Timeout < 0 {
		return 0, Errorf("timeout must not be negative")
	}
	return *req.Timeout, nil
}

// Command accepts a shell-style string or a list of strings and lowers
// both to the list form.
func Command(v any) ([]string, error) {
	switch cmd := v.(type) {
	case nil:
		return nil, nil
	case string:
		parts, err := shellquote.Split(cmd)
		if err != nil {
			return nil, Errorf("command: %v", err)
		}
		return parts, nil
	case []any:
		out := make([]string, 0, len(cmd))
		for _, item := range cmd {
			s, ok := item.(string)
			if !ok {
				return nil, Errorf("command list entries must be strings")
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, Errorf("command must be a string or a list of strings")
	}
}

// Environment accepts a list of "KEY=VALUE" strings or a key/value
// mapping and lowers both to the list form. Mapping entries are emitted
// in ascending key order so normalization is deterministic; keys that
// are empty or contain '=' and values that contain '=' cannot round-trip
// and are rejected.
func Environment(v any) ([]string, error) {
	switch env := v.(type) {
	case nil:
		return nil, nil
	case []any:
		out := make([]string, 0, len(env))
		for _, item := range env {
			s, ok := item.(string)
			if !ok {
				return nil, Errorf("environment list entries must be strings")
			}
			out = append(out, s)
		}
		return out, nil
	case map[string]any:
		keys := make([]string, 0, len(env))
		for k := range env {
			if k == "" || strings.Contains(k, "=") {
				return nil, Errorf("environment key %q cannot round-trip", k)
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]string, 0, len(keys))
		for _, k := range keys {
			val, ok := env[k].(string)
			if !ok {
				return nil, Errorf("environment value for %q must be a string", k)
			}
			if strings.Contains(val, "=") {
				return nil, Errorf("environment value for %q cannot round-trip", k)
			}
			out = append(out, k+"="+val)
		}
		return out, nil
	default:
		return nil, Errorf("environment must be a list of \"KEY=VALUE\" strings or a mapping")
	}
}

// Ports accepts either {"80/tcp": 8080} or the explicit binding-list
// form {"80/tcp": [{"HostPort": "8080"}]} and always emits the explicit
// form. A port key without a protocol defaults to tcp.
func Ports(v map[string]any) (nat.PortSet, nat.PortMap, error) {
	if len(v) == 0 {
		return nil, nil, nil
	}
	exposed := make(nat.PortSet, len(v))
	bindings := make(nat.PortMap, len(v))
	for key, raw := range v {
		port, err := parsePortKey(key)
		if err != nil {
			return nil, nil, err
		}
		list, err := parsePortValue(key, raw)
		if err != nil {
			return nil, nil, err
		}
		exposed[port] = struct{}{}
		bindings[port] = list
	}
	return exposed, bindings, nil
}

func parsePortKey(key string) (nat.Port, error) {
	proto := "tcp"
	portStr := key
	if before, after, found := strings.Cut(key, "/"); found {
		portStr, proto = before, strings.ToLower(after)
	}
	switch proto {
	case "tcp", "udp", "sctp":
	default:
		return "", Errorf("port %q: unknown protocol %q", key, proto)
	}
	n, err := strconv.Atoi(portStr)
	if err != nil || n < 1 || n > 65535 {
		return "", Errorf("port %q: invalid port number", key)
	}
	port, err := nat.NewPort(proto, portStr)
	if err != nil {
		return "", Errorf("port %q: %v", key, err)
	}
	return port, nil
}

func parsePortValue(key string, raw any) ([]nat.PortBinding, error) {
	switch val := raw.(type) {
	case float64:
		if val != float64(int(val)) || int(val) < 1 || int(val) > 65535 {
			return nil, Errorf("port %q: invalid host port %v", key, val)
		}
		return []nat.PortBinding{{HostPort: strconv.Itoa(int(val))}}, nil
	case string:
		n, err := strconv.Atoi(val)
		if err != nil || n < 1 || n > 65535 {
			return nil, Errorf("port %q: invalid host port %q", key, val)
		}
		return []nat.PortBinding{{HostPort: val}}, nil
	case []any:
		out := make([]nat.PortBinding, 0, len(val))
		for _, item := range val {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, Errorf("port %q: binding entries must be objects", key)
			}
			binding := nat.PortBinding{}
			switch hp := m["HostPort"].(type) {
			case string:
				binding.HostPort = hp
			case float64:
				binding.HostPort = strconv.Itoa(int(hp))
			case nil:
				return nil, Errorf("port %q: binding entry missing HostPort", key)
			default:
				return nil, Errorf("port %q: HostPort must be a string or number", key)
			}
			if ip, ok := m["HostIp"].(string); ok {
				binding.HostIP = ip
			}
			out = append(out, binding)
		}
		return out, nil
	default:
		return nil, Errorf("port %q: value must be a host port or a binding list", key)
	}
}

// VolumeBinds accepts {"<host-path-or-volume>": {"bind": "/path", "mode": "rw"}}
// and lowers it to engine bind strings. Missing mode defaults to rw;
// missing bind is a validation error. Output order is deterministic.
func VolumeBinds(v map[string]any) ([]string, error) {
	if len(v) == 0 {
		return nil, nil
	}
	sources := make([]string, 0, len(v))
	for src := range v {
		sources = append(sources, src)
	}
	sort.Strings(sources)

	binds := make([]string, 0, len(sources))
	for _, src := range sources {
		spec, ok := v[src].(map[string]any)
		if !ok {
			return nil, Errorf("volume %q: spec must be an object", src)
		}
		target, ok := spec["bind"].(string)
		if !ok || target == "" {
			return nil, Errorf("volume %q: bind is required", src)
		}
		mode := "rw"
		if raw, present := spec["mode"]; present {
			m, ok := raw.(string)
			if !ok || (m != "rw" && m != "ro") {
				return nil, Errorf("volume %q: mode must be \"rw\" or \"ro\"", src)
			}
			mode = m
		}
		binds = append(binds, fmt.Sprintf("%s:%s:%s", src, target, mode))
	}
	return binds, nil
}
