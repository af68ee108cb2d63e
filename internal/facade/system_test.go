package facade

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharfd/wharfd/internal/domain"
	"github.com/wharfd/wharfd/internal/engine"
)

func TestSystemStatsAllOrNothing(t *testing.T) {
	mock := &engine.Mock{
		ServerVersionFn: func(ctx context.Context) (types.Version, error) {
			return types.Version{Version: "28.5.2", APIVersion: "1.51"}, nil
		},
		InfoFn: func(ctx context.Context) (system.Info, error) {
			return system.Info{}, fmt.Errorf("info: %w", engine.ErrUnavailable)
		},
	}
	f := NewSystem(mock, nil, time.Second)

	env, status := f.Stats(context.Background())

	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.False(t, env.Success)
	assert.Nil(t, env.Data)
	require.NotNil(t, env.Error)
	assert.Equal(t, 0, mock.Calls("DiskUsage"), "later calls must not run after a failure")
}

func TestSystemStatusNeverFails(t *testing.T) {
	mock := &engine.Mock{
		PingFn: func(ctx context.Context) (types.Ping, error) {
			return types.Ping{}, fmt.Errorf("ping: %w", engine.ErrUnavailable)
		},
	}
	f := NewSystem(mock, nil, time.Second)

	env, status := f.Status(context.Background())

	assert.Equal(t, http.StatusOK, status)
	require.True(t, env.Success)
	result, ok := env.Data.(domain.DaemonStatus)
	require.True(t, ok)
	assert.Equal(t, "unreachable", result.Status)
	assert.False(t, result.Ping)
	require.NotNil(t, result.Error)
	assert.NotEmpty(t, *result.Error)
	assert.Empty(t, result.ServerVersion)
}

func TestSystemStatusRunning(t *testing.T) {
	mock := &engine.Mock{
		PingFn: func(ctx context.Context) (types.Ping, error) {
			return types.Ping{APIVersion: "1.51"}, nil
		},
		ServerVersionFn: func(ctx context.Context) (types.Version, error) {
			return types.Version{Version: "28.5.2", APIVersion: "1.51"}, nil
		},
		InfoFn: func(ctx context.Context) (system.Info, error) {
			return system.Info{Containers: 3, ContainersRunning: 1, Images: 5, Driver: "overlay2"}, nil
		},
	}
	f := NewSystem(mock, nil, time.Second)

	env, status := f.Status(context.Background())

	assert.Equal(t, http.StatusOK, status)
	result, ok := env.Data.(domain.DaemonStatus)
	require.True(t, ok)
	assert.Equal(t, "running", result.Status)
	assert.True(t, result.Ping)
	assert.True(t, result.APICompatible)
	assert.Equal(t, 1, result.ContainersRunning)
	assert.Equal(t, 3, result.ContainersTotal)
	assert.Nil(t, result.Error)
}

func TestAPICompatible(t *testing.T) {
	assert.True(t, apiCompatible("1.51"))
	assert.True(t, apiCompatible("1.24"))
	assert.False(t, apiCompatible("1.12"))
	assert.False(t, apiCompatible(""))
	assert.False(t, apiCompatible("not-a-version"))
}

func TestSystemVersionMapsUnavailable(t *testing.T) {
	mock := &engine.Mock{
		ServerVersionFn: func(ctx context.Context) (types.Version, error) {
			return types.Version{}, fmt.Errorf("version: %w", engine.ErrUnavailable)
		},
	}
	f := NewSystem(mock, nil, time.Second)

	env, status := f.Version(context.Background())

	assert.Equal(t, http.StatusServiceUnavailable, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "container engine is unavailable", *env.Error)
}
