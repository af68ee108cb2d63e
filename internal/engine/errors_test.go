package engine

import (
	"errors"
	"fmt"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapClassification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{
			name:     "not found",
			err:      fmt.Errorf("%w: no such container: abc", cerrdefs.ErrNotFound),
			sentinel: ErrNotFound,
		},
		{
			name:     "conflict",
			err:      fmt.Errorf("%w: name already in use", cerrdefs.ErrConflict),
			sentinel: ErrConflict,
		},
		{
			name:     "unavailable",
			err:      fmt.Errorf("%w: daemon starting", cerrdefs.ErrUnavailable),
			sentinel: ErrUnavailable,
		},
		{
			name:     "anything else is an engine error",
			err:      errors.New("invalid port range"),
			sentinel: ErrEngine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := wrap("container start", tt.err)
			require.Error(t, wrapped)
			assert.ErrorIs(t, wrapped, tt.sentinel)

			// The sentinel match must be exclusive.
			for _, other := range []error{ErrNotFound, ErrConflict, ErrUnavailable, ErrEngine} {
				if other != tt.sentinel {
					assert.NotErrorIs(t, wrapped, other)
				}
			}
		})
	}
}

func TestWrapNilPassesThrough(t *testing.T) {
	assert.NoError(t, wrap("ping", nil))
}

func TestWrapKeepsOperationContext(t *testing.T) {
	err := wrap("image remove", fmt.Errorf("%w: image is in use", cerrdefs.ErrConflict))
	assert.Contains(t, err.Error(), "image remove")
	assert.Contains(t, err.Error(), "image is in use")
}

func TestSanitizeStripsDaemonAddresses(t *testing.T) {
	msg := sanitize("Error response from daemon: cannot reach unix:///var/run/docker.sock here")
	assert.NotContains(t, msg, "docker.sock")
	assert.NotContains(t, msg, "Error response from daemon")
	assert.Contains(t, msg, "<engine>")
}

func TestUnavailableMessageIsFixed(t *testing.T) {
	err := wrap("ping", fmt.Errorf("%w: dial failed", cerrdefs.ErrUnavailable))
	assert.Equal(t, "ping: engine unreachable", err.Error())
}
