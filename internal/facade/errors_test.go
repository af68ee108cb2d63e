package facade

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wharfd/wharfd/internal/domain"
	"github.com/wharfd/wharfd/internal/engine"
	"github.com/wharfd/wharfd/internal/normalize"
)

func TestMapErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   domain.ErrorKind
		wantStatus int
	}{
		{
			name:       "validation",
			err:        normalize.Errorf("image is required"),
			wantKind:   domain.KindValidation,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrapped validation",
			err:        fmt.Errorf("container create: %w", normalize.Errorf("image is required")),
			wantKind:   domain.KindValidation,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found",
			err:        fmt.Errorf("inspect: %w", engine.ErrNotFound),
			wantKind:   domain.KindNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "conflict",
			err:        fmt.Errorf("remove: %w", engine.ErrConflict),
			wantKind:   domain.KindConflict,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unavailable",
			err:        fmt.Errorf("ping: %w", engine.ErrUnavailable),
			wantKind:   domain.KindEngineUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "engine error",
			err:        fmt.Errorf("create: %w", engine.ErrEngine),
			wantKind:   domain.KindEngineError,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantKind:   domain.KindInternal,
			wantStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := MapError(tt.err)
			assert.Equal(t, tt.wantKind, rec.Kind)
			assert.Equal(t, tt.wantStatus, rec.HTTPStatus)
			assert.NotEmpty(t, rec.Message)
		})
	}
}

func TestMapErrorUnavailableMessageIsFixed(t *testing.T) {
	rec := MapError(fmt.Errorf("ping: unix:///var/run/docker.sock down: %w", engine.ErrUnavailable))
	assert.Equal(t, unavailableMessage, rec.Message)
}

func TestMapErrorInternalHidesDetail(t *testing.T) {
	rec := MapError(errors.New("pq: connection reset at 10.0.0.5"))
	assert.Equal(t, internalMessage, rec.Message)
}

func TestMapErrorEngineMessageVerbatim(t *testing.T) {
	err := fmt.Errorf("create: invalid reference format: %w", engine.ErrEngine)
	rec := MapError(err)
	assert.Equal(t, err.Error(), rec.Message)
}
