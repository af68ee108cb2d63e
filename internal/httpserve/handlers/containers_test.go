package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/docker/docker/api/types/container"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharfd/wharfd/internal/config"
	"github.com/wharfd/wharfd/internal/engine"
	"github.com/wharfd/wharfd/internal/facade"
	"github.com/wharfd/wharfd/internal/httpserve"
	"github.com/wharfd/wharfd/internal/server"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *string         `json:"error"`
	Count   *int            `json:"count"`
}

func newTestServer(t *testing.T, mock *engine.Mock) *echo.Echo {
	t.Helper()
	app := &server.App{
		Config:     &config.Config{},
		Engine:     mock,
		Containers: facade.NewContainers(mock, nil),
		Images:     facade.NewImages(mock, nil),
		Volumes:    facade.NewVolumes(mock, nil),
		Networks:   facade.NewNetworks(mock, nil),
		System:     facade.NewSystem(mock, nil, 0),
	}
	e := echo.New()
	httpserve.Register(e, app)
	return e
}

func do(e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func runningFixture(id, name string) container.InspectResponse {
	return container.InspectResponse{
		ContainerJSONBase: &container.ContainerJSONBase{
			ID:   id,
			Name: "/" + name,
			State: &container.State{
				Status: "running",
			},
		},
		Config: &container.Config{Image: "nginx:latest"},
	}
}

func TestCreateContainerEndpoint(t *testing.T) {
	mock := &engine.Mock{
		ContainerCreateFn: func(_ context.Context, params engine.ContainerCreateParams) (container.InspectResponse, error) {
			info := runningFixture("a1b2c3d4e5f6a7b8", "w1")
			info.State.Status = "created"
			return info, nil
		},
	}
	e := newTestServer(t, mock)

	rec, env := do(e, http.MethodPost, "/api/containers",
		`{"image":"nginx:latest","name":"w1","ports":{"80/tcp":8080}}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Nil(t, env.Error)

	var data struct {
		Name        string `json:"name"`
		Status      string `json:"status"`
		ContainerID string `json:"container_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "w1", data.Name)
	assert.Equal(t, "created", data.Status)
	assert.Equal(t, "a1b2c3d4e5f6", data.ContainerID)
}

func TestListContainersEndpoint(t *testing.T) {
	mock := &engine.Mock{
		ContainerListFn: func(_ context.Context, all bool) ([]container.Summary, error) {
			assert.False(t, all)
			return []container.Summary{{
				ID:     "a1b2c3d4e5f6a7b8",
				Names:  []string{"/web"},
				Image:  "nginx:latest",
				State:  "running",
				Status: "Up 2 hours",
			}}, nil
		},
	}
	e := newTestServer(t, mock)

	rec, env := do(e, http.MethodGet, "/api/containers", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)

	var data []struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	assert.Equal(t, "web", data[0].Name)
	assert.Equal(t, "running", data[0].Status)
}

func TestRemoveRunningContainerConflict(t *testing.T) {
	mock := &engine.Mock{
		ContainerInspectFn: func(_ context.Context, id string) (container.InspectResponse, error) {
			return runningFixture("a1b2c3d4e5f6a7b8", "web"), nil
		},
		ContainerRemoveFn: func(_ context.Context, id string, force bool) error {
			assert.False(t, force)
			return fmt.Errorf("remove web: container is running: %w", engine.ErrConflict)
		},
	}
	e := newTestServer(t, mock)

	rec, env := do(e, http.MethodDelete, "/api/containers/web/remove", "")

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.NotEmpty(t, *env.Error)
	assert.Equal(t, "null", strings.TrimSpace(string(env.Data)))
}
