package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharfd/wharfd/internal/domain"
)

func TestPullRefTagDefaulting(t *testing.T) {
	tests := []struct {
		name string
		req  domain.ImagePullRequest
		want string
	}{
		{"bare name gets latest", domain.ImagePullRequest{Image: "nginx"}, "nginx:latest"},
		{"explicit tag kept", domain.ImagePullRequest{Image: "nginx", Tag: "1.25"}, "nginx:1.25"},
		{"ref with tag kept", domain.ImagePullRequest{Image: "nginx:alpine"}, "nginx:alpine"},
		{"digest kept", domain.ImagePullRequest{Image: "nginx@sha256:abcd"}, "nginx@sha256:abcd"},
		{"registry port is not a tag", domain.ImagePullRequest{Image: "localhost:5000/app"}, "localhost:5000/app:latest"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := PullRef(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ref)
		})
	}
}

func TestPullRefRequiresImage(t *testing.T) {
	_, err := PullRef(domain.ImagePullRequest{})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestBuildDefaultsDockerfile(t *testing.T) {
	params, err := Build(domain.ImageBuildRequest{Path: "/ctx", Tag: "app:dev"})
	require.NoError(t, err)
	assert.Equal(t, "/ctx", params.ContextDir)
	assert.Equal(t, "Dockerfile", params.Dockerfile)
	assert.Equal(t, "app:dev", params.Tag)

	_, err = Build(domain.ImageBuildRequest{Tag: "app:dev"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestSearchLimitBounds(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"", 25, false},
		{"1", 1, false},
		{"100", 100, false},
		{"0", 1, false},
		{"101", 100, false},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := SearchLimit(tt.raw)
		if tt.wantErr {
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr, "raw=%q", tt.raw)
			continue
		}
		require.NoError(t, err, "raw=%q", tt.raw)
		assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
	}
}

func TestLogTailBounds(t *testing.T) {
	got, err := LogTail("")
	require.NoError(t, err)
	assert.Equal(t, 100, got)

	got, err = LogTail("10000")
	require.NoError(t, err)
	assert.Equal(t, 10000, got)

	got, err = LogTail("10001")
	require.NoError(t, err)
	assert.Equal(t, 10000, got)

	got, err = LogTail("0")
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	_, err = LogTail("many")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}
