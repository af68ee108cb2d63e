package canon

import (
	"strings"
	"testing"

	"github.com/docker/docker/api/types/image"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageStripsDigestPrefix(t *testing.T) {
	got := Image(image.Summary{
		ID:       "sha256:abcdef0123456789abcdef0123456789",
		RepoTags: []string{"nginx:latest"},
		Size:     1048576,
	})
	assert.Equal(t, "abcdef012345", got.ID)
	assert.Equal(t, "nginx", got.Repository)
	assert.Equal(t, "latest", got.Tag)
	assert.Equal(t, "1.0 MB", got.Size)
	assert.Equal(t, int64(1048576), got.SizeBytes)
}

func TestImageUntagged(t *testing.T) {
	got := Image(image.Summary{ID: "sha256:abc"})
	assert.Equal(t, []string{"<none>:<none>"}, got.Tags)
	assert.Equal(t, "<none>", got.Repository)
	assert.Equal(t, "<none>", got.Tag)
}

func TestSplitRefKeepsRegistryPort(t *testing.T) {
	repo, tag := splitRef("localhost:5000/app:dev")
	assert.Equal(t, "localhost:5000/app", repo)
	assert.Equal(t, "dev", tag)

	repo, tag = splitRef("localhost:5000/app")
	assert.Equal(t, "localhost:5000/app", repo)
	assert.Equal(t, "", tag)
}

func TestImageHistoryDepthAndTruncation(t *testing.T) {
	long := strings.Repeat("x", 150)
	items := make([]image.HistoryResponseItem, 7)
	for i := range items {
		items[i] = image.HistoryResponseItem{CreatedBy: long, Created: 1700000000}
	}
	got := imageHistory(items)
	require.Len(t, got, 5)
	assert.Len(t, []rune(got[0].CreatedBy), 103)
	assert.True(t, strings.HasSuffix(got[0].CreatedBy, "..."))
	assert.NotNil(t, got[0].Tags)
}

func TestImagesPreserveOrder(t *testing.T) {
	got := Images([]image.Summary{
		{ID: "sha256:aaa", RepoTags: []string{"a:1"}},
		{ID: "sha256:bbb", RepoTags: []string{"b:1"}},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Repository)
	assert.Equal(t, "b", got[1].Repository)
}
