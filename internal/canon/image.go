package canon

import (
	"sort"
	"strings"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/registry"

	"github.com/wharfd/wharfd/internal/domain"
	"github.com/wharfd/wharfd/pkg/humanize"
)

const (
	historyDepth      = 5
	createdByMaxRunes = 100
)

// untaggedRef stands in for images with no repo tags.
const untaggedRef = "<none>:<none>"

// Images lifts an image listing, preserving engine order.
func Images(items []image.Summary) []domain.Image {
	out := make([]domain.Image, 0, len(items))
	for _, item := range items {
		out = append(out, Image(item))
	}
	return out
}

// Image lifts one image summary into the list-item shape.
func Image(item image.Summary) domain.Image {
	tags := imageTags(item.RepoTags)
	repo, tag := splitRef(tags[0])
	return domain.Image{
		ID:         ShortID(item.ID),
		Tags:       tags,
		Repository: repo,
		Tag:        tag,
		Created:    unixTime(item.Created),
		Size:       humanize.Bytes(item.Size),
		SizeBytes:  item.Size,
		Containers: item.Containers,
		Labels:     orEmptyMap(item.Labels),
	}
}

// ImageDetail lifts an inspect response plus its layer history.
func ImageDetail(info image.InspectResponse, history []image.HistoryResponseItem) domain.ImageDetail {
	tags := imageTags(info.RepoTags)
	repo, tag := splitRef(tags[0])
	detail := domain.ImageDetail{
		ID:           info.ID,
		Tags:         tags,
		Repository:   repo,
		Tag:          tag,
		Created:      parseTime(info.Created),
		Size:         humanize.Bytes(info.Size),
		SizeBytes:    info.Size,
		Architecture: info.Architecture,
		OS:           info.Os,
		Author:       info.Author,
		Config: domain.ImageConfig{
			Cmd:          []string{},
			Entrypoint:   []string{},
			Env:          []string{},
			ExposedPorts: []string{},
			Labels:       map[string]string{},
			Volumes:      []string{},
		},
		History: imageHistory(history),
	}
	if info.Config != nil {
		detail.Config = domain.ImageConfig{
			Cmd:          orEmptyList(info.Config.Cmd),
			Entrypoint:   orEmptyList(info.Config.Entrypoint),
			Env:          orEmptyList(info.Config.Env),
			ExposedPorts: sortedKeys(info.Config.ExposedPorts),
			Labels:       orEmptyMap(info.Config.Labels),
			User:         info.Config.User,
			WorkingDir:   info.Config.WorkingDir,
			Volumes:      sortedKeys(info.Config.Volumes),
		}
	}
	return detail
}

// imageHistory keeps the newest layers, truncating long build commands.
// The engine already reports history newest first.
func imageHistory(items []image.HistoryResponseItem) []domain.ImageLayer {
	if len(items) > historyDepth {
		items = items[:historyDepth]
	}
	out := make([]domain.ImageLayer, 0, len(items))
	for _, item := range items {
		out = append(out, domain.ImageLayer{
			Created:   unixTime(item.Created),
			CreatedBy: truncateRunes(item.CreatedBy, createdByMaxRunes),
			Size:      humanize.Bytes(item.Size),
			Tags:      orEmptyList(item.Tags),
		})
	}
	return out
}

// SearchResults lifts registry search hits, preserving registry order.
func SearchResults(items []registry.SearchResult) []domain.ImageSearchResult {
	out := make([]domain.ImageSearchResult, 0, len(items))
	for _, item := range items {
		out = append(out, domain.ImageSearchResult{
			Name:        item.Name,
			Description: item.Description,
			StarCount:   item.StarCount,
			IsOfficial:  item.IsOfficial,
			IsAutomated: item.IsAutomated,
		})
	}
	return out
}

func imageTags(repoTags []string) []string {
	if len(repoTags) == 0 {
		return []string{untaggedRef}
	}
	return repoTags
}

// splitRef splits a reference into repository and tag. The last colon
// after the last slash separates them, so registry ports stay intact.
func splitRef(ref string) (string, string) {
	slash := strings.LastIndex(ref, "/")
	colon := strings.LastIndex(ref, ":")
	if colon > slash {
		return ref[:colon], ref[colon+1:]
	}
	return ref, ""
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
