package normalize

import (
	"strconv"
	"strings"

	"github.com/wharfd/wharfd/internal/domain"
	"github.com/wharfd/wharfd/internal/engine"
)

const (
	// DefaultLogTail is the logs tail applied when the query omits it.
	DefaultLogTail = 100
	maxLogTail     = 10000

	// DefaultSearchLimit is the search page size when the query omits it.
	DefaultSearchLimit = 25
	maxSearchLimit     = 100
)

// PullRef resolves an image-pull request to a single reference. The tag
// field is only consulted when the image carries neither tag nor digest.
func PullRef(req domain.ImagePullRequest) (string, error) {
	if req.Image == "" {
		return "", Errorf("image is required")
	}
	if strings.Contains(req.Image, "@") {
		return req.Image, nil
	}
	// A colon after the last slash means the reference already has a tag.
	last := req.Image[strings.LastIndex(req.Image, "/")+1:]
	if strings.Contains(last, ":") {
		return req.Image, nil
	}
	tag := req.Tag
	if tag == "" {
		tag = "latest"
	}
	return req.Image + ":" + tag, nil
}

// Build lowers an image-build request into engine parameters.
func Build(req domain.ImageBuildRequest) (engine.ImageBuildParams, error) {
	if req.Path == "" {
		return engine.ImageBuildParams{}, Errorf("path is required")
	}
	dockerfile := req.Dockerfile
	if dockerfile == "" {
		dockerfile = "Dockerfile"
	}
	return engine.ImageBuildParams{
		ContextDir: req.Path,
		Dockerfile: dockerfile,
		Tag:        req.Tag,
		Labels:     req.Labels,
		BuildArgs:  req.BuildArgs,
		NoCache:    req.NoCache,
	}, nil
}

// SearchTerm validates the search query term.
func SearchTerm(term string) (string, error) {
	if strings.TrimSpace(term) == "" {
		return "", Errorf("search term is required")
	}
	return term, nil
}

// SearchLimit resolves the search limit query parameter, clamped to the
// range the registry accepts.
func SearchLimit(raw string) (int, error) {
	return boundedInt(raw, "limit", DefaultSearchLimit, 1, maxSearchLimit)
}

// LogTail resolves the logs tail query parameter.
func LogTail(raw string) (int, error) {
	return boundedInt(raw, "tail", DefaultLogTail, 1, maxLogTail)
}

func boundedInt(raw, name string, def, min, max int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, Errorf("%s must be an integer", name)
	}
	if n < min {
		n = min
	}
	if n > max {
		n = max
	}
	return n, nil
}
