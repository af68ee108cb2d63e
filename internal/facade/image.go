package facade

import (
	"context"
	"fmt"

	"github.com/wharfd/wharfd/internal/canon"
	"github.com/wharfd/wharfd/internal/domain"
	"github.com/wharfd/wharfd/internal/engine"
	"github.com/wharfd/wharfd/internal/normalize"
	"github.com/wharfd/wharfd/pkg/humanize"
)

const kindImage = "image"

// Images exposes the image operations.
type Images struct {
	base
}

// NewImages builds the image facade. audit may be nil.
func NewImages(eng engine.Client, audit Auditor) *Images {
	return &Images{base{engine: eng, audit: audit}}
}

// List returns top-level images; all includes intermediate layers.
func (f *Images) List(ctx context.Context, allRaw string) (domain.Envelope, int) {
	all, err := normalize.BoolQuery(allRaw, "all", false)
	if err != nil {
		return fail(err)
	}
	items, err := f.engine.ImageList(ctx, all)
	if err != nil {
		return fail(err)
	}
	lifted := canon.Images(items)
	return okList(lifted, len(lifted))
}

// Get returns the detail shape for one image reference.
func (f *Images) Get(ctx context.Context, ref string) (domain.Envelope, int) {
	info, err := f.engine.ImageInspect(ctx, ref)
	if err != nil {
		return fail(err)
	}
	history, err := f.engine.ImageHistory(ctx, ref)
	if err != nil {
		return fail(err)
	}
	return ok(canon.ImageDetail(info, history))
}

// Pull pulls an image and reports the resulting reference.
func (f *Images) Pull(ctx context.Context, req domain.ImagePullRequest) (domain.Envelope, int) {
	ref, err := normalize.PullRef(req)
	if err != nil {
		return fail(err)
	}
	info, err := f.engine.ImagePull(ctx, ref)
	f.note(ctx, kindImage, "pull", ref, err)
	if err != nil {
		return fail(err)
	}
	detail := canon.ImageDetail(info, nil)
	return ok(domain.ImagePullResult{
		Message: fmt.Sprintf("image %s pulled", ref),
		ImageID: canon.ShortID(detail.ID),
		Tags:    detail.Tags,
		Size:    detail.Size,
		Status:  "pulled",
	})
}

// Build builds an image from a local context directory.
func (f *Images) Build(ctx context.Context, req domain.ImageBuildRequest) (domain.Envelope, int) {
	params, err := normalize.Build(req)
	if err != nil {
		return fail(err)
	}
	info, err := f.engine.ImageBuild(ctx, params)
	f.note(ctx, kindImage, "build", params.Tag, err)
	if err != nil {
		return fail(err)
	}
	detail := canon.ImageDetail(info, nil)
	return ok(domain.ImageBuildResult{
		Message: fmt.Sprintf("image %s built", buildSubject(params.Tag, detail.ID)),
		ImageID: canon.ShortID(detail.ID),
		Tags:    detail.Tags,
		Status:  "built",
	})
}

// Remove deletes one image reference.
func (f *Images) Remove(ctx context.Context, ref, forceRaw, noPruneRaw string) (domain.Envelope, int) {
	force, err := normalize.BoolQuery(forceRaw, "force", false)
	if err != nil {
		return fail(err)
	}
	noPrune, err := normalize.BoolQuery(noPruneRaw, "no_prune", false)
	if err != nil {
		return fail(err)
	}
	info, err := f.engine.ImageInspect(ctx, ref)
	if err != nil {
		f.note(ctx, kindImage, "remove", ref, err)
		return fail(err)
	}
	_, err = f.engine.ImageRemove(ctx, ref, force, noPrune)
	f.note(ctx, kindImage, "remove", ref, err)
	if err != nil {
		return fail(err)
	}
	return ok(domain.ImageRemoveResult{
		Message: fmt.Sprintf("image %s removed", ref),
		ImageID: canon.ShortID(info.ID),
		Status:  "removed",
	})
}

// Search queries the configured registry.
func (f *Images) Search(ctx context.Context, term, limitRaw string) (domain.Envelope, int) {
	term, err := normalize.SearchTerm(term)
	if err != nil {
		return fail(err)
	}
	limit, err := normalize.SearchLimit(limitRaw)
	if err != nil {
		return fail(err)
	}
	items, err := f.engine.ImageSearch(ctx, term, limit)
	if err != nil {
		return fail(err)
	}
	lifted := canon.SearchResults(items)
	return okList(lifted, len(lifted))
}

// Prune removes dangling images, or all unused ones when dangling_only
// is false.
func (f *Images) Prune(ctx context.Context, danglingRaw string) (domain.Envelope, int) {
	danglingOnly, err := normalize.BoolQuery(danglingRaw, "dangling_only", true)
	if err != nil {
		return fail(err)
	}
	report, err := f.engine.ImagesPrune(ctx, danglingOnly)
	f.note(ctx, kindImage, "prune", "", err)
	if err != nil {
		return fail(err)
	}
	deleted := make([]string, 0, len(report.ImagesDeleted))
	for _, item := range report.ImagesDeleted {
		switch {
		case item.Deleted != "":
			deleted = append(deleted, canon.ShortID(item.Deleted))
		case item.Untagged != "":
			deleted = append(deleted, item.Untagged)
		}
	}
	reclaimed := int64(report.SpaceReclaimed)
	return ok(domain.ImagePruneResult{
		Message:             fmt.Sprintf("%d images pruned", len(deleted)),
		ImagesDeleted:       deleted,
		SpaceReclaimed:      humanize.Bytes(reclaimed),
		SpaceReclaimedBytes: reclaimed,
		Status:              "pruned",
	})
}

func buildSubject(tag, id string) string {
	if tag != "" {
		return tag
	}
	return canon.ShortID(id)
}
