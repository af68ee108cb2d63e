// Package facade implements the resource operations behind the HTTP
// handlers. Every operation follows the same template: normalize the
// request, call the engine port, lift the result into a canonical
// shape, and wrap it in an envelope paired with an HTTP status. Errors
// take a single path through MapError.
package facade

import (
	"context"
	"net/http"

	"github.com/wharfd/wharfd/internal/domain"
	"github.com/wharfd/wharfd/internal/engine"
)

// Auditor records mutating operations. Recording is best effort: an
// implementation must never fail the request it observes.
type Auditor interface {
	Record(ctx context.Context, kind, operation, subject, outcome, detail string)
}

// base carries the dependencies every resource facade shares.
type base struct {
	engine engine.Client
	audit  Auditor
}

// note records one mutating operation when an auditor is wired.
func (b base) note(ctx context.Context, kind, operation, subject string, err error) {
	if b.audit == nil {
		return
	}
	outcome, detail := "ok", ""
	if err != nil {
		rec := MapError(err)
		outcome, detail = string(rec.Kind), rec.Message
	}
	b.audit.Record(ctx, kind, operation, subject, outcome, detail)
}

func ok(data any) (domain.Envelope, int) {
	return domain.OK(data), http.StatusOK
}

func okList(data any, count int) (domain.Envelope, int) {
	return domain.OKList(data, count), http.StatusOK
}

func created(data any) (domain.Envelope, int) {
	return domain.OK(data), http.StatusCreated
}

func fail(err error) (domain.Envelope, int) {
	rec := MapError(err)
	return domain.Fail(rec.Message), rec.HTTPStatus
}
