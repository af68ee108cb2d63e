package facade

import (
	"errors"

	"github.com/wharfd/wharfd/internal/domain"
	"github.com/wharfd/wharfd/internal/engine"
	"github.com/wharfd/wharfd/internal/normalize"
)

const (
	unavailableMessage = "container engine is unavailable"
	internalMessage    = "internal error"
)

// MapError classifies any failure into one error record. Matching order
// is fixed: validation, then the engine sentinels from most specific to
// least, then the internal catch-all. Engine-reported messages pass
// through verbatim (the adapter already sanitized them); transport
// failures collapse to one fixed message.
func MapError(err error) domain.ErrorRecord {
	var verr *normalize.ValidationError
	switch {
	case errors.As(err, &verr):
		return domain.NewErrorRecord(domain.KindValidation, verr.Error())
	case errors.Is(err, engine.ErrNotFound):
		return domain.NewErrorRecord(domain.KindNotFound, err.Error())
	case errors.Is(err, engine.ErrConflict):
		return domain.NewErrorRecord(domain.KindConflict, err.Error())
	case errors.Is(err, engine.ErrUnavailable):
		return domain.NewErrorRecord(domain.KindEngineUnavailable, unavailableMessage)
	case errors.Is(err, engine.ErrEngine):
		return domain.NewErrorRecord(domain.KindEngineError, err.Error())
	default:
		return domain.NewErrorRecord(domain.KindInternal, internalMessage)
	}
}
