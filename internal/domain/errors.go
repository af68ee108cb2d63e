package domain

import "net/http"

// ErrorKind classifies a failure into the fixed taxonomy, so callers can
// branch on kind or HTTP status without matching message strings.
type ErrorKind string

const (
	KindValidation        ErrorKind = "validation"
	KindNotFound          ErrorKind = "not_found"
	KindConflict          ErrorKind = "conflict"
	KindEngineUnavailable ErrorKind = "engine_unavailable"
	KindEngineError       ErrorKind = "engine_error"
	KindInternal          ErrorKind = "internal"
)

// ErrorRecord is constructed once at the failure site and flows unchanged
// into the response envelope.
type ErrorRecord struct {
	Kind       ErrorKind
	Message    string
	HTTPStatus int
}

// NewErrorRecord builds a record with the HTTP status fixed by the kind.
func NewErrorRecord(kind ErrorKind, message string) ErrorRecord {
	return ErrorRecord{Kind: kind, Message: message, HTTPStatus: statusFor(kind)}
}

func statusFor(kind ErrorKind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindEngineUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
