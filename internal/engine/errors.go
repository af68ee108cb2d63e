package engine

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/client"
)

// Sentinel errors the adapter folds engine failures into. The facade's
// error mapper matches these with errors.Is; the original engine message
// stays available through Error().
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("engine unavailable")
	ErrEngine      = errors.New("engine error")
)

// Error couples a sanitized engine message with one of the sentinels.
type Error struct {
	sentinel error
	msg      string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.sentinel }

// addrPattern matches daemon socket and host addresses, which never
// belong in a client-facing message.
var addrPattern = regexp.MustCompile(`(unix|npipe|tcp|http|https)://[^\s"]+`)

func sanitize(msg string) string {
	msg = strings.TrimPrefix(msg, "Error response from daemon: ")
	return addrPattern.ReplaceAllString(msg, "<engine>")
}

// wrap classifies an SDK error into a port error. Transport failures are
// checked before the errdefs kinds: a daemon that cannot be reached must
// surface as unavailable no matter what else the error carries.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var sentinel error
	switch {
	case client.IsErrConnectionFailed(err) || cerrdefs.IsUnavailable(err):
		return &Error{sentinel: ErrUnavailable, msg: op + ": engine unreachable"}
	case cerrdefs.IsNotFound(err):
		sentinel = ErrNotFound
	case cerrdefs.IsConflict(err):
		sentinel = ErrConflict
	default:
		sentinel = ErrEngine
	}
	return &Error{sentinel: sentinel, msg: fmt.Sprintf("%s: %s", op, sanitize(err.Error()))}
}
