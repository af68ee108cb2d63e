// Package normalize lowers loosely-typed request payloads into the exact
// parameter shapes the engine port requires. Normalization is pure: it
// never touches the engine, and a failure here is the only thing the
// error mapper classifies as a validation error.
package normalize

import "fmt"

// ValidationError marks a request that failed normalization. The
// operation aborts before any engine call is made.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// Errorf builds a ValidationError.
func Errorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
