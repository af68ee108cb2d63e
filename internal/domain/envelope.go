// Package domain holds the canonical value types shared by every layer:
// the response envelope, the error record, and the per-kind resource
// shapes returned to clients. Field names and types are fixed across
// engine versions; absent engine data maps to an explicit zero value,
// never an omitted key.
package domain

// Envelope is the uniform wrapper around every response body. Exactly one
// of Data/Error is non-nil and Success always agrees with which one it is;
// the two constructors below are the only way an envelope is built.
type Envelope struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
	Count   *int    `json:"count,omitempty"`
}

// OK wraps a successful payload.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKList wraps a successful list payload and records its length.
func OKList(data any, count int) Envelope {
	return Envelope{Success: true, Data: data, Count: &count}
}

// Fail wraps a failure message. Data stays null.
func Fail(message string) Envelope {
	return Envelope{Success: false, Error: &message}
}
