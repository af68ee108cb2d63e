// Package canon lifts engine-native objects into the canonical shapes
// served over HTTP. Lifting is pure and total: absent engine data
// becomes an explicit zero value, never an omitted key, and input order
// is preserved for list shapes.
package canon

import (
	"strings"
	"time"
)

const shortIDLen = 12

// ShortID returns the 12-hex short form of an engine ID, stripping any
// digest prefix. IDs shorter than 12 characters pass through.
func ShortID(id string) string {
	id = strings.TrimPrefix(id, "sha256:")
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

// unixTime formats a unix-seconds timestamp; zero and negative values
// mean the engine reported nothing.
func unixTime(sec int64) string {
	if sec <= 0 {
		return ""
	}
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}

// parseTime re-formats an engine timestamp string to RFC3339 UTC.
// Unparseable or zero timestamps become "".
func parseTime(s string) string {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// stampTime formats a non-string engine timestamp.
func stampTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func orEmptyMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

func orEmptyList(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
