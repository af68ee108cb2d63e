// Package humanize renders byte counts as human-friendly strings.
package humanize

import "fmt"

// units in ascending order; each step is 1024x the previous.
var units = []string{"B", "KB", "MB", "GB", "TB"}

// Bytes formats a byte count using 1024-based units with one decimal,
// e.g. 536870912 -> "512.0 MB". Zero and negative counts (the engine
// reports -1 for unknown sizes) render as "0 B".
func Bytes(n int64) string {
	if n <= 0 {
		return "0 B"
	}
	size := float64(n)
	for _, unit := range units {
		if size < 1024.0 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024.0
	}
	return fmt.Sprintf("%.1f PB", size)
}
