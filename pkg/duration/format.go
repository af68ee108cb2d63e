package duration

import (
	"fmt"
	"strings"
	"time"
)

// Format renders a duration with the same human-friendly units Parse
// accepts, truncated to minutes: "3d4h12m", "2h", "45m". Durations
// under a minute render as "0m".
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := d / Day
	d -= days * Day
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%dd", days)
	}
	if hours > 0 {
		fmt.Fprintf(&b, "%dh", hours)
	}
	if minutes > 0 || b.Len() == 0 {
		fmt.Fprintf(&b, "%dm", minutes)
	}
	return b.String()
}
