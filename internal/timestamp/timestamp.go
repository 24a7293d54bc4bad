// Package timestamp converts time offsets to display strings and back.
package timestamp

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders seconds as MM:SS, or HH:MM:SS for offsets of an hour or
// more. The value is truncated to whole seconds.
func Format(seconds float64) string {
	total := int(seconds)

	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// Parse converts an MM:SS or HH:MM:SS display string back to seconds.
// Malformed input yields 0.0; the result is only used to recover an
// approximate offset for ordering, never for correctness-critical logic.
func Parse(display string) float64 {
	parts := strings.Split(display, ":")

	switch len(parts) {
	case 2:
		minutes, err1 := strconv.Atoi(parts[0])
		secs, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return 0.0
		}
		return float64(minutes*60 + secs)
	case 3:
		hours, err1 := strconv.Atoi(parts[0])
		minutes, err2 := strconv.Atoi(parts[1])
		secs, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return 0.0
		}
		return float64(hours*3600 + minutes*60 + secs)
	default:
		return 0.0
	}
}
