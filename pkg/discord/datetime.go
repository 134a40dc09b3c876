package discord

import "time"

// FormatTimestamp renders t in loc for embed text. Zero times render empty.
func FormatTimestamp(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("02/01/2006 15:04 MST")
}
