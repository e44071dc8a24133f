package domain

import (
	"fmt"
	"math"
	"time"
)

// FormatDelta renders the age of t relative to now as the single largest
// nonzero unit, e.g. "3 days ago" or "5 minutes ago".
//
// Days are truncated. Hours are rounded half away from zero, so 90 minutes reads
// "2 hours ago". Minutes are truncated so that anything under a minute is
// reported in raw seconds. A unit that comes out as zero falls through to the
// next smaller one. Timestamps after now count as zero elapsed time.
func FormatDelta(now, t time.Time) string {
	elapsed := now.Sub(t)
	if elapsed < 0 {
		elapsed = 0
	}
	days := int64(elapsed / (24 * time.Hour))
	if days > 0 {
		return agoString(days, "day")
	}
	secs := int64(elapsed / time.Second)
	if hours := int64(math.Round(float64(secs) / 3600)); hours > 0 {
		return agoString(hours, "hour")
	}
	if mins := secs / 60; mins > 0 {
		return agoString(mins, "minute")
	}
	return agoString(secs, "second")
}

func agoString(n int64, unit string) string {
	if n > 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}

// ParseTimestamp parses an ISO-8601 instant as returned by the tracker API.
// Timestamps without a zone are taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339Nano,
		"2006-01-02 15:04:05Z07:00",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

// RelativeTime formats an API timestamp relative to the clock.
// It returns an empty string for timestamps that cannot be parsed.
func RelativeTime(clock Clock, timestamp string) string {
	t, err := ParseTimestamp(timestamp)
	if err != nil {
		return ""
	}
	return FormatDelta(clock.Now(), t)
}
