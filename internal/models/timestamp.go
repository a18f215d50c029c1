package models

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted for event and booking timestamps. The API emits zone-less
// local date-times; those are interpreted in the process's local zone.
var zonelessLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an API timestamp string into an absolute time.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range zonelessLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// FormatISOInstant renders t the way a browser's Date.toISOString does.
func FormatISOInstant(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
