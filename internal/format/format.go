// Package format renders backend timestamps for display. Formatting is
// lossy (seconds and zone names may be dropped) but the date component
// always agrees with the timeline package's calendar-date conversion, since
// both convert through the same parsed instant.
package format

import (
	"strings"
	"time"

	"github.com/jotapp/jot/internal/constants"
	"github.com/jotapp/jot/internal/timeline"
)

// DateTime renders an instant as a local date and time, e.g.
// "Jun 16, 2025 6:00 PM". Invalid input degrades to the raw string.
func DateTime(value string, loc *time.Location) string {
	if value == "" {
		return "N/A"
	}
	t, err := timeline.ParseInstant(value)
	if err != nil {
		return value
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("Jan 2, 2006 3:04 PM")
}

// DateOnly renders just the local date component, e.g. "Jun 16, 2025".
// Pure YYYY-MM-DD input is rendered without zone conversion.
func DateOnly(value string, loc *time.Location) string {
	if value == "" {
		return "N/A"
	}
	if _, ok := timeline.DateOnlyKey(value); ok {
		t, _ := time.Parse(constants.DateFormat, value)
		return t.Format("Jan 2, 2006")
	}
	t, err := timeline.ParseInstant(value)
	if err != nil {
		return value
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("Jan 2, 2006")
}

// DueTime renders an HH:MM time of day as "3:04 PM". Invalid input degrades
// to the raw string.
func DueTime(value string) string {
	t, err := time.Parse(constants.TimeFormat, value)
	if err != nil {
		return value
	}
	return t.Format("3:04 PM")
}

// FirstName extracts the leading name component for greetings.
func FirstName(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.IndexByte(name, ' '); i > 0 {
		return name[:i]
	}
	return name
}
