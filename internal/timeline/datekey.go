package timeline

import (
	"fmt"
	"time"

	"github.com/jotapp/jot/internal/constants"
)

// DateKey is a canonical YYYY-MM-DD calendar date with no time-of-day or
// timezone component.
type DateKey string

// ParseError reports a timestamp the backend sent that could not be
// interpreted. Items carrying one are dropped from the window, never fatal.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable timestamp %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// instantLayouts are tried in order. The backend normally emits RFC 3339,
// but naive isoformat timestamps (no offset) show up too; those are UTC.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// ParseInstant parses a backend timestamp into a time.Time. Offset-less
// values are interpreted as UTC, matching how the backend stores them.
func ParseInstant(value string) (time.Time, error) {
	var firstErr error
	for _, layout := range instantLayouts {
		t, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, &ParseError{Value: value, Err: firstErr}
}

// LocalDateKey converts a UTC instant string to the calendar date it falls
// on in loc. A nil loc means the system zone. The conversion is real
// timezone math, not string slicing: "2025-06-16T23:00:00Z" is June 16 in
// UTC-5 even though a naive slice would say so too, and June 17 in UTC+2.
func LocalDateKey(value string, loc *time.Location) (DateKey, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := ParseInstant(value)
	if err != nil {
		return "", err
	}
	return Key(t, loc), nil
}

// DateOnlyKey returns the value unchanged when it is already a pure
// YYYY-MM-DD date. Date-only values carry no time-of-day, so there is
// nothing to convert; shifting them through a zone would move habit
// occurrences to the wrong day for westward viewers.
func DateOnlyKey(value string) (DateKey, bool) {
	if len(value) != len(constants.DateFormat) {
		return "", false
	}
	if _, err := time.Parse(constants.DateFormat, value); err != nil {
		return "", false
	}
	return DateKey(value), true
}

// Key formats a time as the calendar date it falls on in loc.
func Key(t time.Time, loc *time.Location) DateKey {
	if loc == nil {
		loc = time.Local
	}
	return DateKey(t.In(loc).Format(constants.DateFormat))
}

// TodayKey returns the current calendar date in loc.
func TodayKey(loc *time.Location) DateKey {
	return Key(time.Now(), loc)
}
