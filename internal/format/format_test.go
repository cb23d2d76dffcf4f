package format

import (
	"testing"
	"time"

	"github.com/jotapp/jot/internal/timeline"
)

func TestDateTime(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"converts to viewer zone", "2025-06-16T23:00:00Z", "Jun 16, 2025 6:00 PM"},
		{"rolls back across midnight", "2025-06-17T03:30:00Z", "Jun 16, 2025 10:30 PM"},
		{"invalid degrades to raw", "garbage", "garbage"},
		{"empty", "", "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateTime(tt.value, loc); got != tt.want {
				t.Errorf("DateTime(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

// The displayed date component must always match the calendar date used for
// bucketing the same instant.
func TestDateTimeAgreesWithLocalDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	values := []string{
		"2025-06-16T23:00:00Z",
		"2025-12-31T20:00:00Z",
		"2025-01-01T01:00:00Z",
	}

	for _, v := range values {
		key, err := timeline.LocalDateKey(v, loc)
		if err != nil {
			t.Fatalf("LocalDateKey(%q) error = %v", v, err)
		}
		instant, _ := timeline.ParseInstant(v)
		wantDate := instant.In(loc).Format("Jan 2, 2006")
		if got := DateOnly(v, loc); got != wantDate {
			t.Errorf("DateOnly(%q) = %q, want %q (bucket date %q)", v, got, wantDate, key)
		}
	}
}

func TestDateOnlyPassThrough(t *testing.T) {
	loc := time.FixedZone("UTC-11", -11*60*60)
	if got := DateOnly("2025-06-20", loc); got != "Jun 20, 2025" {
		t.Errorf("DateOnly(date-only) = %q, want %q", got, "Jun 20, 2025")
	}
}

func TestDueTime(t *testing.T) {
	tests := []struct{ in, want string }{
		{"07:30", "7:30 AM"},
		{"18:05", "6:05 PM"},
		{"bogus", "bogus"},
	}
	for _, tt := range tests {
		if got := DueTime(tt.in); got != tt.want {
			t.Errorf("DueTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFirstName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Ada Lovelace", "Ada"},
		{"Cher", "Cher"},
		{"  Grace Hopper ", "Grace"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FirstName(tt.in); got != tt.want {
			t.Errorf("FirstName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
