package timeline

import (
	"errors"
	"testing"
	"time"
)

func TestLocalDateKey(t *testing.T) {
	utcMinus5 := time.FixedZone("UTC-5", -5*60*60)
	utcPlus2 := time.FixedZone("UTC+2", 2*60*60)

	tests := []struct {
		name    string
		value   string
		loc     *time.Location
		want    DateKey
		wantErr bool
	}{
		{
			name:  "late evening UTC stays same day west of UTC",
			value: "2025-06-16T23:00:00Z",
			loc:   utcMinus5,
			want:  "2025-06-16",
		},
		{
			name:  "late evening UTC rolls forward east of UTC",
			value: "2025-06-16T23:00:00Z",
			loc:   utcPlus2,
			want:  "2025-06-17",
		},
		{
			name:  "early morning UTC rolls back west of UTC",
			value: "2025-06-17T03:00:00Z",
			loc:   utcMinus5,
			want:  "2025-06-16",
		},
		{
			name:  "UTC viewer",
			value: "2025-06-16T23:00:00Z",
			loc:   time.UTC,
			want:  "2025-06-16",
		},
		{
			name:  "offset-less timestamp treated as UTC",
			value: "2025-06-16T23:00:00",
			loc:   utcMinus5,
			want:  "2025-06-16",
		},
		{
			name:  "timestamp with explicit offset",
			value: "2025-06-16T23:00:00-05:00",
			loc:   utcMinus5,
			want:  "2025-06-16",
		},
		{
			name:  "fractional seconds",
			value: "2025-06-16T23:00:00.123456",
			loc:   time.UTC,
			want:  "2025-06-16",
		},
		{
			name:    "garbage input",
			value:   "not-a-date",
			loc:     time.UTC,
			wantErr: true,
		},
		{
			name:    "empty input",
			value:   "",
			loc:     time.UTC,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LocalDateKey(tt.value, tt.loc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LocalDateKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Errorf("error type = %T, want *ParseError", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("LocalDateKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDateOnlyKey(t *testing.T) {
	tests := []struct {
		value  string
		want   DateKey
		wantOK bool
	}{
		{"2025-06-20", "2025-06-20", true},
		{"2025-06-20T10:00:00Z", "", false},
		{"2025-6-20", "", false},
		{"", "", false},
		{"not-a-date!", "", false},
	}

	for _, tt := range tests {
		got, ok := DateOnlyKey(tt.value)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("DateOnlyKey(%q) = %q, %v; want %q, %v", tt.value, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestKeyNilLocationDefaultsToLocal(t *testing.T) {
	instant := time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)
	if got, want := Key(instant, nil), Key(instant, time.Local); got != want {
		t.Errorf("Key(nil loc) = %q, want %q", got, want)
	}
}
