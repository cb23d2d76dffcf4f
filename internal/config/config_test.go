package config

import (
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() config should validate, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("JOT_API_URL", "https://api.example.com/api")
	t.Setenv("JOT_TIMEZONE", "America/New_York")
	t.Setenv("JOT_WINDOW_DAYS", "14")
	t.Setenv("JOT_DEBUG", "true")

	cfg := Default()
	applyEnv(&cfg)

	if cfg.BaseURL != "https://api.example.com/api" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timezone != "America/New_York" {
		t.Errorf("Timezone = %q", cfg.Timezone)
	}
	if cfg.WindowDays != 14 {
		t.Errorf("WindowDays = %d", cfg.WindowDays)
	}
	if !cfg.Debug {
		t.Error("Debug = false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base URL", func(c *Config) { c.BaseURL = "" }},
		{"not a URL", func(c *Config) { c.BaseURL = "::not a url::" }},
		{"zero window", func(c *Config) { c.WindowDays = 0 }},
		{"negative window", func(c *Config) { c.WindowDays = -7 }},
		{"bad timezone", func(c *Config) { c.Timezone = "Nowhere/Invalid" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestLocation(t *testing.T) {
	cfg := Default()
	loc, err := cfg.Location()
	if err != nil || loc == nil {
		t.Fatalf("Location() = %v, %v", loc, err)
	}

	cfg.Timezone = "Asia/Tokyo"
	loc, err = cfg.Location()
	if err != nil {
		t.Fatalf("Location() error = %v", err)
	}
	if loc.String() != "Asia/Tokyo" {
		t.Errorf("Location() = %v, want Asia/Tokyo", loc)
	}
}
