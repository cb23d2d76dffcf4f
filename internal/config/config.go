// Package config layers application settings: built-in defaults, an optional
// YAML file in the config dir, an optional .env file, then JOT_* environment
// variables. The API base URL is the only required value and ships with a
// local-dev default.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jotapp/jot/internal/constants"
)

const configFileName = "config.yaml"

type Config struct {
	// BaseURL is the backend API root, e.g. http://localhost:5000/api
	BaseURL string `yaml:"base_url"`
	// Timezone is an IANA zone name ("Local" or empty uses the system zone).
	// It decides which calendar date an instant falls on.
	Timezone string `yaml:"timezone"`
	// WindowDays is the initial timeline window size.
	WindowDays int `yaml:"window_days"`
	Debug      bool `yaml:"debug"`
}

func Default() Config {
	return Config{
		BaseURL:    "http://localhost:5000/api",
		Timezone:   "Local",
		WindowDays: constants.DefaultWindowDays,
	}
}

// Dir returns the application config directory, creating it if needed.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	dir := filepath.Join(base, constants.AppName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// Load builds the effective configuration. A missing config file or .env is
// fine; a malformed one is not.
func Load() (Config, error) {
	cfg := Default()

	dir, err := Dir()
	if err != nil {
		return cfg, err
	}

	path := filepath.Join(dir, configFileName)
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// .env in the working directory, for development setups
	_ = godotenv.Load()

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("JOT_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("JOT_TIMEZONE"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("JOT_WINDOW_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.WindowDays = n
		}
	}
	if v := os.Getenv("JOT_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.WindowDays, validation.Required, validation.Min(1), validation.Max(366)),
	); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
