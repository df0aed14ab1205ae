// Package config loads the workspace settings shared by the xmas tooling:
// the puzzle year, the adventofcode.com session, paths and logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the workspace root.
const DefaultPath = ".xmas.yaml"

// Config holds all xmas configuration.
type Config struct {
	// Puzzle year on adventofcode.com
	Year int `yaml:"year" env:"AOC_YEAR"`

	// Value of the "session" cookie; never written back by Save
	Session string `yaml:"-" env:"AOC_SESSION"`

	// Workspace root (holds go.mod, cmd/ and internal/)
	Root string `yaml:"root" env:"XMAS_ROOT"`

	// Go module path used in generated imports
	Module string `yaml:"module"`

	// Site access
	BaseURL   string `yaml:"base_url"`
	UserAgent string `yaml:"user_agent"`
	Timeout   string `yaml:"timeout"`

	// Answer log
	DatabasePath string `yaml:"database_path" env:"XMAS_DB"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Year:         2025,
		Root:         ".",
		Module:       "aoc2025",
		BaseURL:      "https://adventofcode.com",
		UserAgent:    "aoc2025 xmas tool",
		Timeout:      "30s",
		DatabasePath: filepath.Join(".xmas", "answers.db"),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file, then applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides. Unset
// variables leave the current values alone.
func (c *Config) applyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// GetTimeout returns the HTTP timeout as a duration.
func (c *Config) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// Path resolves p against the workspace root unless it is absolute.
func (c *Config) Path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

// GetDatabasePath returns the answer log location.
func (c *Config) GetDatabasePath() string {
	return c.Path(c.DatabasePath)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Year < 2015 {
		return fmt.Errorf("invalid year: %d (first event was 2015)", c.Year)
	}
	if c.Module == "" {
		return fmt.Errorf("module path not configured")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base_url not configured")
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return c.Logging.Validate()
}
