package config

import (
	"fmt"
	"slices"
)

// ValidLogLevels lists the accepted logging.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"XMAS_LOG_LEVEL"` // debug, info, warn, error
	Format string `yaml:"format"`                     // json, console
}

// Validate checks the level and format names.
func (c LoggingConfig) Validate() error {
	if !slices.Contains(ValidLogLevels, c.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Level, ValidLogLevels)
	}
	if c.Format != "json" && c.Format != "console" {
		return fmt.Errorf("invalid log format: %s (valid: json, console)", c.Format)
	}
	return nil
}
