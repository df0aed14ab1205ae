// Package logging builds the zap loggers used by the xmas tooling.
// Every subsystem logs through a child logger named after its Category so
// the output can be filtered per concern.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"aoc2025/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryRun      Category = "run"      // Solver execution and timing
	CategoryFetch    Category = "fetch"    // adventofcode.com requests
	CategoryScaffold Category = "scaffold" // New day generation
	CategoryWatch    Category = "watch"    // File watching
	CategoryAnswers  Category = "answers"  // Answer log
)

// Options controls how a logger is built.
type Options struct {
	Level   string // debug, info, warn, error
	Format  string // json, console
	Verbose bool   // forces debug level
}

// FromConfig maps the logging section of the config file to Options.
func FromConfig(cfg config.LoggingConfig, verbose bool) Options {
	return Options{Level: cfg.Level, Format: cfg.Format, Verbose: verbose}
}

// New builds a production-style zap logger writing to stderr.
func New(opts Options) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if opts.Format == "console" {
		zcfg.Encoding = "console"
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zcfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	}
	zcfg.OutputPaths = []string{"stderr"}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// ParseLevel converts a level name; the empty string means info.
func ParseLevel(s string) (zapcore.Level, error) {
	switch s {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
}

// For returns the child logger for a category. A nil parent yields a
// no-op logger so library code can be used without wiring logging.
func For(parent *zap.Logger, cat Category) *zap.Logger {
	if parent == nil {
		return zap.NewNop()
	}
	return parent.Named(string(cat))
}
