package aoc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// InputFetcher downloads a day's input.
type InputFetcher interface {
	FetchInput(ctx context.Context, day int) (string, error)
}

// InputCache keeps inputs on disk so the site is asked at most once per day.
type InputCache struct {
	Fetcher InputFetcher
	Logger  *zap.Logger
}

// LoadOrFetch returns the input stored at path, downloading and writing it
// first when the file does not exist. fetched reports a download.
func (c *InputCache) LoadOrFetch(ctx context.Context, day int, path string) (input string, fetched bool, err error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", false, fmt.Errorf("failed to read cached input: %w", err)
	}

	input, err = c.Fetcher.FetchInput(ctx, day)
	if err != nil {
		return "", false, err
	}
	if err := WriteInput(path, input); err != nil {
		return "", false, err
	}
	if c.Logger != nil {
		c.Logger.Info("Cached input", zap.Int("day", day), zap.String("path", path))
	}
	return input, true, nil
}

// WriteInput stores input at path, creating parent directories.
func WriteInput(path, input string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create input directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(input), 0644); err != nil {
		return fmt.Errorf("failed to write input: %w", err)
	}
	return nil
}
