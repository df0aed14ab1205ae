package aoc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	calls int
	input string
	err   error
}

func (s *stubFetcher) FetchInput(ctx context.Context, day int) (string, error) {
	s.calls++
	return s.input, s.err
}

func TestLoadOrFetchDownloadsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmd", "day03", "input.txt")
	f := &stubFetcher{input: "987654321111111\n"}
	cache := &InputCache{Fetcher: f}

	input, fetched, err := cache.LoadOrFetch(context.Background(), 3, path)
	require.NoError(t, err)
	assert.True(t, fetched)
	assert.Equal(t, "987654321111111\n", input)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, input, string(data))

	input, fetched, err = cache.LoadOrFetch(context.Background(), 3, path)
	require.NoError(t, err)
	assert.False(t, fetched)
	assert.Equal(t, "987654321111111\n", input)
	assert.Equal(t, 1, f.calls)
}

func TestLoadOrFetchError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	cache := &InputCache{Fetcher: &stubFetcher{err: ErrNoSession}}

	_, _, err := cache.LoadOrFetch(context.Background(), 1, path)
	assert.ErrorIs(t, err, ErrNoSession)

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "nothing written on failure")
}
