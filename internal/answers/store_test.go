package answers

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"aoc2025/internal/puzzle"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "answers.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHashInput(t *testing.T) {
	assert.Equal(t, HashInput("L68\nR48\n"), HashInput("L68\nR48\n"))
	assert.NotEqual(t, HashInput("L68\n"), HashInput("L69\n"))
	assert.NotEmpty(t, HashInput(""))
}

func TestRecordAndLatest(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Latest(1, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := s.Record([]puzzle.Result{
		{Day: 1, Part: 1, Value: 3, Duration: 5 * time.Millisecond},
		{Day: 1, Part: 2, Value: 6},
		{Day: 1, Part: 3, Err: assert.AnError},
	}, "abc")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = s.Record([]puzzle.Result{{Day: 1, Part: 1, Value: 4}}, "def")
	require.NoError(t, err)

	e, ok, err := s.Latest(1, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 4, e.Value)
	assert.Equal(t, "def", e.InputHash)

	e, ok, err = s.Latest(1, 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 6, e.Value)
}

func TestHistory(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Record([]puzzle.Result{
		{Day: 2, Part: 1, Value: 10, Duration: 12 * time.Millisecond},
		{Day: 3, Part: 1, Value: 99},
	}, "h1")
	require.NoError(t, err)
	_, err = s.Record([]puzzle.Result{{Day: 2, Part: 2, Value: 20}}, "h1")
	require.NoError(t, err)

	entries, err := s.History(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Part)
	assert.Equal(t, 10, entries[0].Value)
	assert.Equal(t, 12*time.Millisecond, entries[0].Duration)
	assert.False(t, entries[0].RecordedAt.IsZero())
	assert.Equal(t, 2, entries[1].Part)

	entries, err = s.History(7)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCheck(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Record([]puzzle.Result{
		{Day: 5, Part: 1, Value: 3},
		{Day: 5, Part: 2, Value: 14},
	}, "sample")
	require.NoError(t, err)

	mismatches, err := s.Check([]puzzle.Result{
		{Day: 5, Part: 1, Value: 3},
		{Day: 5, Part: 2, Value: 15},
	}, "sample")
	require.NoError(t, err)
	require.Len(t, mismatches, 1)
	assert.Equal(t, Mismatch{Day: 5, Part: 2, Got: 15, Recorded: 14}, mismatches[0])
	assert.Equal(t, "day 5 part 2: got 15, recorded 14", mismatches[0].String())

	// A different input has no history to disagree with.
	mismatches, err = s.Check([]puzzle.Result{{Day: 5, Part: 2, Value: 15}}, "real")
	require.NoError(t, err)
	assert.Empty(t, mismatches)
}

func TestReopenKeepsAnswers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.db")

	s, err := Open(path, nil)
	require.NoError(t, err)
	_, err = s.Record([]puzzle.Result{{Day: 9, Part: 1, Value: 50}}, "x")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path, nil)
	require.NoError(t, err)
	defer s.Close()

	e, ok, err := s.Latest(9, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 50, e.Value)
	assert.Equal(t, path, s.Path())
}
