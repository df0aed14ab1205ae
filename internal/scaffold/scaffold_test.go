package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"aoc2025/internal/puzzle"
)

func newWorkspace(t *testing.T, existing ...int) *Scaffolder {
	t.Helper()
	root := t.TempDir()
	for _, d := range existing {
		require.NoError(t, os.MkdirAll(SolutionDir(root, d), 0755))
	}
	return New(root, "example.com/aoc", zap.NewNop())
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestCreate(t *testing.T) {
	s := newWorkspace(t, 1, 2)

	res, err := s.Create(3, Options{Title: "Lobby", Sample: "987654321111111\n"})
	require.NoError(t, err)
	assert.Len(t, res.FilesCreated, 5)

	day := readFile(t, filepath.Join(res.SolutionDir, "day03.go"))
	assert.Contains(t, day, "package day03")
	assert.Contains(t, day, `"example.com/aoc/internal/puzzle"`)
	assert.Contains(t, day, `puzzle.NewDay(3, "Lobby", Part1, Part2)`)

	assert.Contains(t, readFile(t, filepath.Join(res.SolutionDir, "day03_test.go")), "func TestSample(t *testing.T)")
	assert.Equal(t, "987654321111111\n", readFile(t, filepath.Join(res.SolutionDir, "testdata", "test.txt")))

	main := readFile(t, filepath.Join(res.CommandDir, "main.go"))
	assert.Contains(t, main, "puzzle.Main(day03.Day)")

	index := readFile(t, filepath.Join(s.Root, "internal", "solutions", "all.go"))
	assert.Contains(t, index, "// Code generated by xmas new. DO NOT EDIT.")
	for _, pkg := range []string{"day01", "day02", "day03"} {
		assert.Contains(t, index, `_ "example.com/aoc/internal/solutions/`+pkg+`"`)
	}
}

func TestCreateRejectsExistingDay(t *testing.T) {
	s := newWorkspace(t, 4)

	_, err := s.Create(4, Options{})
	assert.ErrorIs(t, err, ErrDayExists)

	require.NoError(t, os.MkdirAll(CommandDir(s.Root, 5), 0755))
	_, err = s.Create(5, Options{})
	assert.ErrorIs(t, err, ErrDayExists)
}

func TestCreateRejectsInvalidDay(t *testing.T) {
	s := newWorkspace(t)
	for _, d := range []int{0, 26} {
		_, err := s.Create(d, Options{})
		assert.ErrorIs(t, err, puzzle.ErrInvalidDay)
	}
}

func TestCreateCleansUpOnFailure(t *testing.T) {
	s := newWorkspace(t)
	// all.go as a directory makes the final write fail
	require.NoError(t, os.MkdirAll(filepath.Join(s.Root, "internal", "solutions", "all.go"), 0755))

	_, err := s.Create(6, Options{})
	require.Error(t, err)

	for _, dir := range []string{SolutionDir(s.Root, 6), CommandDir(s.Root, 6)} {
		_, statErr := os.Stat(dir)
		assert.True(t, os.IsNotExist(statErr), "%s should be removed", dir)
	}
}

func TestCreateCleansUpWhenCommandDirFails(t *testing.T) {
	s := newWorkspace(t)
	// cmd as a regular file makes the second directory fail
	require.NoError(t, os.WriteFile(filepath.Join(s.Root, "cmd"), nil, 0644))

	_, err := s.Create(6, Options{})
	require.Error(t, err)

	_, statErr := os.Stat(SolutionDir(s.Root, 6))
	assert.True(t, os.IsNotExist(statErr), "solution dir should be removed")

	// Once cmd is a directory again the day can be created.
	require.NoError(t, os.Remove(filepath.Join(s.Root, "cmd")))
	_, err = s.Create(6, Options{})
	assert.NoError(t, err)
}

func TestDaysIgnoresOtherEntries(t *testing.T) {
	s := newWorkspace(t, 11, 2)
	base := filepath.Join(s.Root, "internal", "solutions")
	require.NoError(t, os.WriteFile(filepath.Join(base, "day03"), nil, 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "dayX"), 0755))

	days, err := s.Days()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 11}, days)

	days, err = New(t.TempDir(), "m", nil).Days()
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("ws", "cmd", "day09", "input.txt"), InputPath("ws", 9))
	assert.Equal(t, filepath.Join("ws", "internal", "solutions", "day12"), SolutionDir("ws", 12))
	assert.Equal(t, "07", Pad(7))
}
