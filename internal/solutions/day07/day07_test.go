package day07

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2025/internal/xmas"
)

func readTestInput(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("testdata/test.txt")
	require.NoError(t, err)
	return string(data)
}

func TestPart1(t *testing.T) {
	got, err := Part1(readTestInput(t))
	require.NoError(t, err)
	assert.Equal(t, 21, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(readTestInput(t))
	require.NoError(t, err)
	assert.Equal(t, 40, got)
}

func TestSimulatePath(t *testing.T) {
	m, err := xmas.ParseByteMap("..S..\n.....\n..^..\n.....\n")
	require.NoError(t, err)

	res, err := Simulate(m)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Splits)
	assert.Equal(t, 2, res.Timelines)
	assert.Equal(t, "..S..\n..|..\n.|^|.\n.|.|.\n", res.Path.String())
}

func TestSplitAtEdge(t *testing.T) {
	m, err := xmas.ParseByteMap("S.\n^.\n..\n")
	require.NoError(t, err)

	res, err := Simulate(m)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Splits)
	assert.Equal(t, 2, res.Timelines, "left branch leaves the grid")
}

func TestNoStart(t *testing.T) {
	_, err := Part1("...\n.^.\n")
	assert.ErrorIs(t, err, errNoStart)
}
