package day09

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
	assert.Equal(t, 50, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(readTestInput(t))
	require.NoError(t, err)
	assert.Equal(t, 24, got)
}

func TestFloorInside(t *testing.T) {
	tiles, err := ParseTiles(readTestInput(t))
	require.NoError(t, err)
	floor, err := NewFloor(tiles)
	require.NoError(t, err)

	assert.True(t, floor.Inside(xmas.P(9, 5), xmas.P(2, 3)))
	assert.True(t, floor.Inside(xmas.P(7, 3), xmas.P(11, 1)))
	assert.False(t, floor.Inside(xmas.P(2, 5), xmas.P(11, 1)))
}

func TestNewAxis(t *testing.T) {
	a := newAxis([]int{5, 2, 3, 9, 5})
	// pad, 2, 3, gap, 5, gap, 9, pad
	assert.Equal(t, 8, a.bands)
	assert.Equal(t, map[int]int{2: 1, 3: 2, 5: 4, 9: 6}, a.index)
}

func TestErrors(t *testing.T) {
	_, err := Part1("1,1\n")
	assert.ErrorIs(t, err, errTooFewTiles)

	_, err = Part2("1,1\n3,3\n")
	assert.ErrorContains(t, err, "same row or column")
}
