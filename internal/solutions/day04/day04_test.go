package day04

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
	assert.Equal(t, 13, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(readTestInput(t))
	require.NoError(t, err)
	assert.Equal(t, 43, got)
}

func TestAccessibleCorners(t *testing.T) {
	m, err := xmas.ParseByteMap("@@@\n@@@\n@@@\n")
	require.NoError(t, err)

	got := Accessible(m)
	assert.ElementsMatch(t, []xmas.Point2D{
		xmas.P(0, 0), xmas.P(2, 0), xmas.P(0, 2), xmas.P(2, 2),
	}, got)
}

func TestEmptyInput(t *testing.T) {
	_, err := Part1("")
	assert.ErrorIs(t, err, xmas.ErrEmptyMap)
}
