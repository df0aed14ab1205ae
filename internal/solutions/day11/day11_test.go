package day11

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readInput(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return string(data)
}

func TestPart1(t *testing.T) {
	got, err := Part1(readInput(t, "test.txt"))
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(readInput(t, "test2.txt"))
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestPaths(t *testing.T) {
	n, err := ParseNetwork(readInput(t, "test2.txt"))
	require.NoError(t, err)

	tests := []struct {
		from, to string
		want     int
	}{
		{"svr", "out", 8},
		{"svr", "fft", 1},
		{"fft", "dac", 1},
		{"dac", "fft", 0},
		{"out", "svr", 0},
	}
	for _, tt := range tests {
		got, err := n.Paths(tt.from, tt.to)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s -> %s", tt.from, tt.to)
	}

	_, err = n.Paths("you", "out")
	assert.ErrorContains(t, err, "unknown device")
}

func TestRepeatedOutputsCountTwice(t *testing.T) {
	got, err := Part1("you: aaa aaa\naaa: out\n")
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = Part1("you: aaa bbb\naaa: out out\nbbb: out\n")
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestParseNetworkErrors(t *testing.T) {
	_, err := ParseNetwork("aaa bbb\n")
	assert.Error(t, err)

	_, err = ParseNetwork("aaa: aaa\n")
	assert.ErrorContains(t, err, "feeds itself")

	_, err = ParseNetwork("aaa: bbb\nbbb: aaa\n")
	assert.ErrorContains(t, err, "loop")
}
