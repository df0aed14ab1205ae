package puzzle

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommandRunsDay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	day := NewDay(7, "Laboratories",
		func(in string) (int, error) { return len(in), nil },
		constSolver(40),
	)

	cmd := NewCommand(day)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--input", path, "-p", "1"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "5")
	assert.NotContains(t, out.String(), "Part 2:")
	assert.Equal(t, "day07", cmd.Use)
}

func TestNewCommandMissingInput(t *testing.T) {
	cmd := NewCommand(NewDay(7, "", constSolver(1)))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-i", filepath.Join(t.TempDir(), "nope.txt")})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "failed to read input")
}
