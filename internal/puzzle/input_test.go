package puzzle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInputNormalisesCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\r\nb\r\n"), 0644))

	got, err := ReadInput(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", got)
}

func TestReadInputMissing(t *testing.T) {
	_, err := ReadInput(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"12 ", " 3"}, Lines("12 \n 3\n"))
	assert.Equal(t, []string{"x"}, Lines("x"))
	assert.Nil(t, Lines(""))
	assert.Nil(t, Lines("\n"))
}

func TestBlocks(t *testing.T) {
	assert.Equal(t, []string{"1-2\n3-4", "5\n6"}, Blocks("1-2\n3-4\n\n5\n6\n"))
	assert.Nil(t, Blocks("\n\n"))
}
