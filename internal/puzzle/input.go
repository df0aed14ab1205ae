package puzzle

import (
	"fmt"
	"os"
	"strings"
)

// DefaultInput is the file each day binary reads when no path is given.
const DefaultInput = "input.txt"

// ReadInput loads a puzzle input, normalising CRLF line endings.
func ReadInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

// Lines splits input into lines, dropping one trailing newline. Spaces are
// kept since some worksheets are column aligned.
func Lines(input string) []string {
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Blocks splits input on blank lines.
func Blocks(input string) []string {
	input = strings.Trim(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n\n")
}
