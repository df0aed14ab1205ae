package solutions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aoc2025/internal/puzzle"
)

func TestEveryDayIsRegistered(t *testing.T) {
	days := puzzle.Global().All()
	if !assert.Len(t, days, 11) {
		return
	}
	for i, d := range days {
		assert.Equal(t, i+1, d.Number)
		assert.NotEmpty(t, d.Title, "day %d", d.Number)
		assert.Len(t, d.Parts, 2, "day %d", d.Number)
	}
}
