// Command day05 runs the day 5 solution against ./input.txt.
package main

import (
	"aoc2025/internal/puzzle"
	"aoc2025/internal/solutions/day05"
)

func main() {
	puzzle.Main(day05.Day)
}
