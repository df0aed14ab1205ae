// Command day11 runs the day 11 solution against ./input.txt.
package main

import (
	"aoc2025/internal/puzzle"
	"aoc2025/internal/solutions/day11"
)

func main() {
	puzzle.Main(day11.Day)
}
