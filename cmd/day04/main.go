// Command day04 runs the day 4 solution against ./input.txt.
package main

import (
	"aoc2025/internal/puzzle"
	"aoc2025/internal/solutions/day04"
)

func main() {
	puzzle.Main(day04.Day)
}
