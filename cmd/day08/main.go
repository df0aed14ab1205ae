// Command day08 runs the day 8 solution against ./input.txt.
package main

import (
	"aoc2025/internal/puzzle"
	"aoc2025/internal/solutions/day08"
)

func main() {
	puzzle.Main(day08.Day)
}
