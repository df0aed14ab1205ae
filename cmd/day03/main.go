// Command day03 runs the day 3 solution against ./input.txt.
package main

import (
	"aoc2025/internal/puzzle"
	"aoc2025/internal/solutions/day03"
)

func main() {
	puzzle.Main(day03.Day)
}
