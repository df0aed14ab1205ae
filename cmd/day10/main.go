// Command day10 runs the day 10 solution against ./input.txt.
package main

import (
	"aoc2025/internal/puzzle"
	"aoc2025/internal/solutions/day10"
)

func main() {
	puzzle.Main(day10.Day)
}
