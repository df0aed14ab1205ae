// Command day06 runs the day 6 solution against ./input.txt.
package main

import (
	"aoc2025/internal/puzzle"
	"aoc2025/internal/solutions/day06"
)

func main() {
	puzzle.Main(day06.Day)
}
