// Command day01 runs the day 1 solution against ./input.txt.
package main

import (
	"aoc2025/internal/puzzle"
	"aoc2025/internal/solutions/day01"
)

func main() {
	puzzle.Main(day01.Day)
}
