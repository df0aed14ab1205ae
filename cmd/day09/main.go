// Command day09 runs the day 9 solution against ./input.txt.
package main

import (
	"aoc2025/internal/puzzle"
	"aoc2025/internal/solutions/day09"
)

func main() {
	puzzle.Main(day09.Day)
}
