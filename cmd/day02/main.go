// Command day02 runs the day 2 solution against ./input.txt.
package main

import (
	"aoc2025/internal/puzzle"
	"aoc2025/internal/solutions/day02"
)

func main() {
	puzzle.Main(day02.Day)
}
