// Command day07 runs the day 7 solution against ./input.txt.
package main

import (
	"aoc2025/internal/puzzle"
	"aoc2025/internal/solutions/day07"
)

func main() {
	puzzle.Main(day07.Day)
}
