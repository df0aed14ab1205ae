// Package day03 solves "Lobby": from each bank of battery joltage digits,
// switch on k batteries (in order) to form the largest possible number.
package day03

import (
	"fmt"

	"aoc2025/internal/puzzle"
)

var Day = puzzle.NewDay(3, "Lobby", Part1, Part2)

func init() {
	puzzle.MustRegister(Day)
}

// Part1 sums the largest two-battery joltage of each bank.
func Part1(input string) (int, error) {
	return totalJoltage(input, 2)
}

// Part2 sums the largest twelve-battery joltage of each bank.
func Part2(input string) (int, error) {
	return totalJoltage(input, 12)
}

func totalJoltage(input string, k int) (int, error) {
	total := 0
	for i, bank := range puzzle.Lines(input) {
		j, err := MaxJoltage(bank, k)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += j
	}
	return total, nil
}

// MaxJoltage greedily picks, for each output digit, the leftmost largest
// digit that still leaves enough digits after it.
func MaxJoltage(bank string, k int) (int, error) {
	if len(bank) < k {
		return 0, fmt.Errorf("bank %q shorter than %d digits", bank, k)
	}
	for _, c := range []byte(bank) {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("bank %q: invalid digit %q", bank, c)
		}
	}

	joltage, from := 0, 0
	for picked := range k {
		end := len(bank) - (k - picked - 1)
		best := from
		for i := from + 1; i < end; i++ {
			if bank[i] > bank[best] {
				best = i
			}
		}
		joltage = joltage*10 + int(bank[best]-'0')
		from = best + 1
	}
	return joltage, nil
}
