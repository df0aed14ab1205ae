// Package day02 solves "Gift Shop": sum the product IDs in the given ranges
// whose digits are a repeated pattern.
package day02

import (
	"fmt"
	"strconv"
	"strings"

	"aoc2025/internal/puzzle"
)

var Day = puzzle.NewDay(2, "Gift Shop", Part1, Part2)

func init() {
	puzzle.MustRegister(Day)
}

// Range is an inclusive ID interval.
type Range struct {
	From, To int
}

// ParseRanges reads comma separated "a-b" ID ranges.
func ParseRanges(input string) ([]Range, error) {
	var ranges []Range
	for _, field := range strings.Split(strings.TrimSpace(input), ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		from, to, ok := strings.Cut(field, "-")
		if !ok {
			return nil, fmt.Errorf("range %q: missing '-'", field)
		}
		a, err := strconv.Atoi(from)
		if err != nil {
			return nil, fmt.Errorf("range %q: %w", field, err)
		}
		b, err := strconv.Atoi(to)
		if err != nil {
			return nil, fmt.Errorf("range %q: %w", field, err)
		}
		if b < a {
			return nil, fmt.Errorf("range %q: end before start", field)
		}
		ranges = append(ranges, Range{a, b})
	}
	return ranges, nil
}

// Part1 sums the IDs made of one digit sequence repeated exactly twice.
func Part1(input string) (int, error) {
	return sumInvalid(input, IsDoubled)
}

// Part2 sums the IDs made of one digit sequence repeated two or more times.
func Part2(input string) (int, error) {
	return sumInvalid(input, IsRepeated)
}

func sumInvalid(input string, invalid func(string) bool) (int, error) {
	ranges, err := ParseRanges(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, r := range ranges {
		for id := r.From; id <= r.To; id++ {
			if invalid(strconv.Itoa(id)) {
				sum += id
			}
		}
	}
	return sum, nil
}

// IsDoubled reports whether id is some digit string written twice.
func IsDoubled(id string) bool {
	n := len(id)
	return n%2 == 0 && id[:n/2] == id[n/2:]
}

// IsRepeated reports whether id is some digit string written two or more times.
func IsRepeated(id string) bool {
	n := len(id)
	for size := 1; size <= n/2; size++ {
		if n%size != 0 {
			continue
		}
		if strings.Repeat(id[:size], n/size) == id {
			return true
		}
	}
	return false
}
