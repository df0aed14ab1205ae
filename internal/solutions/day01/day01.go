// Package day01 solves "Secret Entrance": a safe dial numbered 0..99 is
// turned left and right, and the password counts how often it shows 0.
package day01

import (
	"fmt"
	"strconv"

	"aoc2025/internal/puzzle"
	"aoc2025/internal/xmas"
)

const (
	dialStart = 50
	dialSize  = 100
)

var Day = puzzle.NewDay(1, "Secret Entrance", Part1, Part2)

func init() {
	puzzle.MustRegister(Day)
}

// Rotation is one "L68" / "R48" instruction. Left turns are negative.
type Rotation struct {
	Sign   int
	Clicks int
}

// ParseRotations reads one "L68" or "R48" rotation per line.
func ParseRotations(input string) ([]Rotation, error) {
	lines := puzzle.Lines(input)
	rotations := make([]Rotation, 0, len(lines))
	for i, line := range lines {
		if len(line) < 2 {
			return nil, fmt.Errorf("line %d: rotation too short: %q", i+1, line)
		}
		var sign int
		switch line[0] {
		case 'L':
			sign = -1
		case 'R':
			sign = 1
		default:
			return nil, fmt.Errorf("line %d: invalid direction %q", i+1, line[0])
		}
		clicks, err := strconv.Atoi(line[1:])
		if err != nil || clicks < 0 {
			return nil, fmt.Errorf("line %d: invalid click count %q", i+1, line[1:])
		}
		rotations = append(rotations, Rotation{Sign: sign, Clicks: clicks})
	}
	return rotations, nil
}

// Part1 counts the rotations that leave the dial on 0.
func Part1(input string) (int, error) {
	rotations, err := ParseRotations(input)
	if err != nil {
		return 0, err
	}
	return Password(rotations, dialStart, dialSize), nil
}

// Part2 counts every click that lands on 0, including passes during a
// rotation.
func Part2(input string) (int, error) {
	rotations, err := ParseRotations(input)
	if err != nil {
		return 0, err
	}
	return ClickPassword(rotations, dialStart, dialSize), nil
}

// Password counts the rotations that leave the dial pointing at 0.
func Password(rotations []Rotation, start, size int) int {
	pos, count := start, 0
	for _, r := range rotations {
		pos = xmas.WrapVal(pos+r.Sign*r.Clicks, size)
		if pos == 0 {
			count++
		}
	}
	return count
}

// ClickPassword counts every click that lands on 0, including full turns.
func ClickPassword(rotations []Rotation, start, size int) int {
	pos, count := start, 0
	for _, r := range rotations {
		// each full turn passes 0 exactly once
		count += r.Clicks / size
		next := xmas.WrapVal(pos+r.Sign*(r.Clicks%size), size)

		if pos != 0 && (next == 0 || (r.Sign > 0 && next < pos) || (r.Sign < 0 && next > pos)) {
			count++
		}
		pos = next
	}
	return count
}
