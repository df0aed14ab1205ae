// Package day04 solves "Printing Department": forklifts can reach a paper
// roll when fewer than four of its eight neighbours are rolls too.
package day04

import (
	"aoc2025/internal/puzzle"
	"aoc2025/internal/xmas"
)

const (
	roll  byte = '@'
	empty byte = '.'
)

var Day = puzzle.NewDay(4, "Printing Department", Part1, Part2)

func init() {
	puzzle.MustRegister(Day)
}

// Part1 counts the rolls that are accessible right away.
func Part1(input string) (int, error) {
	m, err := xmas.ParseByteMap(input)
	if err != nil {
		return 0, err
	}
	return len(Accessible(m)), nil
}

// Part2 keeps removing accessible rolls until none are left to remove.
func Part2(input string) (int, error) {
	m, err := xmas.ParseByteMap(input)
	if err != nil {
		return 0, err
	}

	removed := 0
	for {
		accessible := Accessible(m)
		if len(accessible) == 0 {
			return removed, nil
		}
		removed += len(accessible)
		for _, p := range accessible {
			m.SetTile(p, empty)
		}
	}
}

// Accessible lists the rolls with fewer than four rolls around them.
func Accessible(m *xmas.ByteMap) []xmas.Point2D {
	var points []xmas.Point2D
	for p, tile := range m.All() {
		if tile != roll {
			continue
		}
		neighbours := 0
		for _, d := range xmas.Directions8 {
			if t, ok := m.Tile(p.Add(d)); ok && t == roll {
				neighbours++
			}
		}
		if neighbours < 4 {
			points = append(points, p)
		}
	}
	return points
}
