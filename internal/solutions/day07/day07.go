// Package day07 solves "Laboratories": a tachyon beam enters at S and
// travels down; every splitter (^) it hits sends it left and right.
package day07

import (
	"errors"
	"maps"
	"slices"

	"aoc2025/internal/puzzle"
	"aoc2025/internal/xmas"
)

const (
	start    byte = 'S'
	splitter byte = '^'
	beam     byte = '|'
)

var Day = puzzle.NewDay(7, "Laboratories", Part1, Part2)

func init() {
	puzzle.MustRegister(Day)
}

var errNoStart = errors.New("no beam start 'S' in manifold")

// Manifold is the outcome of sending a beam through the grid.
type Manifold struct {
	Splits    int // splitters that were hit at least once
	Timelines int // distinct beam paths that exit the bottom or sides
	Path      *xmas.ByteMap
}

// Simulate moves the beam row by row, tracking how many timelines occupy
// each column. Beams leaving the grid sideways end their timeline there.
func Simulate(m *xmas.ByteMap) (Manifold, error) {
	origin, ok := xmas.Find(m, start)
	if !ok {
		return Manifold{}, errNoStart
	}

	path := m.Clone()
	res := Manifold{Path: path}
	beams := map[int]int{origin.X: 1}
	for y := origin.Y + 1; y < m.Height(); y++ {
		next := make(map[int]int, len(beams))
		for _, x := range slices.Sorted(maps.Keys(beams)) {
			n := beams[x]
			tile, _ := m.Tile(xmas.P(x, y))
			if tile != splitter {
				next[x] += n
				path.SetTile(xmas.P(x, y), beam)
				continue
			}
			res.Splits++
			for _, nx := range []int{x - 1, x + 1} {
				if nx < 0 || nx >= m.Width() {
					res.Timelines += n
					continue
				}
				next[nx] += n
				path.SetTile(xmas.P(nx, y), beam)
			}
		}
		beams = next
	}

	for _, n := range beams {
		res.Timelines += n
	}
	return res, nil
}

func solve(input string) (Manifold, error) {
	m, err := xmas.ParseByteMap(input)
	if err != nil {
		return Manifold{}, err
	}
	return Simulate(m)
}

// Part1 counts how many times the beam is split.
func Part1(input string) (int, error) {
	res, err := solve(input)
	return res.Splits, err
}

// Part2 counts the timelines of a single particle taking either branch at
// every splitter.
func Part2(input string) (int, error) {
	res, err := solve(input)
	return res.Timelines, err
}
