// Package day09 solves "Movie Theater": pick two red tiles as opposite
// corners of the largest rectangle, first anywhere and then only inside the
// red/green loop traced through the red tiles in order.
package day09

import (
	"errors"
	"fmt"
	"slices"

	"aoc2025/internal/puzzle"
	"aoc2025/internal/xmas"
)

const (
	open    byte = '.'
	edge    byte = '#'
	outside byte = 'o'
)

var Day = puzzle.NewDay(9, "Movie Theater", Part1, Part2)

func init() {
	puzzle.MustRegister(Day)
}

var errTooFewTiles = errors.New("need at least two red tiles")

// ParseTiles reads the red tiles in loop order.
func ParseTiles(input string) ([]xmas.Point2D, error) {
	lines := puzzle.Lines(input)
	tiles := make([]xmas.Point2D, 0, len(lines))
	for i, line := range lines {
		p, err := xmas.ParsePoint2D(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		tiles = append(tiles, p)
	}
	if len(tiles) < 2 {
		return nil, errTooFewTiles
	}
	return tiles, nil
}

// Area counts the tiles of the rectangle with corners a and b, inclusive.
func Area(a, b xmas.Point2D) int {
	return (xmas.AbsDiff(a.X, b.X) + 1) * (xmas.AbsDiff(a.Y, b.Y) + 1)
}

// Part1 finds the largest rectangle with red tiles at opposite corners.
func Part1(input string) (int, error) {
	tiles, err := ParseTiles(input)
	if err != nil {
		return 0, err
	}
	largest := 0
	for i, a := range tiles {
		for _, b := range tiles[i+1:] {
			largest = max(largest, Area(a, b))
		}
	}
	return largest, nil
}

// Part2 is Part1 restricted to rectangles inside the red and green loop.
func Part2(input string) (int, error) {
	tiles, err := ParseTiles(input)
	if err != nil {
		return 0, err
	}
	floor, err := NewFloor(tiles)
	if err != nil {
		return 0, err
	}

	largest := 0
	for i, a := range tiles {
		for _, b := range tiles[i+1:] {
			if area := Area(a, b); area > largest && floor.Inside(a, b) {
				largest = area
			}
		}
	}
	return largest, nil
}

// axis maps real coordinates onto compressed bands. Every distinct corner
// coordinate gets its own band and each gap between two of them collapses
// into one band. A padding band on both ends keeps the outside connected.
type axis struct {
	index map[int]int
	bands int
}

func newAxis(values []int) axis {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	a := axis{index: make(map[int]int, len(sorted)), bands: 1}
	for i, v := range sorted {
		a.index[v] = a.bands
		a.bands++
		if i+1 < len(sorted) && sorted[i+1]-v > 1 {
			a.bands++
		}
	}
	a.bands++
	return a
}

// Floor is the compressed theater floor with everything outside the loop
// flood filled, plus a prefix sum of outside cells for O(1) rectangle checks.
type Floor struct {
	xs, ys  axis
	grid    *xmas.ByteMap
	outside *xmas.Map2D[int]
}

// NewFloor compresses the tile coordinates and floods the outside.
func NewFloor(tiles []xmas.Point2D) (*Floor, error) {
	xsv, ysv := make([]int, len(tiles)), make([]int, len(tiles))
	for i, t := range tiles {
		xsv[i], ysv[i] = t.X, t.Y
	}
	f := &Floor{xs: newAxis(xsv), ys: newAxis(ysv)}
	f.grid = xmas.NewFilledMap2D(xmas.P(f.xs.bands, f.ys.bands), open)

	for i, a := range tiles {
		b := tiles[(i+1)%len(tiles)]
		if a.X != b.X && a.Y != b.Y {
			return nil, fmt.Errorf("tiles %s and %s are not on the same row or column", a, b)
		}
		from, to := f.compress(a), f.compress(b)
		lo, hi := from.Min(to), from.Max(to)
		for y := lo.Y; y <= hi.Y; y++ {
			for x := lo.X; x <= hi.X; x++ {
				f.grid.SetTile(xmas.P(x, y), edge)
			}
		}
	}

	f.floodOutside()
	f.buildPrefix()
	return f, nil
}

func (f *Floor) compress(p xmas.Point2D) xmas.Point2D {
	return xmas.P(f.xs.index[p.X], f.ys.index[p.Y])
}

func (f *Floor) floodOutside() {
	queue := []xmas.Point2D{xmas.Zero2D}
	f.grid.SetTile(xmas.Zero2D, outside)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range xmas.Directions {
			n := p.Add(d.Point())
			if t, ok := f.grid.Tile(n); ok && t == open {
				f.grid.SetTile(n, outside)
				queue = append(queue, n)
			}
		}
	}
}

// buildPrefix fills outside[x+1, y+1] with the number of outside cells in
// the compressed rectangle [0..x] x [0..y].
func (f *Floor) buildPrefix() {
	w, h := f.grid.Width(), f.grid.Height()
	f.outside = xmas.NewMap2D[int](xmas.P(w+1, h+1))
	for y := range h {
		for x := range w {
			v := 0
			if t, _ := f.grid.Tile(xmas.P(x, y)); t == outside {
				v = 1
			}
			up, _ := f.outside.Tile(xmas.P(x+1, y))
			left, _ := f.outside.Tile(xmas.P(x, y+1))
			diag, _ := f.outside.Tile(xmas.P(x, y))
			f.outside.SetTile(xmas.P(x+1, y+1), v+up+left-diag)
		}
	}
}

// Inside reports whether the rectangle with red corners a and b avoids
// every tile outside the loop.
func (f *Floor) Inside(a, b xmas.Point2D) bool {
	ca, cb := f.compress(a), f.compress(b)
	lo, hi := ca.Min(cb), ca.Max(cb)

	sum := func(x, y int) int {
		v, _ := f.outside.Tile(xmas.P(x, y))
		return v
	}
	n := sum(hi.X+1, hi.Y+1) - sum(lo.X, hi.Y+1) - sum(hi.X+1, lo.Y) + sum(lo.X, lo.Y)
	return n == 0
}

// String draws the compressed floor; useful when debugging a new input.
func (f *Floor) String() string {
	return f.grid.String()
}
