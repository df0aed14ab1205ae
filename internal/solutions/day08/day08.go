// Package day08 solves "Playground": junction boxes hang in 3-D space and
// get wired together closest pair first, forming circuits.
package day08

import (
	"errors"
	"fmt"
	"slices"

	"aoc2025/internal/puzzle"
	"aoc2025/internal/xmas"
)

// Connections is how many closest pairs part 1 wires up.
const Connections = 1000

var Day = puzzle.NewDay(8, "Playground", Part1, Part2)

func init() {
	puzzle.MustRegister(Day)
}

var errTooFewJunctions = errors.New("need at least two junction boxes")

// Pair indexes two junction boxes.
type Pair struct {
	A, B int
}

// ParseJunctions reads one "x,y,z" junction box per line.
func ParseJunctions(input string) ([]xmas.Point3D, error) {
	lines := puzzle.Lines(input)
	junctions := make([]xmas.Point3D, 0, len(lines))
	for i, line := range lines {
		p, err := xmas.ParsePoint3D(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		junctions = append(junctions, p)
	}
	return junctions, nil
}

// ClosestPairs returns every pair ordered by squared distance. Ties keep
// index order.
func ClosestPairs(junctions []xmas.Point3D) []Pair {
	keyed := make([]xmas.Keyed[Pair, int], 0, len(junctions)*(len(junctions)-1)/2)
	for i := range junctions {
		for j := i + 1; j < len(junctions); j++ {
			d := junctions[i].Sub(junctions[j]).SqrMagnitude()
			keyed = append(keyed, xmas.NewKeyed(Pair{i, j}, d))
		}
	}
	slices.SortStableFunc(keyed, xmas.CompareKeyed)

	pairs := make([]Pair, len(keyed))
	for i, k := range keyed {
		pairs[i] = k.Value
	}
	return pairs
}

// Part1 multiplies the three largest circuits after Connections pairs.
func Part1(input string) (int, error) {
	return CircuitProduct(input, Connections)
}

// CircuitProduct wires the n closest pairs and multiplies the sizes of the
// three largest circuits.
func CircuitProduct(input string, n int) (int, error) {
	junctions, err := ParseJunctions(input)
	if err != nil {
		return 0, err
	}
	if len(junctions) < 2 {
		return 0, errTooFewJunctions
	}

	pairs := ClosestPairs(junctions)
	circuits := xmas.NewDisjointSet(len(junctions))
	for _, p := range pairs[:min(n, len(pairs))] {
		circuits.Union(p.A, p.B)
	}

	product := 1
	for _, size := range circuits.ComponentSizes()[:min(3, circuits.Components())] {
		product *= size
	}
	return product, nil
}

// Part2 keeps wiring until everything is one circuit and multiplies the X
// coordinates of the last pair joined.
func Part2(input string) (int, error) {
	junctions, err := ParseJunctions(input)
	if err != nil {
		return 0, err
	}
	if len(junctions) < 2 {
		return 0, errTooFewJunctions
	}

	circuits := xmas.NewDisjointSet(len(junctions))
	for _, p := range ClosestPairs(junctions) {
		if circuits.Union(p.A, p.B) && circuits.Components() == 1 {
			return junctions[p.A].X * junctions[p.B].X, nil
		}
	}
	return 0, fmt.Errorf("junctions never formed a single circuit")
}
