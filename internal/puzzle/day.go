// Package puzzle defines what a day's solution looks like and how it is run.
//
// A day is a number, a title and one solver per part. Solvers take the raw
// input text and return a single integer answer. Days register themselves
// with the global Registry at init time; the standalone dayNN binaries and
// the xmas CLI both execute them through a Runner.
package puzzle

import (
	"fmt"
)

// Solver computes one part's answer from the puzzle input.
type Solver func(input string) (int, error)

// Part is one half of a day's puzzle.
type Part struct {
	Name  string
	Solve Solver
}

// Day bundles the solvers for a single puzzle.
type Day struct {
	Number int
	Title  string
	Parts  []Part
}

// FirstDay and LastDay bound the valid day numbers of an event.
const (
	FirstDay = 1
	LastDay  = 25
)

// Validate checks that the day is runnable.
func (d Day) Validate() error {
	if d.Number < FirstDay || d.Number > LastDay {
		return fmt.Errorf("%w: %d", ErrInvalidDay, d.Number)
	}
	if len(d.Parts) == 0 {
		return fmt.Errorf("%w: day %d", ErrNoParts, d.Number)
	}
	for i, p := range d.Parts {
		if p.Solve == nil {
			return fmt.Errorf("%w: day %d part %d", ErrNilSolver, d.Number, i+1)
		}
	}
	return nil
}

// Name returns e.g. "Day 01: Secret Entrance".
func (d Day) Name() string {
	if d.Title == "" {
		return fmt.Sprintf("Day %02d", d.Number)
	}
	return fmt.Sprintf("Day %02d: %s", d.Number, d.Title)
}

// Part returns part n, counting from 1.
func (d Day) Part(n int) (Part, error) {
	if n < 1 || n > len(d.Parts) {
		return Part{}, fmt.Errorf("%w: day %d has no part %d", ErrPartNotFound, d.Number, n)
	}
	return d.Parts[n-1], nil
}

// PartNumbers returns 1..len(Parts).
func (d Day) PartNumbers() []int {
	nums := make([]int, len(d.Parts))
	for i := range nums {
		nums[i] = i + 1
	}
	return nums
}

// NewDay builds a Day with parts named "Part 1", "Part 2", ...
func NewDay(number int, title string, solvers ...Solver) Day {
	parts := make([]Part, len(solvers))
	for i, s := range solvers {
		parts[i] = Part{Name: fmt.Sprintf("Part %d", i+1), Solve: s}
	}
	return Day{Number: number, Title: title, Parts: parts}
}
