// Package day05 solves "Cafeteria": ingredient IDs are fresh when they fall
// inside any of the inclusive fresh ranges.
package day05

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"aoc2025/internal/puzzle"
)

var Day = puzzle.NewDay(5, "Cafeteria", Part1, Part2)

func init() {
	puzzle.MustRegister(Day)
}

var errNoSeparator = errors.New("expected a blank line between ranges and IDs")

// Range is an inclusive span of fresh ingredient IDs.
type Range struct {
	From, To int
}

func (r Range) Contains(v int) bool {
	return v >= r.From && v <= r.To
}

// Database is the parsed input: the fresh ranges and the available IDs.
type Database struct {
	Fresh []Range
	IDs   []int
}

// Parse reads the fresh ranges, a blank line, then one ID per line.
func Parse(input string) (Database, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) != 2 {
		return Database{}, errNoSeparator
	}

	var db Database
	for _, line := range puzzle.Lines(blocks[0]) {
		from, to, ok := strings.Cut(line, "-")
		if !ok {
			return Database{}, fmt.Errorf("range %q: missing '-'", line)
		}
		a, err := strconv.Atoi(from)
		if err != nil {
			return Database{}, fmt.Errorf("range %q: %w", line, err)
		}
		b, err := strconv.Atoi(to)
		if err != nil {
			return Database{}, fmt.Errorf("range %q: %w", line, err)
		}
		if b < a {
			return Database{}, fmt.Errorf("range %q: end before start", line)
		}
		db.Fresh = append(db.Fresh, Range{a, b})
	}
	for _, line := range puzzle.Lines(blocks[1]) {
		id, err := strconv.Atoi(line)
		if err != nil {
			return Database{}, fmt.Errorf("id %q: %w", line, err)
		}
		db.IDs = append(db.IDs, id)
	}
	return db, nil
}

// Part1 counts the available IDs that are fresh.
func Part1(input string) (int, error) {
	db, err := Parse(input)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, id := range db.IDs {
		if slices.ContainsFunc(db.Fresh, func(r Range) bool { return r.Contains(id) }) {
			count++
		}
	}
	return count, nil
}

// Part2 counts every ID the fresh ranges cover, ignoring the ID list.
func Part2(input string) (int, error) {
	db, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range Merge(db.Fresh) {
		total += r.To - r.From + 1
	}
	return total, nil
}

// Merge returns the union of ranges as sorted, disjoint, non-adjacent ranges.
func Merge(ranges []Range) []Range {
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b Range) int { return cmp.Compare(a.From, b.From) })

	var merged []Range
	for _, r := range sorted {
		if n := len(merged); n > 0 && r.From <= merged[n-1].To+1 {
			merged[n-1].To = max(merged[n-1].To, r.To)
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
