// Package day06 solves "Trash Compactor": a worksheet of arithmetic
// problems laid out in columns, with the operator on the last row.
package day06

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"aoc2025/internal/puzzle"
)

var Day = puzzle.NewDay(6, "Trash Compactor", Part1, Part2)

func init() {
	puzzle.MustRegister(Day)
}

var errNoOperands = errors.New("worksheet needs operand rows and an operator row")

// Operator is the symbol in a problem's last row.
type Operator byte

const (
	Add Operator = '+'
	Mul Operator = '*'
)

// Problem is one column group of the worksheet.
type Problem struct {
	Op   Operator
	Nums []int
}

// Solve adds or multiplies the numbers.
func (p Problem) Solve() int {
	if p.Op == Mul {
		acc := 1
		for _, n := range p.Nums {
			acc *= n
		}
		return acc
	}
	acc := 0
	for _, n := range p.Nums {
		acc += n
	}
	return acc
}

func parseOperator(s string) (Operator, error) {
	switch s {
	case "+":
		return Add, nil
	case "*":
		return Mul, nil
	}
	return 0, fmt.Errorf("unknown operator %q", s)
}

// Part1 reads every whitespace separated column as one problem.
func Part1(input string) (int, error) {
	lines := puzzle.Lines(input)
	if len(lines) < 2 {
		return 0, errNoOperands
	}

	ops := strings.Fields(lines[len(lines)-1])
	problems := make([]Problem, len(ops))
	for i, s := range ops {
		op, err := parseOperator(s)
		if err != nil {
			return 0, fmt.Errorf("column %d: %w", i+1, err)
		}
		problems[i].Op = op
	}

	for row, line := range lines[:len(lines)-1] {
		fields := strings.Fields(line)
		if len(fields) != len(problems) {
			return 0, fmt.Errorf("row %d: %d numbers for %d problems", row+1, len(fields), len(problems))
		}
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return 0, fmt.Errorf("row %d: %w", row+1, err)
			}
			problems[i].Nums = append(problems[i].Nums, n)
		}
	}
	return total(problems), nil
}

// Part2 reads the worksheet the cephalopod way: each character column is a
// number written top to bottom and problems are separated by blank columns.
func Part2(input string) (int, error) {
	lines := puzzle.Lines(input)
	if len(lines) < 2 {
		return 0, errNoOperands
	}

	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	grid := make([]string, len(lines))
	for i, l := range lines {
		grid[i] = l + strings.Repeat(" ", width-len(l))
	}
	digits, opRow := grid[:len(grid)-1], grid[len(grid)-1]

	var problems []Problem
	var current *Problem
	for col := range width {
		if isBlankColumn(grid, col) {
			current = nil
			continue
		}
		if current == nil {
			problems = append(problems, Problem{Op: Add})
			current = &problems[len(problems)-1]
			if c := opRow[col]; c != ' ' {
				op, err := parseOperator(string(c))
				if err != nil {
					return 0, fmt.Errorf("column %d: %w", col+1, err)
				}
				current.Op = op
			}
		}

		n, ok := 0, false
		for _, row := range digits {
			c := row[col]
			if c == ' ' {
				continue
			}
			if c < '0' || c > '9' {
				return 0, fmt.Errorf("column %d: unexpected %q", col+1, c)
			}
			n, ok = n*10+int(c-'0'), true
		}
		if ok {
			current.Nums = append(current.Nums, n)
		}
	}
	return total(problems), nil
}

func isBlankColumn(grid []string, col int) bool {
	for _, row := range grid {
		if row[col] != ' ' {
			return false
		}
	}
	return true
}

func total(problems []Problem) int {
	sum := 0
	for _, p := range problems {
		sum += p.Solve()
	}
	return sum
}
