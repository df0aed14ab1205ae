// Package xmas holds the small geometry and grid toolkit shared by the
// daily solutions: integer points, direction enums and a dense 2-D grid.
package xmas

import (
	"fmt"
	"strconv"
	"strings"
)

// Point2D is an integer coordinate on a grid. Y grows downwards.
type Point2D struct {
	X, Y int
}

// Zero2D is the origin.
var Zero2D = Point2D{}

// P is shorthand for Point2D{x, y}.
func P(x, y int) Point2D {
	return Point2D{X: x, Y: y}
}

func (p Point2D) Add(o Point2D) Point2D {
	return Point2D{p.X + o.X, p.Y + o.Y}
}

func (p Point2D) Sub(o Point2D) Point2D {
	return Point2D{p.X - o.X, p.Y - o.Y}
}

// Mul multiplies both components by k.
func (p Point2D) Mul(k int) Point2D {
	return Point2D{p.X * k, p.Y * k}
}

// Scale multiplies componentwise.
func (p Point2D) Scale(o Point2D) Point2D {
	return Point2D{p.X * o.X, p.Y * o.Y}
}

// ManhattanMagnitude returns |x| + |y|.
func (p Point2D) ManhattanMagnitude() int {
	return abs(p.X) + abs(p.Y)
}

// ManhattanDistance returns the taxicab distance between p and towards.
func (p Point2D) ManhattanDistance(towards Point2D) int {
	return p.Sub(towards).ManhattanMagnitude()
}

// SqrMagnitude returns x² + y².
func (p Point2D) SqrMagnitude() int {
	return p.X*p.X + p.Y*p.Y
}

func (p Point2D) Max(o Point2D) Point2D {
	return Point2D{max(p.X, o.X), max(p.Y, o.Y)}
}

func (p Point2D) Min(o Point2D) Point2D {
	return Point2D{min(p.X, o.X), min(p.Y, o.Y)}
}

// Map applies f to both components.
func (p Point2D) Map(f func(int) int) Point2D {
	return Point2D{f(p.X), f(p.Y)}
}

// TryGetDirection reports the direction and length of an axis-aligned,
// non-zero vector. Diagonal and zero vectors report ok == false.
func (p Point2D) TryGetDirection() (dir Direction, length int, ok bool) {
	switch {
	case p.X == 0 && p.Y == 0:
		return Up, 0, false
	case p.X == 0:
		if p.Y > 0 {
			return Down, p.Y, true
		}
		return Up, -p.Y, true
	case p.Y == 0:
		if p.X > 0 {
			return Right, p.X, true
		}
		return Left, -p.X, true
	}
	return Up, 0, false
}

// TryGetDirectionTowards is TryGetDirection applied to target - p.
func (p Point2D) TryGetDirectionTowards(target Point2D) (Direction, int, bool) {
	return target.Sub(p).TryGetDirection()
}

func (p Point2D) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// ParsePoint2D parses "x,y". Whitespace around each component is ignored.
func ParsePoint2D(s string) (Point2D, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok || strings.Contains(ys, ",") {
		return Point2D{}, fmt.Errorf("%w: %q should have 2 segments", ErrInvalidPoint, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point2D{}, fmt.Errorf("%w: %w", ErrInvalidPoint, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point2D{}, fmt.Errorf("%w: %w", ErrInvalidPoint, err)
	}
	return Point2D{x, y}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
