package xmas

import (
	"fmt"
	"strconv"
	"strings"
)

// Point3D is an integer coordinate in space.
type Point3D struct {
	X, Y, Z int
}

// Zero3D is the origin.
var Zero3D = Point3D{}

func (p Point3D) Add(o Point3D) Point3D {
	return Point3D{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}

func (p Point3D) Sub(o Point3D) Point3D {
	return Point3D{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

func (p Point3D) Mul(k int) Point3D {
	return Point3D{p.X * k, p.Y * k, p.Z * k}
}

func (p Point3D) ManhattanMagnitude() int {
	return abs(p.X) + abs(p.Y) + abs(p.Z)
}

func (p Point3D) ManhattanDistance(towards Point3D) int {
	return p.Sub(towards).ManhattanMagnitude()
}

// SqrMagnitude returns x² + y² + z². It is the cheap way to order
// points by euclidean distance.
func (p Point3D) SqrMagnitude() int {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z
}

func (p Point3D) Max(o Point3D) Point3D {
	return Point3D{max(p.X, o.X), max(p.Y, o.Y), max(p.Z, o.Z)}
}

func (p Point3D) Min(o Point3D) Point3D {
	return Point3D{min(p.X, o.X), min(p.Y, o.Y), min(p.Z, o.Z)}
}

func (p Point3D) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}

// Point3DFromSlice builds a point from exactly three values.
func Point3DFromSlice(v []int) (Point3D, error) {
	if len(v) != 3 {
		return Point3D{}, fmt.Errorf("%w: should have 3 segments for Point3D, got %d", ErrInvalidPoint, len(v))
	}
	return Point3D{v[0], v[1], v[2]}, nil
}

// ParsePoint3D parses "x,y,z". Each segment is trimmed before parsing.
func ParsePoint3D(s string) (Point3D, error) {
	segments := strings.Split(s, ",")
	if len(segments) != 3 {
		return Point3D{}, fmt.Errorf("%w: should have 3 segments for Point3D, got %q", ErrInvalidPoint, s)
	}
	v := make([]int, 3)
	for i, seg := range segments {
		n, err := strconv.Atoi(strings.TrimSpace(seg))
		if err != nil {
			return Point3D{}, fmt.Errorf("%w: couldn't parse ints: %w", ErrInvalidPoint, err)
		}
		v[i] = n
	}
	return Point3DFromSlice(v)
}
