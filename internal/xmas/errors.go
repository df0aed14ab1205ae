package xmas

import (
	"errors"
	"fmt"
)

// Parsing errors.
var (
	// ErrInvalidPoint is returned when a point literal has the wrong number
	// of segments or a segment is not an integer.
	ErrInvalidPoint = errors.New("invalid point")

	// ErrEmptyMap is returned when parsing an empty string into a Map2D.
	ErrEmptyMap = errors.New("can't parse an empty string to a Map2D")

	// ErrNotADirection is returned when a vector is not axis-aligned.
	ErrNotADirection = errors.New("cannot convert vector to direction")
)

// InconsistentRowError is returned when a row's width differs from the
// width established by the first row.
type InconsistentRowError struct {
	Current  int
	Expected int
}

func (e *InconsistentRowError) Error() string {
	return fmt.Sprintf("inconsistent row size. Current: %d Expected: %d", e.Current, e.Expected)
}

// TileParseError wraps a tile parser failure with the tile's position.
type TileParseError struct {
	Point Point2D
	Err   error
}

func (e *TileParseError) Error() string {
	return fmt.Sprintf("tile error @ %s: %v", e.Point, e.Err)
}

func (e *TileParseError) Unwrap() error {
	return e.Err
}
