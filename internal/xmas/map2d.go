package xmas

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Map2D is a fixed-size rectangular grid of tiles stored row-major.
// Access outside the grid never panics: reads report ok == false and
// writes are ignored.
type Map2D[T any] struct {
	tiles  []T
	width  int
	height int
}

// ByteMap is the common case of a grid parsed straight from ASCII input.
type ByteMap = Map2D[byte]

// CharMap is a grid of runes for inputs that are not plain ASCII.
type CharMap = Map2D[rune]

// NewMap2D returns a grid of the given size holding zero-valued tiles.
func NewMap2D[T any](size Point2D) *Map2D[T] {
	w, h := max(size.X, 0), max(size.Y, 0)
	return &Map2D[T]{
		tiles:  make([]T, w*h),
		width:  w,
		height: h,
	}
}

// NewFilledMap2D returns a grid of the given size with every tile set to tile.
func NewFilledMap2D[T any](size Point2D, tile T) *Map2D[T] {
	m := NewMap2D[T](size)
	for i := range m.tiles {
		m.tiles[i] = tile
	}
	return m
}

// ParseMap2D builds a grid from newline separated rows, converting each
// rune with parse. All rows must have the same width.
func ParseMap2D[T any](s string, parse func(r rune) (T, error)) (*Map2D[T], error) {
	lines, err := splitRows(s)
	if err != nil {
		return nil, err
	}

	m := &Map2D[T]{tiles: make([]T, 0, len(s))}
	for y, line := range lines {
		row := make([]T, 0, len(line))
		x := 0
		for _, r := range line {
			tile, err := parse(r)
			if err != nil {
				return nil, &TileParseError{Point: Point2D{x, y}, Err: err}
			}
			row = append(row, tile)
			x++
		}
		if err := m.AddRow(row); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ParseByteMap builds a grid with one tile per input byte.
func ParseByteMap(s string) (*ByteMap, error) {
	lines, err := splitRows(s)
	if err != nil {
		return nil, err
	}

	m := &ByteMap{tiles: make([]byte, 0, len(s))}
	for _, line := range lines {
		if err := m.AddRow([]byte(line)); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ParseCharMap builds a grid with one tile per rune.
func ParseCharMap(s string) (*CharMap, error) {
	return ParseMap2D(s, func(r rune) (rune, error) { return r, nil })
}

func splitRows(s string) ([]string, error) {
	if s == "" {
		return nil, ErrEmptyMap
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}

// AddRow appends a row. The first row fixes the grid width.
func (m *Map2D[T]) AddRow(row []T) error {
	if m.height == 0 {
		m.width = len(row)
	} else if len(row) != m.width {
		return &InconsistentRowError{Current: len(row), Expected: m.width}
	}
	m.tiles = append(m.tiles, row...)
	m.height++
	return nil
}

func (m *Map2D[T]) IsInside(p Point2D) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < m.width && p.Y < m.height
}

// Index returns the position of p in the backing slice.
func (m *Map2D[T]) Index(p Point2D) (int, bool) {
	if !m.IsInside(p) {
		return 0, false
	}
	return p.X + p.Y*m.width, true
}

// Tile returns the tile at p, or the zero value and false outside the grid.
func (m *Map2D[T]) Tile(p Point2D) (T, bool) {
	i, ok := m.Index(p)
	if !ok {
		var zero T
		return zero, false
	}
	return m.tiles[i], true
}

// TilePtr returns a pointer into the grid, or nil outside it.
func (m *Map2D[T]) TilePtr(p Point2D) *T {
	i, ok := m.Index(p)
	if !ok {
		return nil
	}
	return &m.tiles[i]
}

// SetTile stores tile at p and reports whether p was inside the grid.
func (m *Map2D[T]) SetTile(p Point2D, tile T) bool {
	i, ok := m.Index(p)
	if !ok {
		return false
	}
	m.tiles[i] = tile
	return true
}

// Points yields every coordinate in row-major order.
func (m *Map2D[T]) Points() iter.Seq[Point2D] {
	return func(yield func(Point2D) bool) {
		for y := range m.height {
			for x := range m.width {
				if !yield(Point2D{x, y}) {
					return
				}
			}
		}
	}
}

// All yields every coordinate with its tile in row-major order.
func (m *Map2D[T]) All() iter.Seq2[Point2D, T] {
	return func(yield func(Point2D, T) bool) {
		for i, t := range m.tiles {
			if !yield(Point2D{i % m.width, i / m.width}, t) {
				return
			}
		}
	}
}

// Values yields the tiles in row-major order.
func (m *Map2D[T]) Values() iter.Seq[T] {
	return slices.Values(m.tiles)
}

// Row returns row y as a sub-slice of the grid. It panics when y is out
// of range, like slice indexing.
func (m *Map2D[T]) Row(y int) []T {
	start := y * m.width
	return m.tiles[start : start+m.width : start+m.width]
}

// Rows yields each row in order.
func (m *Map2D[T]) Rows() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for y := range m.height {
			if !yield(m.Row(y)) {
				return
			}
		}
	}
}

func (m *Map2D[T]) Width() int  { return m.width }
func (m *Map2D[T]) Height() int { return m.height }

// Size returns (width, height) as a point.
func (m *Map2D[T]) Size() Point2D {
	return Point2D{m.width, m.height}
}

// Clone returns a deep copy of the tile storage.
func (m *Map2D[T]) Clone() *Map2D[T] {
	return &Map2D[T]{
		tiles:  slices.Clone(m.tiles),
		width:  m.width,
		height: m.height,
	}
}

// String renders byte and rune grids as text, one row per line. Other tile
// types are printed with fmt.
func (m *Map2D[T]) String() string {
	var sb strings.Builder
	for row := range m.Rows() {
		switch r := any(row).(type) {
		case []byte:
			sb.Write(r)
		case []rune:
			sb.WriteString(string(r))
		default:
			for _, t := range row {
				fmt.Fprint(&sb, t)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Find returns the first position holding tile.
func Find[T comparable](m *Map2D[T], tile T) (Point2D, bool) {
	for p, t := range m.All() {
		if t == tile {
			return p, true
		}
	}
	return Point2D{}, false
}

// Count returns how many tiles satisfy pred.
func Count[T any](m *Map2D[T], pred func(T) bool) int {
	n := 0
	for _, t := range m.tiles {
		if pred(t) {
			n++
		}
	}
	return n
}
