package xmas

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// WrapVal returns val modulo rng, always in [0, rng) for positive rng.
func WrapVal[T constraints.Integer](val, rng T) T {
	wrapped := val % rng
	if wrapped < 0 {
		wrapped += rng
	}
	return wrapped
}

// AbsDiff returns |a - b|.
func AbsDiff[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// Keyed pairs a value with the key it is ordered by.
type Keyed[T any, K cmp.Ordered] struct {
	Value T
	Key   K
}

// NewKeyed is a convenience constructor.
func NewKeyed[T any, K cmp.Ordered](value T, key K) Keyed[T, K] {
	return Keyed[T, K]{Value: value, Key: key}
}

// CompareKeyed orders by key only; use it with slices.SortStableFunc.
func CompareKeyed[T any, K cmp.Ordered](a, b Keyed[T, K]) int {
	return cmp.Compare(a.Key, b.Key)
}
