package xmas

import (
	"cmp"
	"slices"
)

// DisjointSet is a union-find over the integers [0, n) with union by size
// and path halving.
type DisjointSet struct {
	parent     []int
	size       []int
	components int
}

// NewDisjointSet returns n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	ds := &DisjointSet{
		parent:     make([]int, n),
		size:       make([]int, n),
		components: n,
	}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.size[i] = 1
	}
	return ds
}

// Find returns the representative of x's set.
func (ds *DisjointSet) Find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}
	return x
}

// Union merges the sets holding a and b and reports whether they were
// distinct.
func (ds *DisjointSet) Union(a, b int) bool {
	ra, rb := ds.Find(a), ds.Find(b)
	if ra == rb {
		return false
	}
	if ds.size[ra] < ds.size[rb] {
		ra, rb = rb, ra
	}
	ds.parent[rb] = ra
	ds.size[ra] += ds.size[rb]
	ds.components--
	return true
}

// Size returns the number of elements in x's set.
func (ds *DisjointSet) Size(x int) int {
	return ds.size[ds.Find(x)]
}

// Components returns the number of disjoint sets.
func (ds *DisjointSet) Components() int {
	return ds.components
}

// ComponentSizes returns the size of every set, largest first.
func (ds *DisjointSet) ComponentSizes() []int {
	sizes := make([]int, 0, ds.components)
	for i, p := range ds.parent {
		if p == i {
			sizes = append(sizes, ds.size[i])
		}
	}
	slices.SortFunc(sizes, func(a, b int) int { return cmp.Compare(b, a) })
	return sizes
}
