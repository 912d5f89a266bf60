// SPDX-License-Identifier: MIT
package prim_kruskal

// DisjointSet partitions the elements 0..n-1 into disjoint components.
// Find uses path halving and Union merges by rank, so both run in
// amortized O(α(n)).
//
// Elements outside [0, n) are a programming error and panic with an
// index-out-of-range, as slices do.
type DisjointSet struct {
	parent []int
	rank   []int
	count  int
}

// NewDisjointSet returns n singleton components.
func NewDisjointSet(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Find returns the representative of x's component.
func (d *DisjointSet) Find(x int) int {
	for d.parent[x] != x {
		// Path halving: make x point to its grandparent.
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the components of a and b.
// It reports false when they were already the same component.
func (d *DisjointSet) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
	d.count--

	return true
}

// Connected reports whether a and b are in the same component.
func (d *DisjointSet) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}

// Count returns the current number of components.
func (d *DisjointSet) Count() int {
	return d.count
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int {
	return len(d.parent)
}
