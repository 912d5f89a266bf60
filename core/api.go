// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and the Stats snapshot.
// Policy:
//   - No algorithms here.
//   - Every exported function documents complexity and locking.

package core

// VertexCount returns n, the number of vertices fixed at construction.
// Complexity: O(1), no locking (n is immutable).
func (g *Graph) VertexCount() int {
	return g.n
}

// HasVertex reports whether u lies in [0, n).
// Complexity: O(1), no locking.
func (g *Graph) HasVertex(u int) bool {
	return u >= 0 && u < g.n
}

// EdgeCount returns the number of inserted edges (self-loops and parallel edges included).
// Complexity: O(1) under a read lock.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// NonNegative reports whether the store was declared WithNonNegativeWeights.
//
// Notes:
//   - This is a policy flag. A store without it may still hold only
//     non-negative weights; use MinWeight to inspect the actual contents.
func (g *Graph) NonNegative() bool {
	return g.nonNegative
}

// Looped reports whether self-loops are accepted by AddEdge.
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// MinWeight returns the smallest weight among all stored edges,
// or +Inf when the graph has no edges.
//
// The shortest-path engine uses it to reject negative weights in O(1)
// before any work begins.
// Complexity: O(1) under a read lock.
func (g *Graph) MinWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.minWeight
}

// GraphStats is a value snapshot of configuration flags and sizes.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	LoopCount   int
	NonNegative bool
	AllowsLoops bool
	MinWeight   float64
}

// Stats produces a read-only snapshot of flags and catalog sizes.
//
// Complexity: O(E) for the loop count, under a single read lock.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: g.n,
		EdgeCount:   len(g.edges),
		NonNegative: g.nonNegative,
		AllowsLoops: g.allowLoops,
		MinWeight:   g.minWeight,
	}
	for i := range g.edges {
		if g.edges[i].IsLoop() {
			stats.LoopCount++
		}
	}

	return stats
}
