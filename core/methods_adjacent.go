// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Incident, Degree).
// Determinism:
//   - All three follow the per-vertex insertion order of AddEdge.
// Concurrency:
//   - The read lock is held only while copying the adjacency slice header.
//     Arc values are append-only, so the snapshot is immutable afterwards.

package core

import (
	"fmt"
	"iter"
)

// snapshot returns the adjacency slice of u as of now.
// The caller must have validated u.
func (g *Graph) snapshot(u int) []Arc {
	g.mu.RLock()
	arcs := g.adj[u]
	g.mu.RUnlock()

	return arcs
}

// Neighbors returns a lazy sequence of (neighbor, weight) pairs incident to u.
//
// Behavior highlights:
//   - Finite: yields deg(u) pairs, a self-loop once.
//   - Repeatable: each range over the returned sequence starts from the beginning
//     and yields the same pairs in the same order on an unmodified store.
//   - Parallel edges are yielded once each.
//
// Errors:
//   - ErrInvalidVertex: if u is outside [0, n).
//
// Complexity:
//   - O(1) to obtain, O(deg(u)) to drain.
func (g *Graph) Neighbors(u int) (iter.Seq2[int, float64], error) {
	if !g.HasVertex(u) {
		return nil, fmt.Errorf("Neighbors(%d): %w", u, ErrInvalidVertex)
	}

	return func(yield func(int, float64) bool) {
		for _, a := range g.snapshot(u) {
			if !yield(a.To, a.Weight) {
				return
			}
		}
	}, nil
}

// Incident returns the arcs of u, materialized, in insertion order.
// The returned slice is a copy; callers may modify it freely.
//
// Algorithms that need to know which Edge an arc came from (Prim, for parallel
// edges) use Incident instead of Neighbors.
func (g *Graph) Incident(u int) ([]Arc, error) {
	if !g.HasVertex(u) {
		return nil, fmt.Errorf("Incident(%d): %w", u, ErrInvalidVertex)
	}
	arcs := g.snapshot(u)
	out := make([]Arc, len(arcs))
	copy(out, arcs)

	return out, nil
}

// Degree returns the number of arcs stored for u (a self-loop counts once).
func (g *Graph) Degree(u int) (int, error) {
	if !g.HasVertex(u) {
		return 0, fmt.Errorf("Degree(%d): %w", u, ErrInvalidVertex)
	}

	return len(g.snapshot(u)), nil
}
