// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge, Edge, Edges.
// Determinism:
//   - Edge IDs are dense and follow insertion order.
//   - Edges() returns edges sorted by Edge.ID asc.
// Concurrency:
//   - AddEdge under the write lock; queries under the read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge inserts the undirected edge {u, v} with weight w and returns its ID.
//
// Steps:
//  1. Validate endpoints (ErrInvalidVertex).
//  2. Validate weight: NaN/±Inf always rejected, negative rejected on a
//     non-negative store (ErrInvalidWeight).
//  3. Validate loops (ErrLoopNotAllowed when WithoutLoops).
//  4. Under the write lock: append to the edge catalog, append an Arc to adj[u]
//     and, unless u == v, the mirror Arc to adj[v].
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w float64) (int, error) {
	// 1) Endpoint validation
	if !g.HasVertex(u) {
		return 0, fmt.Errorf("AddEdge(%d,%d): endpoint %d not in [0,%d): %w", u, v, u, g.n, ErrInvalidVertex)
	}
	if !g.HasVertex(v) {
		return 0, fmt.Errorf("AddEdge(%d,%d): endpoint %d not in [0,%d): %w", u, v, v, g.n, ErrInvalidVertex)
	}

	// 2) Weight policy
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("AddEdge(%d,%d): weight %g: %w", u, v, w, ErrInvalidWeight)
	}
	if g.nonNegative && w < 0 {
		return 0, fmt.Errorf("AddEdge(%d,%d): negative weight %g on shortest-path store: %w", u, v, w, ErrInvalidWeight)
	}

	// 3) Loop policy
	if u == v && !g.allowLoops {
		return 0, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}

	// 4) Store and link adjacency
	g.mu.Lock()
	defer g.mu.Unlock()

	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, U: u, V: v, Weight: w})
	g.adj[u] = append(g.adj[u], Arc{To: v, Weight: w, EdgeID: id})
	if u != v {
		// mirror
		g.adj[v] = append(g.adj[v], Arc{To: u, Weight: w, EdgeID: id})
	}
	if w < g.minWeight {
		g.minWeight = w
	}

	return id, nil
}

// MustAddEdge is AddEdge for fixtures; it panics on error.
func (g *Graph) MustAddEdge(u, v int, w float64) int {
	id, err := g.AddEdge(u, v, w)
	if err != nil {
		panic(err)
	}

	return id
}

// Edge returns a copy of the edge with the given ID.
// Complexity: O(1).
func (g *Graph) Edge(id int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.edges) {
		return Edge{}, fmt.Errorf("edge %d: %w", id, ErrEdgeNotFound)
	}

	return g.edges[id], nil
}

// Edges returns a copy of the edge catalog in insertion (ID) order.
// Complexity: O(E) time and space.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
