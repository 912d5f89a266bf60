// Package prim_kruskal provides an implementation of Kruskal's algorithm.
// It produces a minimum spanning forest of an undirected *core.Graph.
package prim_kruskal

import (
	"slices"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/route"
)

// Kruskal computes a minimum spanning forest of g.
// It uses a DisjointSet with path halving and union by rank.
//
// Error Conditions:
//   - ErrNilGraph: g is nil.
//
// A disconnected graph yields a forest (one tree per component), not an error.
//
// Steps:
//  1. Collect all edges via g.Edges(), skip self-loops (U == V).
//  2. Sort edges by (weight, lower endpoint, higher endpoint, edge ID); the order is
//     total, so equal-weight and parallel edges are always taken in the same order.
//  3. For each edge in order, if its endpoints are in different components,
//     union them and include the edge.
//  4. Stop early once a single component remains.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(g *core.Graph) (*Forest, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()

	// 1. Collect non-loop edges.
	all := g.Edges()
	edges := make([]core.Edge, 0, len(all))
	for _, e := range all {
		if e.IsLoop() {
			// Skip self-loops entirely: they cannot be part of a spanning tree.
			continue
		}
		edges = append(edges, e)
	}

	// 2. Deterministic total order.
	slices.SortFunc(edges, route.Compare)

	// 3. Union-find sweep.
	dsu := NewDisjointSet(n)
	forest := &Forest{Vertices: n}
	for _, e := range edges {
		if dsu.Count() <= 1 {
			break
		}
		if dsu.Union(e.U, e.V) {
			forest.Edges = append(forest.Edges, e)
			forest.Weight += e.Weight
		}
	}
	forest.Components = dsu.Count()

	return forest, nil
}
