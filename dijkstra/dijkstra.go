// SPDX-License-Identifier: MIT
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/frontier"
)

// Dijkstra computes shortest distances and predecessors from source to every
// vertex of g. It accepts functional options to customize behavior
// (MaxDistance, InfEdgeThreshold).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must lie in [0, n) (wrapped core.ErrInvalidVertex).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
//
// Unreachable vertices keep Dist = +Inf and Prev = core.NoVertex; this is not an error.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate source lies in the graph
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("dijkstra: source %d not in [0,%d): %w", source, g.VertexCount(), core.ErrInvalidVertex)
	}

	// 4) Reject negative weights before any work begins.
	//    MinWeight is O(1); the O(E) scan only runs to name the offending edge.
	if g.MinWeight() < 0 {
		for _, e := range g.Edges() {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d-%d weight=%g", ErrNegativeWeight, e.U, e.V, e.Weight)
			}
		}
	}

	// 5) Initialize runner state and run the main loop.
	r := newRunner(g, source, cfg)
	r.process()

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
// Nothing in it is shared between queries.
type runner struct {
	g         *core.Graph        // The input graph; read-only within Dijkstra.
	options   Options            // Configuration options.
	dist      []float64          // vertex → current best distance from source.
	prev      []int              // vertex → predecessor on the shortest path.
	finalized []bool             // vertex → distance is final.
	pq        *frontier.Frontier // every vertex not yet finalized.
}

// newRunner sets dist[source]=0, every other distance to +Inf, every
// predecessor to NoVertex, and seeds the frontier with all vertices.
func newRunner(g *core.Graph, source int, cfg Options) *runner {
	n := g.VertexCount()
	r := &runner{
		g:         g,
		options:   cfg,
		dist:      make([]float64, n),
		prev:      make([]int, n),
		finalized: make([]bool, n),
		pq:        frontier.New(n),
	}

	inf := math.Inf(1)
	for v := 0; v < n; v++ {
		r.dist[v] = inf
		r.prev[v] = core.NoVertex
	}
	r.dist[source] = 0

	for v := 0; v < n; v++ {
		if err := r.pq.Insert(v, r.dist[v]); err != nil {
			panic(err)
		}
	}

	return r
}

// process extracts exactly n vertices in priority order, finalizing each.
//
// Loop termination conditions:
//
//   - All n vertices have been extracted.
//   - The extracted distance is +Inf: every remaining vertex is unreachable
//     (or lies beyond MaxDistance) and relaxing from it cannot change anything.
//
// An empty frontier before n extractions is an invariant breach and panics
// with frontier.ErrEmptyFrontier.
func (r *runner) process() {
	n := len(r.dist)
	for i := 0; i < n; i++ {
		// 1) Pop the smallest-distance vertex.
		u, d, err := r.pq.ExtractMin()
		if err != nil {
			panic(fmt.Errorf("dijkstra: extraction %d of %d: %w", i+1, n, err))
		}

		// 2) Nothing below +Inf remains.
		if math.IsInf(d, 1) {
			return
		}

		// 3) u is final; relax its incident edges.
		r.finalized[u] = true
		r.relax(u, d)
	}
}

// relax examines each arc of u and improves the distance of any
// not-yet-finalized neighbor. Strict "<" keeps the first predecessor found
// when two routes tie.
func (r *runner) relax(u int, du float64) {
	seq, err := r.g.Neighbors(u)
	if err != nil {
		panic(err)
	}

	for v, w := range seq {
		if r.finalized[v] {
			continue
		}
		//  Skip any edge that is marked as impassable by InfEdgeThreshold.
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := du + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		if _, err := r.pq.DecreaseKey(v, newDist); err != nil {
			panic(err)
		}
	}
}
