// Package prim_kruskal provides an implementation of Prim's algorithm.
// It grows trees with the indexed frontier, keyed by the lightest known
// edge connecting each vertex to the current tree.
package prim_kruskal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/frontier"
)

// Prim computes a minimum spanning forest of g, growing the first tree from start.
//
// Error Conditions:
//   - ErrNilGraph: g is nil.
//   - core.ErrInvalidVertex (wrapped): start outside [0, n). On the empty
//     graph every start is invalid.
//
// Steps:
//  1. Seed the frontier with every vertex at key +Inf; lower start's key to 0.
//  2. Extract the minimum-key vertex u.
//     a. If u has no connecting edge, it roots a new tree (first start, then
//     the lowest-numbered vertex not yet covered).
//     b. Otherwise the connecting edge joins the forest.
//  3. For each arc (u→v) to a vertex outside the forest, adopt it as v's
//     connecting edge if it is lighter, or equally light with a lower edge
//     ID; decrease v's key.
//  4. Repeat until all n vertices are extracted.
//
// Complexity: O((V + E) log V) time, O(V) memory.
func Prim(g *core.Graph, start int) (*Forest, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("prim_kruskal: start %d not in [0,%d): %w", start, g.VertexCount(), core.ErrInvalidVertex)
	}

	n := g.VertexCount()
	p := newPrimState(n)

	// 1. Seed
	for v := 0; v < n; v++ {
		if err := p.pq.Insert(v, p.key[v]); err != nil {
			panic(err)
		}
	}
	p.key[start] = 0
	if _, err := p.pq.DecreaseKey(start, 0); err != nil {
		panic(err)
	}

	forest := &Forest{Vertices: n}
	for i := 0; i < n; i++ {
		// 2. Extract
		u, _, err := p.pq.ExtractMin()
		if err != nil {
			panic(fmt.Errorf("prim_kruskal: extraction %d of %d: %w", i+1, n, err))
		}
		p.inTree[u] = true

		if p.via[u] == core.NoVertex {
			// 2a. New tree.
			forest.Components++
		} else {
			// 2b. Connecting edge joins the forest.
			e, err := g.Edge(p.via[u])
			if err != nil {
				panic(err)
			}
			forest.Edges = append(forest.Edges, e)
			forest.Weight += e.Weight
		}

		// 3. Relax
		arcs, err := g.Incident(u)
		if err != nil {
			panic(err)
		}
		p.relax(arcs)
	}

	return forest, nil
}

// primState holds the per-call arrays; nothing is shared between calls.
type primState struct {
	key    []float64          // lightest known connecting weight
	via    []int              // edge ID of that connection, NoVertex if none
	inTree []bool             // extracted
	pq     *frontier.Frontier // vertices not yet in the forest
}

func newPrimState(n int) *primState {
	p := &primState{
		key:    make([]float64, n),
		via:    make([]int, n),
		inTree: make([]bool, n),
		pq:     frontier.New(n),
	}
	inf := math.Inf(1)
	for v := 0; v < n; v++ {
		p.key[v] = inf
		p.via[v] = core.NoVertex
	}

	return p
}

// relax offers every arc of a just-extracted vertex as a connecting edge.
func (p *primState) relax(arcs []core.Arc) {
	for _, a := range arcs {
		v := a.To
		if p.inTree[v] {
			// self-loops land here too
			continue
		}
		lighter := a.Weight < p.key[v]
		tie := a.Weight == p.key[v] && a.EdgeID < p.via[v]
		if !lighter && !tie {
			continue
		}
		p.via[v] = a.EdgeID
		if lighter {
			p.key[v] = a.Weight
			if _, err := p.pq.DecreaseKey(v, a.Weight); err != nil {
				panic(err)
			}
		}
	}
}
