// SPDX-License-Identifier: MIT

// Package oracle cross-checks lvroute's engines against gonum.
//
// A core.Graph is copied into a gonum simple.WeightedUndirectedGraph with
// the lightest edge of every parallel group and without self-loops; neither
// changes a shortest distance, a spanning weight, or the component count.
// The gonum answers are then compared with dijkstra, prim_kruskal and bfs.
package oracle

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// ErrNilGraph is returned for a nil store.
var ErrNilGraph = errors.New("oracle: graph is nil")

// Gonum copies g into a gonum weighted undirected graph. Node IDs equal
// vertex IDs; isolated vertices are kept as nodes.
func Gonum(g *core.Graph) *simple.WeightedUndirectedGraph {
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for v := 0; v < g.VertexCount(); v++ {
		out.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		if e.IsLoop() {
			continue
		}
		if prev := out.WeightedEdge(int64(e.U), int64(e.V)); prev != nil && prev.Weight() <= e.Weight {
			continue
		}
		out.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.U), T: simple.Node(e.V), W: e.Weight})
	}

	return out
}

// ShortestFrom returns gonum's single-source distances from s, +Inf for
// unreachable vertices.
func ShortestFrom(g *core.Graph, s int) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(s) {
		return nil, fmt.Errorf("oracle: source %d: %w", s, core.ErrInvalidVertex)
	}
	if g.MinWeight() < 0 {
		return nil, fmt.Errorf("oracle: %w", dijkstra.ErrNegativeWeight)
	}

	return shortestFrom(Gonum(g), g.VertexCount(), s), nil
}

func shortestFrom(gg *simple.WeightedUndirectedGraph, n, s int) []float64 {
	sp := path.DijkstraFrom(simple.Node(s), gg)
	dist := make([]float64, n)
	for v := range dist {
		dist[v] = sp.WeightTo(int64(v))
	}

	return dist
}

// SpanningWeight returns the weight of gonum's minimum spanning forest.
func SpanningWeight(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))

	return path.Kruskal(dst, Gonum(g)), nil
}

// Components returns gonum's connected component count.
func Components(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}

	return len(topo.ConnectedComponents(Gonum(g))), nil
}
