// SPDX-License-Identifier: MIT
package oracle

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dfs"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/prim_kruskal"
)

// Tolerance is the relative tolerance used when comparing weights.
const Tolerance = 1e-9

// Mismatch is one disagreement between lvroute and gonum.
type Mismatch struct {
	Source, Target int
	Got, Want      float64
}

// Report summarizes a Check run.
type Report struct {
	Vertices int
	Edges    int
	Sources  int

	// Distances lists every (source, target) pair whose distances differ.
	Distances []Mismatch

	// Acyclic is false if either spanning forest contains a cycle.
	Acyclic bool

	KruskalWeight float64
	PrimWeight    float64
	GonumWeight   float64

	// Component counts from bfs, both spanning forests, and gonum.
	Components        int
	KruskalComponents int
	PrimComponents    int
	GonumComponents   int
}

// OK reports whether every comparison agreed.
func (r *Report) OK() bool {
	return len(r.Distances) == 0 && r.Acyclic &&
		Equal(r.KruskalWeight, r.GonumWeight) &&
		Equal(r.PrimWeight, r.GonumWeight) &&
		r.Components == r.GonumComponents &&
		r.KruskalComponents == r.GonumComponents &&
		r.PrimComponents == r.GonumComponents
}

// Equal compares two weights within Tolerance, relative to the larger
// magnitude (at least 1). Equal infinities compare equal.
func Equal(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) || math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) <= Tolerance*scale
}

// Check runs the shortest-path engine from every vertex and compares each
// distance array with gonum, then compares spanning forest weights (Kruskal
// and Prim from vertex 0) and component counts.
func Check(ctx context.Context, g *core.Graph, workers int) (*Report, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	sources := make([]int, g.VertexCount())
	for i := range sources {
		sources[i] = i
	}

	return CheckSources(ctx, g, sources, workers)
}

// CheckSources is Check restricted to the given shortest-path sources.
func CheckSources(ctx context.Context, g *core.Graph, sources []int, workers int) (*Report, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	results, err := dijkstra.Many(ctx, g, sources, workers)
	if err != nil {
		return nil, fmt.Errorf("oracle: %w", err)
	}

	rep := &Report{Vertices: g.VertexCount(), Edges: g.EdgeCount(), Sources: len(sources)}

	// gonum side, one query per source, same worker bound
	gg := Gonum(g)
	want := make([][]float64, len(sources))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, s := range sources {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			want[i] = shortestFrom(gg, rep.Vertices, s)
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	for i, res := range results {
		for v, got := range res.Dist {
			if !Equal(got, want[i][v]) {
				rep.Distances = append(rep.Distances, Mismatch{Source: res.Source, Target: v, Got: got, Want: want[i][v]})
			}
		}
	}

	if err = rep.spanning(g); err != nil {
		return nil, err
	}

	return rep, nil
}

func (r *Report) spanning(g *core.Graph) error {
	kf, err := prim_kruskal.Kruskal(g)
	if err != nil {
		return fmt.Errorf("oracle: %w", err)
	}
	r.KruskalWeight = kf.Weight
	r.KruskalComponents = kf.Components
	r.Acyclic = dfs.CheckForest(g.VertexCount(), kf.Edges) == nil

	if g.VertexCount() > 0 {
		pf, err := prim_kruskal.Prim(g, 0)
		if err != nil {
			return fmt.Errorf("oracle: %w", err)
		}
		r.PrimWeight = pf.Weight
		r.PrimComponents = pf.Components
		r.Acyclic = r.Acyclic && dfs.CheckForest(g.VertexCount(), pf.Edges) == nil
	}
	r.Components = bfs.ComponentCount(g)

	if r.GonumWeight, err = SpanningWeight(g); err != nil {
		return err
	}
	r.GonumComponents, err = Components(g)

	return err
}
