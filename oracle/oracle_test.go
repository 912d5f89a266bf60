package oracle_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/edgelist"
	"github.com/katalvlaran/lvroute/oracle"
)

func TestGonum_ParallelAndLoops(t *testing.T) {
	g := core.MustGraph(3)
	g.MustAddEdge(0, 1, 5)
	g.MustAddEdge(1, 0, 2)
	g.MustAddEdge(0, 1, 3)
	g.MustAddEdge(2, 2, 1)

	gg := oracle.Gonum(g)
	assert.Equal(t, 3, gg.Nodes().Len())
	assert.Equal(t, 1, gg.Edges().Len())
	w, ok := gg.Weight(0, 1)
	require.True(t, ok)
	assert.Equal(t, 2.0, w)
}

func TestShortestFrom(t *testing.T) {
	nw := edgelist.Stations()
	dist, err := oracle.ShortestFrom(nw.Graph, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 2, 8, 10}, dist)

	g := core.MustGraph(2)
	dist, err = oracle.ShortestFrom(g, 1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist[0], 1))

	_, err = oracle.ShortestFrom(nil, 0)
	assert.ErrorIs(t, err, oracle.ErrNilGraph)
	_, err = oracle.ShortestFrom(g, 2)
	assert.ErrorIs(t, err, core.ErrInvalidVertex)

	g.MustAddEdge(0, 1, -1)
	_, err = oracle.ShortestFrom(g, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestSpanningWeightAndComponents(t *testing.T) {
	w, err := oracle.SpanningWeight(edgelist.Stations().Graph)
	require.NoError(t, err)
	assert.Equal(t, 10.0, w)

	w, err = oracle.SpanningWeight(edgelist.Closures().Graph)
	require.NoError(t, err)
	assert.Equal(t, 9.0, w)

	g := core.MustGraph(6)
	g.MustAddEdge(0, 1, 1)
	g.MustAddEdge(1, 2, 1)
	g.MustAddEdge(3, 4, 1)
	c, err := oracle.Components(g)
	require.NoError(t, err)
	assert.Equal(t, 3, c)

	_, err = oracle.SpanningWeight(nil)
	assert.ErrorIs(t, err, oracle.ErrNilGraph)
	_, err = oracle.Components(nil)
	assert.ErrorIs(t, err, oracle.ErrNilGraph)
}

func TestEqual(t *testing.T) {
	inf := math.Inf(1)
	assert.True(t, oracle.Equal(1, 1+1e-12))
	assert.True(t, oracle.Equal(1e12, 1e12+1))
	assert.False(t, oracle.Equal(1, 1.001))
	assert.True(t, oracle.Equal(inf, inf))
	assert.False(t, oracle.Equal(inf, 1e300))
	assert.False(t, oracle.Equal(math.NaN(), math.NaN()))
}

func TestCheck_Random(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		g, err := builder.BuildGraph(60, []core.GraphOption{core.WithNonNegativeWeights()},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(0.5, 20)},
			builder.RandomSparse(60, 0.05))
		require.NoError(t, err)

		rep, err := oracle.Check(context.Background(), g, 4)
		require.NoError(t, err)
		assert.True(t, rep.OK(), "seed %d: %+v", seed, rep)
		assert.Empty(t, rep.Distances)
		assert.Equal(t, 60, rep.Sources)
		assert.Equal(t, g.EdgeCount(), rep.Edges)
	}
}

func TestCheck_Stations(t *testing.T) {
	rep, err := oracle.Check(context.Background(), edgelist.Stations().Graph, 0)
	require.NoError(t, err)
	assert.True(t, rep.OK())
	assert.Equal(t, 10.0, rep.KruskalWeight)
	assert.Equal(t, 10.0, rep.PrimWeight)
	assert.Equal(t, 1, rep.Components)
}

func TestCheck_Errors(t *testing.T) {
	_, err := oracle.Check(context.Background(), nil, 1)
	assert.ErrorIs(t, err, oracle.ErrNilGraph)

	g := core.MustGraph(2)
	g.MustAddEdge(0, 1, -3)
	_, err = oracle.Check(context.Background(), g, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = oracle.Check(ctx, edgelist.Stations().Graph, 1)
	assert.ErrorIs(t, err, context.Canceled)

	rep, err := oracle.Check(context.Background(), core.MustGraph(0), 1)
	require.NoError(t, err)
	assert.True(t, rep.OK())
}

func TestReport_OK(t *testing.T) {
	rep := &oracle.Report{Acyclic: true, KruskalWeight: 3, PrimWeight: 3, GonumWeight: 3}
	assert.True(t, rep.OK())
	rep.Acyclic = false
	assert.False(t, rep.OK())
	rep.Acyclic = true
	rep.Distances = []oracle.Mismatch{{Source: 0, Target: 1, Got: 2, Want: 1}}
	assert.False(t, rep.OK())
	rep.Distances = nil
	rep.PrimComponents = 2
	assert.False(t, rep.OK())
}
