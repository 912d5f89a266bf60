package dijkstra_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/route"
)

// Vertex names of the five-station toy graph.
const (
	A = iota
	B
	C
	D
	E
)

// toyGraph builds A-B=4, A-C=2, B-C=1, B-D=5, C-D=8, C-E=10, D-E=2.
func toyGraph() *core.Graph {
	g := core.MustGraph(5, core.WithNonNegativeWeights())
	g.MustAddEdge(A, B, 4)
	g.MustAddEdge(A, C, 2)
	g.MustAddEdge(B, C, 1)
	g.MustAddEdge(B, D, 5)
	g.MustAddEdge(C, D, 8)
	g.MustAddEdge(C, E, 10)
	g.MustAddEdge(D, E, 2)

	return g
}

// randomGraph samples G(n, p) with integer weights in [0, 9].
func randomGraph(t testing.TB, n int, p float64, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n, nil,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformIntWeight(0, 9)},
		builder.RandomSparse(n, p))
	require.NoError(t, err)

	return g
}

// bruteForce enumerates every simple path from s and keeps the cheapest per target.
func bruteForce(g *core.Graph, s int) []float64 {
	n := g.VertexCount()
	best := make([]float64, n)
	for i := range best {
		best[i] = math.Inf(1)
	}
	onPath := make([]bool, n)

	var walk func(u int, d float64)
	walk = func(u int, d float64) {
		if d < best[u] {
			best[u] = d
		}
		onPath[u] = true
		seq, _ := g.Neighbors(u)
		for v, w := range seq {
			if !onPath[v] {
				walk(v, d+w)
			}
		}
		onPath[u] = false
	}
	walk(s, 0)

	return best
}

func TestDijkstra_Validation(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := toyGraph()
	_, err = dijkstra.Dijkstra(g, -1)
	assert.ErrorIs(t, err, core.ErrInvalidVertex)
	_, err = dijkstra.Dijkstra(g, 5)
	assert.ErrorIs(t, err, core.ErrInvalidVertex)

	// the store accepts a negative weight, the query does not
	neg := core.MustGraph(3)
	neg.MustAddEdge(0, 1, 2)
	neg.MustAddEdge(1, 2, -1)
	_, err = dijkstra.Dijkstra(neg, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "edge 1-2")
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() { dijkstra.WithMaxDistance(-1) })
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() { dijkstra.WithMaxDistance(math.NaN()) })
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() { dijkstra.WithInfEdgeThreshold(0) })
	assert.NotPanics(t, func() { dijkstra.WithMaxDistance(0) })
}

func TestDijkstra_ToyGraph(t *testing.T) {
	res, err := dijkstra.Dijkstra(toyGraph(), A)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 3, 2, 8, 10}, res.Dist)
	assert.Equal(t, []int{core.NoVertex, C, A, B, D}, res.Prev)

	path, err := res.PathTo(D)
	require.NoError(t, err)
	assert.Equal(t, []int{A, C, B, D}, path)

	d, err := res.DistanceTo(D)
	require.NoError(t, err)
	assert.Equal(t, 8.0, d)

	_, err = res.DistanceTo(9)
	assert.ErrorIs(t, err, core.ErrInvalidVertex)
}

func TestDijkstra_Unreachable(t *testing.T) {
	// two triangles, no bridge
	g := core.MustGraph(6)
	for _, off := range []int{0, 3} {
		g.MustAddEdge(off, off+1, 1)
		g.MustAddEdge(off+1, off+2, 1)
		g.MustAddEdge(off, off+2, 3)
	}

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	for v := 3; v < 6; v++ {
		assert.False(t, res.Reachable(v))
		assert.True(t, math.IsInf(res.Dist[v], 1))
		assert.Equal(t, core.NoVertex, res.Prev[v])
	}
	assert.True(t, res.Reachable(2))
	assert.Equal(t, 2.0, res.Dist[2])

	_, err = res.PathTo(4)
	assert.ErrorIs(t, err, route.ErrUnreachable)
}

func TestDijkstra_SingleVertex(t *testing.T) {
	res, err := dijkstra.Dijkstra(core.MustGraph(1), 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, res.Dist)
	assert.Equal(t, []int{core.NoVertex}, res.Prev)
}

func TestDijkstra_ParallelEdgesAndLoops(t *testing.T) {
	g := core.MustGraph(3)
	g.MustAddEdge(0, 1, 5)
	g.MustAddEdge(1, 0, 2)
	g.MustAddEdge(1, 1, 0)
	g.MustAddEdge(0, 0, 3)
	g.MustAddEdge(1, 2, 0)

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 2}, res.Dist)
	assert.Equal(t, []int{core.NoVertex, 0, 1}, res.Prev)
}

func TestDijkstra_TieBreak(t *testing.T) {
	// square 0-1-3 and 0-2-3, all weights 1: vertex 1 is finalized first
	g := core.MustGraph(4)
	g.MustAddEdge(0, 2, 1)
	g.MustAddEdge(0, 1, 1)
	g.MustAddEdge(2, 3, 1)
	g.MustAddEdge(1, 3, 1)

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Prev[3])
	assert.Equal(t, 2.0, res.Dist[3])
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := core.MustGraph(4)
	g.MustAddEdge(0, 1, 1)
	g.MustAddEdge(1, 2, 1)
	g.MustAddEdge(2, 3, 1)

	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Dist[2])
	assert.False(t, res.Reachable(3))
	assert.Equal(t, core.NoVertex, res.Prev[3])
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := toyGraph()

	// C-E=10 is a wall; E is still reached through D
	res, err := dijkstra.Dijkstra(g, C, dijkstra.WithInfEdgeThreshold(10))
	require.NoError(t, err)
	assert.Equal(t, 8.0, res.Dist[E])

	// every edge of weight ≥ 5 is a wall: D and E are cut off
	res, err = dijkstra.Dijkstra(g, A, dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.False(t, res.Reachable(D))
	assert.False(t, res.Reachable(E))
	assert.Equal(t, 3.0, res.Dist[B])
}

func TestDijkstra_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		n := 2 + int(seed%7) // 2..8 vertices
		g := randomGraph(t, n, 0.45, seed)
		for s := 0; s < n; s++ {
			res, err := dijkstra.Dijkstra(g, s)
			require.NoError(t, err)
			assert.Equal(t, bruteForce(g, s), res.Dist, "seed=%d source=%d", seed, s)
		}
	}
}

func TestDijkstra_EdgeInequalityAndPaths(t *testing.T) {
	g := randomGraph(t, 80, 0.06, 1337)
	edges := g.Edges()

	for _, s := range []int{0, 17, 42, 79} {
		res, err := dijkstra.Dijkstra(g, s)
		require.NoError(t, err)
		assert.Zero(t, res.Dist[s])

		for _, e := range edges {
			if !res.Reachable(e.U) || !res.Reachable(e.V) {
				// an edge never joins a reached and an unreached vertex
				assert.Equal(t, res.Reachable(e.U), res.Reachable(e.V))
				continue
			}
			assert.LessOrEqual(t, res.Dist[e.V], res.Dist[e.U]+e.Weight)
			assert.LessOrEqual(t, res.Dist[e.U], res.Dist[e.V]+e.Weight)
		}

		for v := 0; v < g.VertexCount(); v++ {
			if !res.Reachable(v) {
				continue
			}
			path, err := res.PathTo(v)
			require.NoError(t, err)
			assert.Equal(t, s, path[0])
			assert.Equal(t, v, path[len(path)-1])

			w, err := route.PathWeight(g, path)
			require.NoError(t, err)
			assert.Equal(t, res.Dist[v], w)
		}
	}
}

func TestDijkstra_Deterministic(t *testing.T) {
	g := randomGraph(t, 50, 0.1, 7)
	first, err := dijkstra.Dijkstra(g, 3)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := dijkstra.Dijkstra(g, 3)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestMany(t *testing.T) {
	g := randomGraph(t, 40, 0.1, 99)
	sources := []int{0, 5, 5, 39, 12}

	got, err := dijkstra.Many(context.Background(), g, sources, 3)
	require.NoError(t, err)
	require.Len(t, got, len(sources))
	for i, s := range sources {
		want, err := dijkstra.Dijkstra(g, s)
		require.NoError(t, err)
		assert.Equal(t, want, got[i])
	}

	got, err = dijkstra.Many(context.Background(), g, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMany_Errors(t *testing.T) {
	_, err := dijkstra.Many(context.Background(), nil, []int{0}, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := toyGraph()
	_, err = dijkstra.Many(context.Background(), g, []int{0, 1, 9}, 2)
	assert.ErrorIs(t, err, core.ErrInvalidVertex)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dijkstra.Many(ctx, g, []int{0, 1, 2}, 2)
	assert.ErrorIs(t, err, context.Canceled)
}
