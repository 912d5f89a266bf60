// Package builder_test contains functional tests for the Constructor
// implementations, verifying topology, counts, mapping and determinism.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
)

// pair is a normalized undirected endpoint pair.
type pair struct{ lo, hi int }

// edgeWeights returns the weight of every edge keyed by its normalized pair.
func edgeWeights(g *core.Graph) map[pair]float64 {
	m := make(map[pair]float64)
	for _, e := range g.Edges() {
		lo, hi := e.Ends()
		m[pair{lo, hi}] = e.Weight
	}
	return m
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		n     int
		ctor  builder.Constructor
		wantE int
		pairs []pair // sample of pairs that must be present
	}{
		{"Path(4)", 4, builder.Path(4), 3, []pair{{0, 1}, {1, 2}, {2, 3}}},
		{"Cycle(5)", 5, builder.Cycle(5), 5, []pair{{0, 1}, {3, 4}, {0, 4}}},
		{"Star(4)", 4, builder.Star(4), 3, []pair{{0, 1}, {0, 2}, {0, 3}}},
		{"Complete(4)", 4, builder.Complete(4), 6, []pair{{0, 1}, {1, 2}, {2, 3}, {0, 3}}},
		{"Grid(2x3)", 6, builder.Grid(2, 3), 7, []pair{{0, 1}, {0, 3}, {4, 5}, {2, 5}}},
		{"RandomSparse_p0(5)", 5, builder.RandomSparse(5, 0), 0, nil},
		{"RandomSparse_p1(5)", 5, builder.RandomSparse(5, 1), 10, []pair{{0, 4}, {2, 3}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.n, nil, nil, tc.ctor)
			require.NoError(t, err)

			assert.Equal(t, tc.n, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			edges := edgeWeights(g)
			for _, p := range tc.pairs {
				w, ok := edges[p]
				assert.True(t, ok, "missing edge %v", p)
				assert.Equal(t, builder.DefaultEdgeWeight, w)
			}

			// same inputs, same catalog
			g2, err := builder.BuildGraph(tc.n, nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, g.Edges(), g2.Edges())
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph(-1, nil, nil)
	assert.ErrorIs(t, err, core.ErrInvalidVertexCount)

	_, err = builder.BuildGraph(3, nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	for _, ctor := range []builder.Constructor{
		builder.Path(1), builder.Cycle(2), builder.Star(1), builder.Complete(0),
		builder.Grid(0, 3), builder.Grid(3, 0), builder.RandomSparse(0, 0.5),
	} {
		_, err = builder.BuildGraph(5, nil, nil, ctor)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	}

	_, err = builder.BuildGraph(5, nil, nil, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.BuildGraph(5, nil, nil, builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	// the topology does not fit in the store
	_, err = builder.BuildGraph(3, nil, nil, builder.Path(4))
	assert.ErrorIs(t, err, core.ErrInvalidVertex)

	// the store's weight policy is enforced
	_, err = builder.BuildGraph(3,
		[]core.GraphOption{core.WithNonNegativeWeights()},
		[]builder.BuilderOption{builder.WithConstantWeight(-2)},
		builder.Path(3))
	assert.ErrorIs(t, err, core.ErrInvalidWeight)
}

func TestBuilders_At(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(7, nil, nil, builder.Cycle(3), builder.At(3, builder.Path(4)))
	require.NoError(t, err)

	edges := edgeWeights(g)
	assert.Len(t, edges, 6)
	for _, p := range []pair{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {5, 6}} {
		assert.Contains(t, edges, p)
	}
	assert.NotContains(t, edges, pair{2, 3})

	_, err = builder.BuildGraph(3, nil, nil, builder.At(1, nil))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuilders_Permutation(t *testing.T) {
	t.Parallel()

	perm := []int{2, 0, 3, 1}
	g, err := builder.BuildGraph(4, nil,
		[]builder.BuilderOption{builder.WithPermutation(perm)},
		builder.Path(4))
	require.NoError(t, err)

	// local path 0-1-2-3 becomes 2-0-3-1
	edges := edgeWeights(g)
	for _, p := range []pair{{0, 2}, {0, 3}, {1, 3}} {
		assert.Contains(t, edges, p)
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64) []core.Edge {
		g, err := builder.BuildGraph(60, nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformIntWeight(1, 20)},
			builder.RandomSparse(60, 0.05))
		require.NoError(t, err)
		return g.Edges()
	}

	a, b := build(1337), build(1337)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, build(1338))

	for _, e := range a {
		assert.NotEqual(t, e.U, e.V, "no self-loops")
		assert.Less(t, e.U, e.V, "pairs are emitted with i<j")
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, 20.0)
		assert.Equal(t, float64(int(e.Weight)), e.Weight, "integer weights")
	}
}

func TestBuilders_DistributionWeights(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		opt  builder.BuilderOption
	}{
		{"normal", builder.WithNormalWeight(10, 3)},
		{"exponential", builder.WithExponentialWeight(0.2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			build := func() *core.Graph {
				g, err := builder.BuildGraph(8,
					[]core.GraphOption{core.WithNonNegativeWeights()},
					[]builder.BuilderOption{builder.WithSeed(7), tc.opt},
					builder.Complete(8))
				require.NoError(t, err)
				return g
			}

			g := build()
			require.Equal(t, 28, g.EdgeCount())
			for _, e := range g.Edges() {
				assert.GreaterOrEqual(t, e.Weight, 0.0)
				assert.Equal(t, float64(int(e.Weight)), e.Weight, "rounded weights")
			}
			assert.Equal(t, g.Edges(), build().Edges(), "same seed, same weights")
		})
	}
}
