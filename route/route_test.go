package route_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/route"
)

const none = core.NoVertex

func TestReconstruct(t *testing.T) {
	// 0 → 2 → 1 → 3, 4 unreached
	prev := []int{none, 2, 0, 1, none}

	path, err := route.Reconstruct(prev, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3}, path)

	path, err = route.Reconstruct(prev, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path, "source to itself")
}

func TestReconstruct_Unreachable(t *testing.T) {
	prev := []int{none, 0, none, 2}

	_, err := route.Reconstruct(prev, 0, 3)
	assert.ErrorIs(t, err, route.ErrUnreachable)
	_, err = route.Reconstruct(prev, 0, 2)
	assert.ErrorIs(t, err, route.ErrUnreachable)
}

func TestReconstruct_InvalidVertex(t *testing.T) {
	prev := []int{none, 0}
	_, err := route.Reconstruct(prev, 0, 2)
	assert.ErrorIs(t, err, core.ErrInvalidVertex)
	_, err = route.Reconstruct(prev, -1, 1)
	assert.ErrorIs(t, err, core.ErrInvalidVertex)
}

func TestReconstruct_Malformed(t *testing.T) {
	// 1 ↔ 2 cycle never reaches 0
	_, err := route.Reconstruct([]int{none, 2, 1}, 0, 1)
	assert.ErrorIs(t, err, route.ErrMalformedPredecessors)

	_, err = route.Reconstruct([]int{none, 7}, 0, 1)
	assert.ErrorIs(t, err, route.ErrMalformedPredecessors)
}

func TestPathWeight(t *testing.T) {
	g := core.MustGraph(4)
	g.MustAddEdge(0, 1, 5)
	g.MustAddEdge(1, 0, 2) // lighter parallel edge
	g.MustAddEdge(1, 2, 1.5)

	w, err := route.PathWeight(g, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3.5, w)

	w, err = route.PathWeight(g, []int{3})
	require.NoError(t, err)
	assert.Zero(t, w)

	_, err = route.PathWeight(g, []int{0, 2})
	assert.ErrorIs(t, err, route.ErrNoSuchEdge)
	_, err = route.PathWeight(g, []int{0, 9})
	assert.ErrorIs(t, err, core.ErrInvalidVertex)
	_, err = route.PathWeight(g, []int{9, 0})
	assert.ErrorIs(t, err, core.ErrInvalidVertex)
}

func TestNonTreeEdges(t *testing.T) {
	all := []core.Edge{
		{ID: 0, U: 0, V: 1, Weight: 4},
		{ID: 1, U: 0, V: 2, Weight: 3},
		{ID: 2, U: 1, V: 2, Weight: 1},
		{ID: 3, U: 2, V: 1, Weight: 9}, // parallel to a tree edge, reversed
		{ID: 4, U: 3, V: 3, Weight: 1}, // loop
	}
	tree := []core.Edge{all[2], all[1]}

	got := route.NonTreeEdges(all, tree)
	assert.Equal(t, []core.Edge{all[0], all[4]}, got)

	assert.Empty(t, route.NonTreeEdges(nil, tree))
	assert.Equal(t, all, route.NonTreeEdges(all, nil))
}

func TestSortEdges(t *testing.T) {
	edges := []core.Edge{
		{ID: 0, U: 4, V: 3, Weight: 2},
		{ID: 1, U: 2, V: 0, Weight: 2},
		{ID: 2, U: 1, V: 2, Weight: 1},
		{ID: 3, U: 0, V: 2, Weight: 2},
	}
	route.SortEdges(edges)

	ids := make([]int, len(edges))
	for i, e := range edges {
		ids[i] = e.ID
	}
	assert.Equal(t, []int{2, 1, 3, 0}, ids)
}

func TestLabeled(t *testing.T) {
	names := []string{"A", "B", "C"}
	got := route.Labeled([]int{0, 2, 1}, func(i int) string { return names[i] })
	assert.Equal(t, []string{"A", "C", "B"}, got)
}

func ExampleReconstruct() {
	prev := []int{core.NoVertex, 2, 0, 1}
	path, err := route.Reconstruct(prev, 0, 3)
	fmt.Println(path, err)

	_, err = route.Reconstruct([]int{core.NoVertex, core.NoVertex}, 0, 1)
	fmt.Println(err)
	// Output:
	// [0 2 1 3] <nil>
	// route: 0 → 1: route: target unreachable from source
}
