// SPDX-License-Identifier: MIT
package bfs

import (
	"slices"

	"github.com/katalvlaran/lvroute/core"
)

// Components partitions the vertices of g into connected components.
//
// Components are ordered by their lowest vertex and members are ascending,
// so the result is independent of insertion order. Isolated vertices form
// singleton components.
//
// Complexity: O(V + E) for the sweeps plus O(V log V) for sorting members.
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	seen := make([]bool, n)
	var out [][]int

	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		res, err := BFS(g, s)
		if err != nil {
			return nil, err
		}
		members := res.Order
		for _, v := range members {
			seen[v] = true
		}
		slices.Sort(members)
		out = append(out, members)
	}

	return out, nil
}

// ComponentCount returns the number of connected components of g; 0 for a
// nil or empty graph.
func ComponentCount(g *core.Graph) int {
	comps, err := Components(g)
	if err != nil {
		return 0
	}

	return len(comps)
}
