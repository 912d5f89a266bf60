// SPDX-License-Identifier: MIT

// Package dfs implements cycle detection for undirected core.Graphs.
//
// FindCycle runs an iterative depth-first search with three-color marking.
// A back-edge to a Gray vertex closes a cycle; the tree edge leading into a
// vertex is skipped by edge ID rather than by neighbor, so two parallel
// edges form a 2-cycle and a self-loop forms a 1-cycle.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// frame is one entry of the explicit DFS stack.
type frame struct {
	v      int
	viaID  int // edge ID used to enter v, core.NoVertex for a root
	arcs   []core.Arc
	cursor int
}

// FindCycle returns one cycle of g as a closed vertex sequence
// [v0, v1, ..., v0], or nil when g is a forest. Roots are tried in
// ascending vertex order and arcs in insertion order, so the result is
// deterministic.
func FindCycle(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.VertexCount()
	state := make([]int, n)
	stack := make([]frame, 0, n)

	for root := 0; root < n; root++ {
		if state[root] != White {
			continue
		}
		stack = push(g, stack, state, root, core.NoVertex)

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.cursor == len(top.arcs) {
				// Backtrack: all descendants explored
				state[top.v] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			a := top.arcs[top.cursor]
			top.cursor++
			if a.EdgeID == top.viaID {
				continue
			}

			switch state[a.To] {
			case White:
				stack = push(g, stack, state, a.To, a.EdgeID)
			case Gray:
				return closeCycle(stack, a.To), nil
			}
		}
	}

	return nil, nil
}

// Acyclic reports whether g is a forest.
func Acyclic(g *core.Graph) (bool, error) {
	cyc, err := FindCycle(g)
	if err != nil {
		return false, err
	}

	return cyc == nil, nil
}

// CheckForest verifies that edges form a forest over n vertices. It returns
// ErrCycleDetected, wrapped with the offending cycle, when they do not.
func CheckForest(n int, edges []core.Edge) error {
	g, err := core.NewGraph(n)
	if err != nil {
		return fmt.Errorf("dfs: %w", err)
	}
	for _, e := range edges {
		if _, err = g.AddEdge(e.U, e.V, e.Weight); err != nil {
			return fmt.Errorf("dfs: edge %d: %w", e.ID, err)
		}
	}
	cyc, err := FindCycle(g)
	if err != nil {
		return err
	}
	if cyc != nil {
		return fmt.Errorf("%w: %v", ErrCycleDetected, cyc)
	}

	return nil
}

func push(g *core.Graph, stack []frame, state []int, v, via int) []frame {
	state[v] = Gray
	arcs, err := g.Incident(v)
	if err != nil {
		// v comes from [0, n) or from an arc of the same store
		panic(err)
	}

	return append(stack, frame{v: v, viaID: via, arcs: arcs})
}

// closeCycle extracts the stack segment from start to the top and closes it.
func closeCycle(stack []frame, start int) []int {
	idx := len(stack) - 1
	for stack[idx].v != start {
		idx--
	}
	cyc := make([]int, 0, len(stack)-idx+1)
	for _, f := range stack[idx:] {
		cyc = append(cyc, f.v)
	}

	return append(cyc, start)
}
