// Package dfs provides depth-first cycle detection over a core.Graph.
//
// What
//
//   - FindCycle: one cycle as a closed vertex sequence, or nil for a forest.
//   - Acyclic:   boolean form of FindCycle.
//   - CheckForest: build a store from an edge slice and reject any cycle with
//     ErrCycleDetected. The spanning-forest engines and the oracle report use
//     it to confirm that a result has no cycle.
//
// Undirected semantics
//
//	The edge used to reach a vertex is skipped by ID, not by endpoint, so a
//	parallel edge back to the parent closes a 2-cycle and a self-loop closes
//	a 1-cycle ([v, v]).
//
// Determinism
//
//	Roots are tried in ascending vertex order and arcs in insertion order.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the state slice and the explicit stack.
//
// Errors
//
//   - ErrGraphNil      if the graph pointer is nil.
//   - ErrCycleDetected from CheckForest when the edges contain a cycle.
package dfs
