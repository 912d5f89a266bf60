// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, and visit order, plus the connected-component
// partition built on top of it.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per-vertex hop distance from start, -1 when unreached
//   - Parent: per-vertex predecessor in the BFS tree, core.NoVertex otherwise
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual arcs via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Components / ComponentCount partition the whole vertex set.
//
// Edge weights do not affect the traversal; they are only passed to the
// neighbor filter. Spanning-forest code uses ComponentCount to cross-check
// its own component bookkeeping.
//
// Determinism
//
//	core.Graph.Neighbors yields arcs in insertion order, and BFS enqueues
//	neighbors in that order, so the visit sequence is fully reproducible.
//	Components are ordered by lowest member with members ascending.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int, w float64) bool { return w < 10 }),
//	)
//	path, err := res.PathTo(4)
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - core.ErrInvalidVertex if the start vertex is outside [0, n).
//   - ErrOptionViolation   if an Option is invalid (e.g. negative MaxDepth).
//   - The context's error on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
