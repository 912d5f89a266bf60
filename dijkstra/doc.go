// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// over a core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra(g, source) returns a Result holding the Distance Array
//     (Dist[v], +Inf when unreachable) and the Predecessor Array
//     (Prev[v], core.NoVertex for the source and for unreached vertices).
//   - Every vertex is seeded into an indexed frontier (package frontier) at its
//     current distance; relaxations use true decrease-key, so the frontier
//     never holds stale entries and each vertex is extracted exactly once.
//   - Ties in distance are extracted by ascending vertex ID, and relaxation
//     uses strict "<", so the same input always yields the same predecessors.
//
// Options:
//
//   - WithMaxDistance(d): vertices farther than d stay unreached.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable.
//
// Negative weights are rejected with ErrNegativeWeight before any work begins.
// The store may hold them (the spanning-tree engine tolerates them); the check
// belongs to the query.
//
// Concurrency:
//
//   - A query never mutates the store. Many(ctx, g, sources, workers) runs
//     independent queries in parallel through an errgroup, each owning its own
//     Result and frontier.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
//
// Errors:
//
//   - ErrNilGraph:          nil graph.
//   - core.ErrInvalidVertex: source outside [0, n) (wrapped).
//   - ErrNegativeWeight:    a negative edge weight is present (wrapped with the edge).
//   - ErrBadMaxDistance / ErrBadInfThreshold: raised via panic by the option constructors.
//
// Result.PathTo rebuilds a route through package route.
package dijkstra
