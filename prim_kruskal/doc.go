// Package prim_kruskal computes minimum spanning forests of an undirected,
// weighted *core.Graph with Prim's and Kruskal's algorithms.
//
// What & Why
//
//   - A minimum spanning forest holds, for every connected component of the
//     input, a spanning tree of that component of minimal total weight. Its
//     edge count is always n − components.
//   - In a route network the forest's complement is the set of connections
//     that can be closed without disconnecting any two stations that are
//     connected today (see route.NonTreeEdges).
//
// Algorithms Provided
//
//   - Kruskal(g) (*Forest, error)
//     Sort all edges by (weight, lower endpoint, higher endpoint, edge ID) and
//     sweep them through a DisjointSet. Self-loops are skipped; of several
//     parallel edges only the first in that order can be taken.
//     Time O(E log E), space O(V + E).
//
//   - Prim(g, start) (*Forest, error)
//     Grow a tree from start with the indexed frontier, keyed by the lightest
//     edge connecting each outside vertex to the tree. When the component is
//     exhausted, continue from the lowest-numbered uncovered vertex, so a
//     disconnected graph yields a forest as well. Equal-weight candidates are
//     resolved by lower edge ID.
//     Time O((V + E) log V), space O(V).
//
// Both return forests of identical total weight for the same input; the edge
// sets may differ only where weights tie. Negative weights are accepted.
//
// Compute(g, opts...) dispatches on WithMethod / WithRoot and can demand a
// single tree with WithRequireConnected.
//
// Error Conditions
//
//	- ErrNilGraph       – g is nil.
//	- core.ErrInvalidVertex (wrapped) – Prim start outside [0, n).
//	- ErrUnknownMethod  – Compute with a method other than "kruskal" or "prim".
//	- ErrDisconnected   – Compute with WithRequireConnected on a disconnected graph.
//
// A disconnected input is never an error for Kruskal or Prim themselves.
package prim_kruskal
