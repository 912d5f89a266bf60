// Package core provides the fixed-size, integer-indexed Graph store that every
// lvroute engine reads from.
//
// The Graph G = (V,E) is undirected and weighted:
//
//   - Vertices are dense integers 0..n-1, fixed at construction (NewGraph(n)).
//     Labels such as station names are mapped to indices at the boundary
//     (see package edgelist), never inside the algorithms.
//   - Edges carry a float64 weight and a dense edge ID assigned in insertion order.
//   - Adjacency is symmetric: AddEdge(u,v,w) makes v reachable from u and u from v
//     with the same weight. A self-loop appears once in its vertex's list.
//   - Parallel edges are stored independently; consumers decide which one wins.
//
// Why a dense store?
//
//   - Distance and predecessor arrays become plain slices indexed by vertex.
//   - Iteration order is insertion order, so tie-breaking downstream is deterministic.
//   - A store built once and then only read can serve concurrent queries without locks
//     beyond a short read-lock snapshot of the adjacency slice header.
//
// Configuration Options (GraphOption):
//
//	– WithNonNegativeWeights()
//	    Declares the store for shortest-path use. AddEdge then rejects w < 0
//	    with ErrInvalidWeight. Without it, negative weights are accepted (MST
//	    tolerates them) and the shortest-path engine rejects them at query time.
//
//	– WithoutLoops()
//	    Rejects self-loops with ErrLoopNotAllowed. By default loops are stored;
//	    algorithms never loop forever on them.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) (*Graph, error)       // O(n)
//	AddEdge(u, v int, w float64) (edgeID int, err error)       // O(1) amortized
//	Neighbors(u int) (iter.Seq2[int, float64], error)          // lazy, O(1) to obtain
//	Incident(u int) ([]Arc, error)                             // O(deg(u))
//	Edges() []Edge                                             // O(E), insertion order
//	Edge(id int) (Edge, error)                                 // O(1)
//	Degree(u int) (int, error)                                 // O(1)
//	VertexCount(), EdgeCount(), HasVertex(u), MinWeight()      // O(1)
//	Stats() GraphStats                                         // O(E)
//
// Errors:
//
//	ErrInvalidVertexCount – n < 0 passed to NewGraph.
//	ErrInvalidVertex      – vertex index outside [0, n).
//	ErrInvalidWeight      – NaN/±Inf weight, or negative weight on a non-negative store.
//	ErrLoopNotAllowed     – self-loop on a store built WithoutLoops().
//	ErrEdgeNotFound       – edge ID outside [0, EdgeCount()).
package core
