// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge and Arc types, sentinel errors, NewGraph.

package core

import (
	"errors"
	"math"
	"sync"
)

// NoVertex marks the absence of a vertex, e.g. the predecessor of the source
// or of an unreached vertex.
const NoVertex = -1

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertexCount indicates NewGraph was called with n < 0.
	ErrInvalidVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrInvalidVertex indicates a vertex index outside [0, n).
	ErrInvalidVertex = errors.New("core: invalid vertex")

	// ErrInvalidWeight indicates a weight rejected by the store: NaN or ±Inf always,
	// negative values when the store was declared WithNonNegativeWeights.
	ErrInvalidWeight = errors.New("core: invalid weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEdgeNotFound indicates an edge ID outside [0, EdgeCount()).
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge is one undirected connection {U, V} with a weight.
//
// ID is the dense insertion index of the edge within its Graph. U and V keep
// the order they were inserted with; use Ends for the normalized pair.
type Edge struct {
	// ID is the insertion index (0, 1, 2, ...).
	ID int

	// U and V are the endpoints as passed to AddEdge.
	U, V int

	// Weight is the cost of traversing the edge in either direction.
	Weight float64
}

// Ends returns the endpoint pair with the lower vertex first.
func (e Edge) Ends() (lo, hi int) {
	if e.U <= e.V {
		return e.U, e.V
	}

	return e.V, e.U
}

// Other returns the endpoint opposite x. For a self-loop it returns x.
// If x is not an endpoint of e, NoVertex is returned.
func (e Edge) Other(x int) int {
	switch x {
	case e.U:
		return e.V
	case e.V:
		return e.U
	default:
		return NoVertex
	}
}

// IsLoop reports whether both endpoints coincide.
func (e Edge) IsLoop() bool { return e.U == e.V }

// Arc is one entry of a vertex's adjacency list: the neighbor reached,
// the weight paid, and the ID of the underlying Edge.
type Arc struct {
	To     int
	Weight float64
	EdgeID int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithNonNegativeWeights declares the store for shortest-path use:
// AddEdge rejects negative weights with ErrInvalidWeight.
func WithNonNegativeWeights() GraphOption {
	return func(g *Graph) { g.nonNegative = true }
}

// WithoutLoops makes AddEdge reject self-loops with ErrLoopNotAllowed.
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = false }
}

// Graph is an undirected, weighted graph over the vertices 0..n-1.
//
// mu serializes mutations; readers hold it only while taking a snapshot of an
// adjacency slice header. Existing Arc values are never rewritten, so a
// snapshot stays valid after later appends.
type Graph struct {
	mu sync.RWMutex // guards edges, adj and minWeight

	// Configuration flags (immutable after NewGraph)
	n           int  // vertex count
	nonNegative bool // reject negative weights
	allowLoops  bool // accept self-loops

	// Storage
	edges     []Edge  // edge catalog, index == Edge.ID
	adj       [][]Arc // adj[u] in insertion order
	minWeight float64 // smallest weight seen, +Inf when empty
}

// NewGraph creates an empty Graph over n vertices numbered 0..n-1.
// By default, weights of any sign are accepted and self-loops are stored.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrInvalidVertexCount
	}
	g := &Graph{
		n:          n,
		allowLoops: true,
		adj:        make([][]Arc, n),
		minWeight:  math.Inf(1),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// MustGraph is NewGraph for fixtures with a literal vertex count; it panics on error.
func MustGraph(n int, opts ...GraphOption) *Graph {
	g, err := NewGraph(n, opts...)
	if err != nil {
		panic(err)
	}

	return g
}
