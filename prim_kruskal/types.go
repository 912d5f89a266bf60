// Package prim_kruskal defines configuration options, sentinel errors and the
// Forest result for spanning-tree computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrDisconnected indicates that the graph has more than one connected
// component. Kruskal and Prim never return it (they build a forest); Compute
// returns it only when WithRequireConnected is set.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodKruskal or MethodPrim.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using the frontier).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Forest is a minimum spanning forest: one minimum spanning tree per
// connected component of the input.
//
// Invariant: len(Edges) == Vertices - Components.
type Forest struct {
	// Vertices is the vertex count of the input graph.
	Vertices int

	// Components is the number of trees (isolated vertices included).
	Components int

	// Edges in the order the algorithm selected them.
	Edges []core.Edge

	// Weight is the sum of Edges' weights.
	Weight float64
}

// Spanning reports whether the forest is a single tree covering every vertex.
// The empty graph counts as spanning.
func (f *Forest) Spanning() bool {
	return f.Components <= 1
}

// TotalWeight returns the sum of the weights of edges.
// Complexity: O(len(edges)).
func TotalWeight(edges []core.Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}

// MSTOptions configures which algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method           string - one of MethodPrim or MethodKruskal.
//	Root             int    - start vertex for Prim; ignored by Kruskal.
//	RequireConnected bool   - fail with ErrDisconnected instead of returning a proper forest.
//
// Complexity: O((V+E) log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	Method           string
	Root             int
	RequireConnected bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's
// algorithm; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithRequireConnected makes Compute reject disconnected inputs with ErrDisconnected.
func WithRequireConnected() Option {
	return func(opts *MSTOptions) {
		opts.RequireConnected = true
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method           = MethodKruskal
//	– Root             = 0 (ignored by Kruskal)
//	– RequireConnected = false
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute selects and runs the spanning-tree algorithm based on opts.
//
//	– MethodKruskal: calls Kruskal(g).
//	– MethodPrim:    calls Prim(g, Root).
//	– Otherwise:     returns ErrUnknownMethod.
//
// With RequireConnected, a result with more than one component is discarded
// and ErrDisconnected is returned.
func Compute(g *core.Graph, opts ...Option) (*Forest, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		f   *Forest
		err error
	)
	switch cfg.Method {
	case MethodKruskal:
		f, err = Kruskal(g)
	case MethodPrim:
		f, err = Prim(g, cfg.Root)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
	if err != nil {
		return nil, err
	}

	if cfg.RequireConnected && !f.Spanning() {
		return nil, fmt.Errorf("%w: %d components", ErrDisconnected, f.Components)
	}

	return f, nil
}
