// SPDX-License-Identifier: MIT
package edgelist

import (
	"errors"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors for loading edge lists.
var (
	// ErrMalformedRow indicates a row with too few fields or an empty endpoint.
	ErrMalformedRow = errors.New("edgelist: malformed row")

	// ErrBadWeight indicates a weight that does not parse as a finite number.
	ErrBadWeight = errors.New("edgelist: bad weight")

	// ErrUnknownLabel indicates a name missing from the label table.
	ErrUnknownLabel = errors.New("edgelist: unknown label")

	// ErrDuplicateLabel indicates an explicit label list with a repeated name.
	ErrDuplicateLabel = errors.New("edgelist: duplicate label")
)

// LabeledEdge is one row of an edge list.
type LabeledEdge struct {
	A, B   string
	Weight float64

	// Line is the 1-based source line, 0 for edges built in code.
	Line int
}

// Network is a loaded edge list: the integer graph, its label table, and
// the rows it was built from. Graph edge i corresponds to Edges[i].
type Network struct {
	Graph  *core.Graph
	Labels *Labels
	Edges  []LabeledEdge
}

// Vertex is shorthand for n.Labels.Index(name).
func (n *Network) Vertex(name string) (int, error) {
	return n.Labels.Index(name)
}

// Label converts a graph edge back to names, lower endpoint first.
func (n *Network) Label(e core.Edge) LabeledEdge {
	lo, hi := e.Ends()

	return LabeledEdge{A: n.Labels.Name(lo), B: n.Labels.Name(hi), Weight: e.Weight}
}

// Option configures Load and FromEdges.
type Option func(*options)

type options struct {
	header bool
	comma  rune
	gopts  []core.GraphOption
}

func defaultOptions() options {
	return options{header: true, comma: ','}
}

// WithoutHeader treats the first row as data.
func WithoutHeader() Option {
	return func(o *options) { o.header = false }
}

// WithComma sets the field delimiter (default ',').
func WithComma(r rune) Option {
	return func(o *options) { o.comma = r }
}

// WithGraphOptions forwards options to core.NewGraph, e.g.
// core.WithNonNegativeWeights() for a shortest-path store.
func WithGraphOptions(gopts ...core.GraphOption) Option {
	return func(o *options) { o.gopts = append(o.gopts, gopts...) }
}
