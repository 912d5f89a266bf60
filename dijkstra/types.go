// SPDX-License-Identifier: MIT
// Package dijkstra defines the sentinel errors, options and Result type for
// the shortest-path engine.
//
// Options:
//
//	– MaxDistance:      vertices whose distance would exceed the cap stay unreached.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0 (raised via panic by the option).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (raised via panic by the option).
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/route"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero, a negative
	// value or NaN, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – cap on explored distances. Must be ≥ 0. Default +Inf (no cap).
// InfEdgeThreshold – edges with weight ≥ this value are impassable. Must be > 0.
// Default +Inf (no obstacles).
type Options struct {
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored
// and keep an infinite distance.
// Panics with ErrBadMaxDistance on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Panics with ErrBadInfThreshold on a value ≤ 0 or NaN.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result holds the Distance Array and Predecessor Array of one query.
//
// Dist[v] is +Inf and Prev[v] is core.NoVertex for every vertex that was not
// reached. Prev[Source] is always core.NoVertex.
type Result struct {
	Source int
	Dist   []float64
	Prev   []int
}

// Reachable reports whether v was reached from Source.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && !math.IsInf(r.Dist[v], 1)
}

// DistanceTo returns the shortest distance from Source to v, +Inf if unreachable.
func (r *Result) DistanceTo(v int) (float64, error) {
	if v < 0 || v >= len(r.Dist) {
		return 0, fmt.Errorf("dijkstra: vertex %d: %w", v, core.ErrInvalidVertex)
	}

	return r.Dist[v], nil
}

// PathTo returns the vertex sequence Source→…→v.
// Errors are those of route.Reconstruct, notably route.ErrUnreachable.
func (r *Result) PathTo(v int) ([]int, error) {
	return route.Reconstruct(r.Prev, r.Source, v)
}
