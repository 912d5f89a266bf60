// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(n, gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Map every local index through cfg.idFn before touching the store.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph over n vertices with graph options
// gopts, resolves the builder configuration from bopts, and applies all
// constructors in order. Any error is wrapped with the context "BuildGraph: %w"
// and returned immediately; no partial graph is returned.
//
// Constructors share one RNG stream, so composing RandomSparse twice draws
// two different samples.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// At shifts c's vertices by offset on top of the configured mapping, so several
// topologies can be placed side by side in one store:
//
//	BuildGraph(6, nil, nil, Cycle(3), At(3, Cycle(3))) // two disjoint triangles
func At(offset int, c Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("At(%d): nil constructor: %w", offset, ErrConstructFailed)
		}
		base := cfg.idFn
		cfg.idFn = func(idx int) int { return base(idx) + offset }

		return c(g, cfg)
	}
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure over local indices 0..k-1.
// Edges are emitted in a stable, documented order and weighted by cfg.weightFn.

// Path builds a simple path P_n (n ≥ 2): i - i+1.
//func Path(n int) Constructor

// Cycle builds an n-vertex simple cycle C_n (n ≥ 3).
//func Cycle(n int) Constructor

// Star builds a star with center 0 and n-1 leaves (n ≥ 2).
//func Star(n int) Constructor

// Complete builds the complete simple graph K_n (n ≥ 1).
//func Complete(n int) Constructor

// Grid builds an R×C 4-neighborhood grid, local index r*C+c (row-major).
//func Grid(rows, cols int) Constructor

// RandomSparse builds an Erdős–Rényi graph G(n, p). Requires an RNG unless p ∈ {0,1}.
//func RandomSparse(n int, p float64) Constructor
