// Package builder provides internal helper functions used by Constructor
// implementations.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// addEdge maps local indices i, j through cfg.idFn, draws one weight and
// inserts the edge. Store errors are wrapped with the method name.
// Complexity: O(1) amortized.
func addEdge(g *core.Graph, cfg builderConfig, method string, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// checkMin returns ErrTooFewVertices wrapped with context when got < min.
func checkMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}
