// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Local index 0 is the center; edges 0 - i for i = 1..n-1 in order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/lvroute/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with center 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
