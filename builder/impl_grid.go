// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood.
//   • Cell (r,c) has local index r*cols+c (row-major).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each cell in row-major order emit Right then Bottom where present.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import "github.com/katalvlaran/lvroute/core"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := checkMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cell := r*cols + c
				if c+1 < cols { // Right
					if err := addEdge(g, cfg, methodGrid, cell, cell+1); err != nil {
						return err
					}
				}
				if r+1 < rows { // Bottom
					if err := addEdge(g, cfg, methodGrid, cell, cell+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
