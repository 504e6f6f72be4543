// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_grid.go: Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r, c) has index r*cols + c.
//   • Row-major scan; each cell links right, then down.
//
// Complexity:
//   • Time: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols 4-neighbour lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		addNodes(g, cfg, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					g.Connect(cfg.key(i), cfg.key(i+1), cfg.weight())
				}
				if r+1 < rows {
					g.Connect(cfg.key(i), cfg.key(i+cols), cfg.weight())
				}
			}
		}

		return nil
	}
}
