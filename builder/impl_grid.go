// SPDX-License-Identifier: MIT
// Package: dprim/builder
//
// impl_grid.go — implementation of the Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 (else ErrTooFewVertices).
//   • rows·cols must equal n (else ErrConstructFailed).
//   • Vertex index of cell (r,c) is r·cols + c (row-major).
//   • For each cell emit Right then Bottom neighbour if present.
//
// Complexity: O(rows·cols) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dprim/matrix"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal lattice.
func Grid(rows, cols int) Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		// 1) Validate parameters early.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if rows*cols != m.Rows() {
			return fmt.Errorf("%s: %dx%d cells for %d vertices: %w", methodGrid, rows, cols, m.Rows(), ErrConstructFailed)
		}

		// 2) Emit edges in row-major order.
		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := setEdge(methodGrid, m, u, u+1, cfg.weight()); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := setEdge(methodGrid, m, u, u+cols, cfg.weight()); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
