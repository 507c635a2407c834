// SPDX-License-Identifier: MIT
// Package: dprim/builder
//
// impl_edges.go — implementation of the FromEdges(edges...) constructor.
//
// Contract:
//   • Each edge is written symmetrically with its own weight (cfg.weightFn unused).
//   • Weight ≥ 1 (else ErrInvalidWeight); endpoints in range and distinct
//     (else ErrConstructFailed).
//   • Edges are applied in argument order; a repeated pair keeps the last weight.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dprim/matrix"
)

const methodFromEdges = "FromEdges"

// Edge is an explicit weighted edge for FromEdges.
type Edge struct {
	U, V int
	W    int64
}

// FromEdges returns a Constructor that writes the given edges.
func FromEdges(edges ...Edge) Constructor {
	return func(m *matrix.Dense, _ builderConfig) error {
		n := m.Rows()
		for _, e := range edges {
			if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
				return fmt.Errorf("%s: edge (%d,%d) outside %d vertices: %w", methodFromEdges, e.U, e.V, n, ErrConstructFailed)
			}
			if err := setEdge(methodFromEdges, m, e.U, e.V, e.W); err != nil {
				return err
			}
		}

		return nil
	}
}
