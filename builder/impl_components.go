// SPDX-License-Identifier: MIT
// Package: dprim/builder
//
// impl_components.go — implementation of the Components(sizes...) constructor.
//
// Contract:
//   • Every size ≥ 1 (else ErrTooFewVertices); Σ sizes == n (else ErrConstructFailed).
//   • Block k covers the contiguous vertices after blocks 0..k-1 and is complete.
//   • No edge crosses blocks, so two or more sizes give a disconnected graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dprim/matrix"
)

const methodComponents = "Components"

// Components returns a Constructor that builds disjoint complete blocks.
func Components(sizes ...int) Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		total := 0
		for _, s := range sizes {
			if err := validateMin(methodComponents, "size", s, 1); err != nil {
				return err
			}
			total += s
		}
		if total != m.Rows() {
			return fmt.Errorf("%s: sizes sum to %d, want %d: %w", methodComponents, total, m.Rows(), ErrConstructFailed)
		}

		offset := 0
		var i, j int
		for _, s := range sizes {
			for i = offset; i < offset+s; i++ {
				for j = i + 1; j < offset+s; j++ {
					if err := setEdge(methodComponents, m, i, j, cfg.weight()); err != nil {
						return err
					}
				}
			}
			offset += s
		}

		return nil
	}
}
