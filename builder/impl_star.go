// SPDX-License-Identifier: MIT
// Package: dprim/builder
//
// impl_star.go — implementation of the Star(center) constructor.
//
// Contract:
//   • n ≥ 2, 0 ≤ center < n (else ErrConstructFailed).
//   • Emits (center, leaf) for every other vertex, leaves in ascending order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dprim/matrix"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that connects center to every other vertex.
func Star(center int) Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		n := m.Rows()
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		if center < 0 || center >= n {
			return fmt.Errorf("%s: center=%d of %d: %w", methodStar, center, n, ErrConstructFailed)
		}
		for leaf := 0; leaf < n; leaf++ {
			if leaf == center {
				continue
			}
			if err := setEdge(methodStar, m, center, leaf, cfg.weight()); err != nil {
				return err
			}
		}

		return nil
	}
}
