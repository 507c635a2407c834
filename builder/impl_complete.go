// SPDX-License-Identifier: MIT
// Package: dprim/builder
//
// impl_complete.go — implementation of the Complete() constructor.
//
// Contract:
//   • n ≥ 1 (a single vertex has no edges).
//   • Emits each unordered pair {i,j} with i<j exactly once, mirrored to (j,i).
//   • Weight policy: cfg.weightFn(cfg.rng), must be ≥ 1.
//
// Complexity:
//   • Time: O(n²) edges emission. Space: O(1) extra.
//
// Determinism:
//   • Pair order: lexicographic by (i,j), i<j.

package builder

import "github.com/katalvlaran/dprim/matrix"

const methodComplete = "Complete"

// Complete returns a Constructor that builds the complete graph K_n over the
// whole matrix.
func Complete() Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		n := m.Rows()
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err := setEdge(methodComplete, m, i, j, cfg.weight()); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
