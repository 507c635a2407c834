// SPDX-License-Identifier: MIT
// Package: dprim/builder
//
// impl_path.go — implementation of Path() and Cycle() constructors.
//
// Contract:
//   • Path: n ≥ 2; edges (i-1, i) for i = 1..n-1.
//   • Cycle: n ≥ 3; Path plus the closing edge (n-1, 0).
//   • Deterministic edge emission order by increasing i.

package builder

import "github.com/katalvlaran/dprim/matrix"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path 0—1—…—(n−1).
func Path() Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		n := m.Rows()
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}

		return addPath(methodPath, m, cfg)
	}
}

// Cycle returns a Constructor that builds the ring 0—1—…—(n−1)—0.
func Cycle() Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		n := m.Rows()
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		if err := addPath(methodCycle, m, cfg); err != nil {
			return err
		}

		return setEdge(methodCycle, m, n-1, 0, cfg.weight())
	}
}

func addPath(method string, m *matrix.Dense, cfg builderConfig) error {
	for i := 1; i < m.Rows(); i++ {
		if err := setEdge(method, m, i-1, i, cfg.weight()); err != nil {
			return err
		}
	}

	return nil
}
