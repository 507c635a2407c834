// SPDX-License-Identifier: MIT
// Package: dprim/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildMatrix(n, bopts, cons...). Creates an n×n zero matrix, resolves cfg, runs cons in order.
//   - Constructors only ADD edges; later constructors overwrite a pair an earlier one set.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same n/options/seed and constructor order ⇒ identical matrices.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dprim/matrix"
)

// Constructor applies a deterministic mutation to a square adjacency matrix
// using the resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Keep the matrix symmetric with a zero diagonal.
//   - Write only positive weights (0 is reserved for "no edge").
//   - Preserve determinism for the same config and call order.
type Constructor func(m *matrix.Dense, cfg builderConfig) error

// BuildMatrix creates an n×n zero matrix, resolves the builder configuration
// from bopts and applies all constructors in order. Any constructor error is
// wrapped with the context "BuildMatrix: %w" and returned immediately.
//
// Errors:
//   - ErrTooFewVertices when n < 1.
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor sentinel, wrapped.
//
// Complexity: O(n²) allocation + Σ cost of each constructor.
func BuildMatrix(n int, bopts []BuilderOption, cons ...Constructor) (*matrix.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("BuildMatrix: n=%d: %w", n, ErrTooFewVertices)
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("BuildMatrix: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMatrix: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMatrix: %w", err)
		}
	}

	return m, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Complete()             every pair {i,j}, i<j.                          impl_complete.go
// Path() / Cycle()       i—i+1 (and n−1—0 for Cycle, n ≥ 3).             impl_path.go
// Star(center)           center—every other vertex.                      impl_star.go
// Grid(rows, cols)       4-neighbourhood lattice, rows·cols == n.         impl_grid.go
// RandomSparse(p)        each pair independently with probability p.     impl_random_sparse.go
// RandomConnected(p)     random spanning tree + RandomSparse(p).         impl_random_sparse.go
// Components(sizes...)   disjoint complete blocks, Σ sizes == n.         impl_components.go
// FromEdges(edges...)    explicit weighted edge list.                    impl_edges.go

// setEdge writes w to (u,v) and (v,u), checking the weight policy.
func setEdge(method string, m *matrix.Dense, u, v int, w int64) error {
	if w < 1 {
		return fmt.Errorf("%s: edge (%d,%d) weight %d: %w", method, u, v, w, ErrInvalidWeight)
	}
	if u == v {
		return fmt.Errorf("%s: self-loop at %d: %w", method, u, ErrConstructFailed)
	}
	if err := m.SetSymmetric(u, v, w); err != nil {
		return fmt.Errorf("%s: edge (%d,%d): %w", method, u, v, err)
	}

	return nil
}
