// SPDX-License-Identifier: MIT
// Package: dprim/builder
//
// impl_random_sparse.go - RandomSparse(p) and RandomConnected(p) constructors.
//
// Canonical model:
//   - RandomSparse: Erdős–Rényi-like; include each unordered pair {i,j}, i<j,
//     independently with probability p.
//   - RandomConnected: first a uniformly shuffled random spanning tree (each
//     vertex of a random permutation attaches to a random earlier one), then
//     RandomSparse(p) on top. The result is connected for every p.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required when 0 < p < 1 (RandomSparse) and always for
//     RandomConnected with n ≥ 2 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(n) for the permutation.
//
// Determinism:
//   - Stable trial order: i asc, j asc (j>i). Fixed seed ⇒ identical matrix.

package builder

import "github.com/katalvlaran/dprim/matrix"

const (
	methodRandomSparse    = "RandomSparse"
	methodRandomConnected = "RandomConnected"
)

// RandomSparse returns a Constructor that samples every pair with probability p.
func RandomSparse(p float64) Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return wrapRand(methodRandomSparse)
		}

		return addSparse(methodRandomSparse, m, cfg, p)
	}
}

// RandomConnected returns a Constructor that samples a connected graph: a
// random spanning tree plus RandomSparse(p).
func RandomConnected(p float64) Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		if err := validateProbability(methodRandomConnected, p); err != nil {
			return err
		}
		n := m.Rows()
		if n < 2 {
			return nil
		}
		if cfg.rng == nil {
			return wrapRand(methodRandomConnected)
		}

		// 1) Spanning tree over a random permutation.
		perm := cfg.rng.Perm(n)
		for k := 1; k < n; k++ {
			u, v := perm[cfg.rng.Intn(k)], perm[k]
			if err := setEdge(methodRandomConnected, m, u, v, cfg.weight()); err != nil {
				return err
			}
		}

		// 2) Extra edges.
		return addSparse(methodRandomConnected, m, cfg, p)
	}
}

// addSparse runs the Bernoulli trials. A nil rng only reaches here with
// p ∈ {0,1}.
func addSparse(method string, m *matrix.Dense, cfg builderConfig, p float64) error {
	if p == MinProbability {
		return nil
	}
	n := m.Rows()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if cfg.rng != nil && p < MaxProbability && cfg.rng.Float64() >= p {
				continue
			}
			if err := setEdge(method, m, i, j, cfg.weight()); err != nil {
				return err
			}
		}
	}

	return nil
}
