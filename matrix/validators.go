// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for adjacency checks.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Square → Weights → Symmetry.

package matrix

import (
	"fmt"
	"math"
)

// MaxWeight is the largest edge weight an adjacency matrix may hold.
const MaxWeight int64 = math.MaxInt64 - 1

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
func ValidateSquare(m *Dense) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateWeights checks that every entry is in [0, MaxWeight].
// Assumes m is not nil. Reports the first offending coordinate.
func ValidateWeights(m *Dense) error {
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			if m.data[base+j] < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateWeights(%d,%d)", i, j), ErrNegativeWeight)
			}
			if m.data[base+j] > MaxWeight {
				return validatorErrorf(fmt.Sprintf("ValidateWeights(%d,%d)", i, j), ErrWeightRange)
			}
		}
	}

	return nil
}

// ValidateSymmetric checks m[i][j] == m[j][i] for all i<j.
// Assumes m is square and not nil.
func ValidateSymmetric(m *Dense) error {
	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m.data[i*n+j] != m.data[j*n+i] {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateAdjacency is the full contract for an MST input graph:
// non-nil, square, non-negative and symmetric.
// Complexity: O(n²).
func ValidateAdjacency(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateWeights(m); err != nil {
		return err
	}

	return ValidateSymmetric(m)
}
