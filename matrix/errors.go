// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with %w) and tests
// check them via errors.Is. No function panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a buffer or row whose length disagrees with
	// the declared shape (including ragged rows in an input file).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that m[i][j] != m[j][i] for some pair.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNegativeWeight signals a negative entry; weights are non-negative
	// and 0 encodes "no edge".
	ErrNegativeWeight = errors.New("matrix: negative edge weight")

	// ErrWeightRange signals an entry equal to math.MaxInt64, which is reserved
	// as the "no edge" marker of the MST engine.
	ErrWeightRange = errors.New("matrix: edge weight exceeds MaxWeight")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSyntax indicates a token in an input stream that is not an integer.
	ErrSyntax = errors.New("matrix: malformed input")

	// ErrEmptyInput indicates an input stream with no matrix rows.
	ErrEmptyInput = errors.New("matrix: empty input")
)
