// SPDX-License-Identifier: MIT
// Package: dprim/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, a block
// size) is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidWeight indicates that a weight function or explicit edge produced
// a weight < 1; 0 is the "no edge" marker and negatives are not allowed.
var ErrInvalidWeight = errors.New("builder: edge weight must be ≥ 1")

// ErrConstructFailed indicates that the requested topology does not fit the
// matrix (sizes that do not add up to n, self-loops, vertices out of range).
var ErrConstructFailed = errors.New("builder: construction failed")

// --- Implementation Notes ----------------------------------------------------
//
// Priority when multiple validations fail:
//    • ErrTooFewVertices       — size/domain checks first.
//    • ErrInvalidProbability   — then probability ranges.
//    • ErrNeedRandSource       — then RNG presence for stochastic builders.
//    • ErrConstructFailed      — shape does not fit the matrix.
//    • ErrInvalidWeight        — while emitting edges.

// wrapRand reports a missing RNG for method.
func wrapRand(method string) error {
	return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
}
