// Package builder provides deterministic generators of dense adjacency
// matrices: the fixtures, benchmarks and `dprim gen` inputs of this module.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildMatrix(n, opts, cons...): allocate n×n, apply constructors in order.
//     – Constructor:       func(*matrix.Dense, builderConfig) error.
//   - Topologies (Constructor factories):
//     – Complete, Path, Cycle, Star, Grid.
//     – RandomSparse (Erdős–Rényi), RandomConnected (spanning tree + sparse).
//     – Components (disjoint complete blocks, for disconnected inputs).
//     – FromEdges (explicit edge list, for hand-made scenarios and ties).
//   - Configuration primitives:
//     – BuilderOption:     WithSeed, WithRand, WithWeightFn, WithConstantWeight, WithUniformWeight.
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform integer ∼U{min..max}.
//     – From1To100WeightFn.
//
// Guarantees:
//
//   - Every produced matrix is square, symmetric, has a zero diagonal and
//     positive weights wherever an edge exists (0 = no edge).
//   - Same n, options, seed and constructor order ⇒ identical matrix.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors;
//     constructors return wrapped sentinel errors and never panic.
package builder
