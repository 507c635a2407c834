// Package matrix holds the weighted adjacency matrix that every MST worker
// reads from.
//
// The matrix package provides:
//
//   - Dense, a square-or-rectangular int64 matrix stored in one flat row-major
//     buffer with an explicit stride (offset = i*Stride() + j). Row blocks are
//     cut from it for distribution to workers.
//   - Validators that enforce the adjacency contract: square, symmetric and
//     non-negative, with 0 reserved for "no edge".
//   - A streaming text reader/writer for the N-lines-of-N-integers file format.
//     The vertex count is discovered while parsing; nothing shells out.
//
// Dense is not safe for concurrent mutation. Workers only read their own row
// block after distribution, so no locking is needed on the hot path.
package matrix
