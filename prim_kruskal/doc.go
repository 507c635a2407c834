// Package prim_kruskal provides two sequential algorithms for the Minimum Spanning Tree (MST)
// of a dense, undirected, weighted graph given as a *matrix.Dense adjacency matrix
// (entry 0 = no edge): Prim’s algorithm and Kruskal’s algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Why here:
//     The distributed solver in package dprim must agree with a plain single-process answer.
//     These implementations are that reference, and a CLI method in their own right.
//
// Algorithms Provided
//
//   - Prim(m *matrix.Dense, root int) ([]Edge, int64, error)
//
//   - Strategy: keep best[v], the cheapest edge from the tree to each outside vertex; pick the
//     minimum by array scan, then relax through the new vertex's row.
//
//   - Complexity: O(V²) time, O(V) space. On a dense matrix this beats a heap.
//
//   - Kruskal(m *matrix.Dense) ([]Edge, int64, error)
//
//   - Strategy: sort the upper-triangle edges by weight and merge components with a
//     disjoint-set forest (path compression, union by rank).
//
//   - Complexity: O(V² log V) time, O(V²) space for the edge list.
//
//   - Determinism: stable sort over row-major edge order, so ties break predictably.
//
// Error Conditions
//
//	- ErrInvalidGraph    nil, non-square, asymmetric or negative matrix (wraps the matrix error).
//	- ErrRootOutOfRange  Prim root not in [0, n).
//	- ErrDisconnected    no spanning tree exists.
//	- ErrUnknownMethod   Compute with a Method other than MethodPrim or MethodKruskal.
//
// Both algorithms return the same total weight on every connected input; the edge sets agree
// whenever edge weights are distinct.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
