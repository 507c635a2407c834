// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It works directly on a dense adjacency matrix, where an array scan beats a heap.
package prim_kruskal

import (
	"math"

	"github.com/katalvlaran/dprim/matrix"
)

// Prim computes the Minimum Spanning Tree (MST) of the graph held in the
// adjacency matrix m, growing outwards from root. A zero entry means no edge.
// Edges are returned in the order they join the tree.
//
// Error Conditions:
//   - ErrInvalidGraph    : m is nil, non-square, asymmetric or holds negative weights.
//   - ErrRootOutOfRange  : root is not in [0, n).
//   - ErrDisconnected    : some vertex cannot be reached from root.
//
// Steps:
//  1. Validate m and root.
//  2. best[v] = cheapest known edge from the tree to v, parent[v] its tree end.
//  3. Repeat n−1 times:
//     a. pick the unvisited v with the smallest finite best[v] (lowest index on ties);
//     b. none left → ErrDisconnected;
//     c. add (parent[v], v), then relax best[] through row v.
//
// Complexity: O(V²) time, O(V) memory.
func Prim(m *matrix.Dense, root int) ([]Edge, int64, error) {
	// 1. Validate input.
	if err := validate(m); err != nil {
		return nil, 0, err
	}
	n := m.Rows()
	if root < 0 || root >= n {
		return nil, 0, ErrRootOutOfRange
	}

	// 2. Initialize frontier arrays.
	const inf = int64(math.MaxInt64)
	data, stride := m.Data(), m.Stride()
	inTree := make([]bool, n)
	best := make([]int64, n)
	parent := make([]int, n)
	for v := 0; v < n; v++ {
		best[v] = inf
		parent[v] = -1
	}
	inTree[root] = true
	relax := func(u int) {
		row := data[u*stride : u*stride+n]
		for v, w := range row {
			if w > 0 && !inTree[v] && w < best[v] {
				best[v] = w
				parent[v] = u
			}
		}
	}
	relax(root)

	// 3. Main loop: one vertex per iteration.
	mst := make([]Edge, 0, n-1)
	var total int64
	for len(mst) < n-1 {
		next := -1
		for v := 0; v < n; v++ {
			if !inTree[v] && best[v] < inf && (next < 0 || best[v] < best[next]) {
				next = v
			}
		}
		if next < 0 {
			return nil, 0, ErrDisconnected
		}
		if total > math.MaxInt64-best[next] {
			return nil, 0, ErrTotalOverflow
		}
		inTree[next] = true
		mst = append(mst, Edge{From: parent[next], To: next, Weight: best[next]})
		total += best[next]
		relax(next)
	}

	return mst, total, nil
}
