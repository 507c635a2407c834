// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It reads the upper triangle of a dense adjacency matrix and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"math"
	"sort"

	"github.com/katalvlaran/dprim/matrix"
)

// Kruskal computes the Minimum Spanning Tree (MST) of the graph held in the
// adjacency matrix m. It uses a disjoint-set (union-find) data structure with
// path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph  : m is nil, non-square, asymmetric or holds negative weights.
//   - ErrDisconnected  : the graph is not fully connected.
//
// Steps:
//  1. Validate m. A single vertex yields an empty MST.
//  2. Collect edges (i, j, w) with i < j and w > 0; the diagonal is ignored.
//  3. Stable sort by ascending weight; ties keep row-major order.
//  4. Union endpoints that are in different sets, keeping the edge.
//  5. Stop at |V|−1 edges. Fewer after the loop → ErrDisconnected.
//
// Complexity: O(V² log V) for a dense graph. Memory: O(V²) for the edge list.
func Kruskal(m *matrix.Dense) ([]Edge, int64, error) {
	// 1. Validate.
	if err := validate(m); err != nil {
		return nil, 0, err
	}
	n := m.Rows()
	if n == 1 {
		return []Edge{}, 0, nil
	}

	// 2. Collect the upper triangle.
	data, stride := m.Data(), m.Stride()
	edges := make([]Edge, 0, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if w := data[i*stride+j]; w > 0 {
				edges = append(edges, Edge{From: i, To: j, Weight: w})
			}
		}
	}

	// 3. Sort by weight.
	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].Weight < edges[b].Weight
	})

	// 4. Disjoint-set forest.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}

		return true
	}

	// 5. Build MST.
	mst := make([]Edge, 0, n-1)
	var total int64
	for _, e := range edges {
		if !union(e.From, e.To) {
			continue
		}
		if total > math.MaxInt64-e.Weight {
			return nil, 0, ErrTotalOverflow
		}
		mst = append(mst, e)
		total += e.Weight
		if len(mst) == n-1 {
			break
		}
	}
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
