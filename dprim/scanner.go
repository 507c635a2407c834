package dprim

import (
	"github.com/katalvlaran/dprim/matrix"
	"github.com/katalvlaran/dprim/tree"
)

// Scan returns the cheapest edge from an in-tree row of chunk to a vertex
// outside the tree. Rows of chunk are the global vertices offset,
// offset+1, ...; zero entries are not edges. Ties keep the first edge in
// row-major order. The Owner field is left at -1 for the caller to fill.
//
// Complexity: O(chunk.Rows() · N), no allocation.
func Scan(chunk *matrix.Dense, offset int, state *tree.State) Candidate {
	best := Candidate{Weight: Infinity, Source: -1, Dest: -1, Owner: -1}
	if chunk == nil || state == nil {
		return best
	}

	n, stride := chunk.Cols(), chunk.Stride()
	data := chunk.Data()
	var i, c int
	for i = 0; i < chunk.Rows(); i++ {
		if !state.InTree(offset + i) {
			continue
		}
		row := data[i*stride : i*stride+n]
		for c = 0; c < n; c++ {
			w := row[c]
			if w <= 0 || w >= best.Weight || state.InTree(c) {
				continue
			}
			best.Weight, best.Source, best.Dest = w, i, c
		}
	}

	return best
}
