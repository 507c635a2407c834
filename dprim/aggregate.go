package dprim

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/dprim/matrix"
	"github.com/katalvlaran/dprim/tree"
)

// Result is the spanning tree as agreed by the group.
type Result struct {
	Vertices int
	Edges    []Edge // in round order
	Total    int64
}

// Aggregate rebuilds the tree edges from state in visit order. It makes no
// decisions; the edges are exactly the ones every worker applied.
func Aggregate(state *tree.State) *Result {
	order := state.Order()
	res := &Result{
		Vertices: state.Size(),
		Edges:    make([]Edge, 0, len(order)),
		Total:    state.Total(),
	}
	for _, v := range order {
		res.Edges = append(res.Edges, Edge{From: state.Parent(v), To: v, Weight: state.Weight(v)})
	}

	return res
}

// Matrix renders the tree as a symmetric adjacency matrix.
func (r *Result) Matrix() (*matrix.Dense, error) {
	m, err := matrix.NewDense(r.Vertices, r.Vertices)
	if err != nil {
		return nil, err
	}
	for _, e := range r.Edges {
		if err = m.SetSymmetric(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// WriteEdges writes one "u v w" line per edge.
func (r *Result) WriteEdges(w io.Writer) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for _, e := range r.Edges {
		buf = strconv.AppendInt(buf[:0], int64(e.From), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(e.To), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, e.Weight, 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}
