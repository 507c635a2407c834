package dprim_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/dprim/dprim"
	"github.com/katalvlaran/dprim/matrix"
	"github.com/katalvlaran/dprim/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	m := mustSquare(t, sample5)
	st, err := tree.New(5, 0)
	require.NoError(t, err)

	// Rows 0..2 as one chunk.
	chunk, err := m.RowBlock(0, 3)
	require.NoError(t, err)
	got := dprim.Scan(chunk, 0, st)
	assert.Equal(t, dprim.Candidate{Weight: 2, Source: 0, Dest: 1, Owner: -1}, got)

	// Rows 3..4: nothing in the tree yet.
	tail, err := m.RowBlock(3, 2)
	require.NoError(t, err)
	assert.False(t, dprim.Scan(tail, 3, st).Found())

	// After 0—1 joins, row 1 offers 3 to vertex 2; local source index is 1.
	require.NoError(t, st.Visit(0, 1, 2))
	assert.Equal(t, dprim.Candidate{Weight: 3, Source: 1, Dest: 2, Owner: -1}, dprim.Scan(chunk, 0, st))

	// Once 3 joins, the tail chunk sees 3—4 (9) as its own local row 0.
	require.NoError(t, st.Visit(0, 3, 6))
	assert.Equal(t, dprim.Candidate{Weight: 9, Source: 0, Dest: 4, Owner: -1}, dprim.Scan(tail, 3, st))
}

func TestScanTiesKeepRowMajorOrder(t *testing.T) {
	m := mustSquare(t, [][]int64{
		{0, 0, 4, 4},
		{0, 0, 4, 0},
		{4, 4, 0, 0},
		{4, 0, 0, 0},
	})
	st, err := tree.New(4, 0)
	require.NoError(t, err)
	require.NoError(t, st.Visit(0, 2, 4))
	// Tree {0,2}: row 0 → 3 (4), row 2 → 1 (4). Row 0 comes first.
	got := dprim.Scan(m, 0, st)
	assert.Equal(t, 0, got.Source)
	assert.Equal(t, 3, got.Dest)
}

func TestScanNil(t *testing.T) {
	assert.False(t, dprim.Scan(nil, 0, nil).Found())
	assert.Equal(t, dprim.Infinity, dprim.Scan(nil, 0, nil).Weight)
}

func TestAggregate(t *testing.T) {
	st, err := tree.New(4, 0)
	require.NoError(t, err)
	require.NoError(t, st.Visit(0, 2, 5))
	require.NoError(t, st.Visit(2, 1, 1))
	require.NoError(t, st.Visit(0, 3, 2))

	res := dprim.Aggregate(st)
	assert.Equal(t, 4, res.Vertices)
	assert.Equal(t, int64(8), res.Total)
	assert.Equal(t, []dprim.Edge{{From: 0, To: 2, Weight: 5}, {From: 2, To: 1, Weight: 1}, {From: 0, To: 3, Weight: 2}}, res.Edges)

	adj, err := res.Matrix()
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateAdjacency(adj))
	assert.Equal(t, "0 0 5 2\n0 0 1 0\n5 1 0 0\n2 0 0 0\n", adj.String())

	var buf bytes.Buffer
	require.NoError(t, res.WriteEdges(&buf))
	assert.Equal(t, "0 2 5\n2 1 1\n0 3 2\n", buf.String())
}

func TestRoundErrorUnwrap(t *testing.T) {
	err := &dprim.RoundError{Round: 4, Err: dprim.ErrDisconnected}
	assert.ErrorIs(t, err, dprim.ErrDisconnected)
	assert.Equal(t, "dprim: round 4: dprim: graph is not connected", err.Error())
}
