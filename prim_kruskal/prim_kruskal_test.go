package prim_kruskal_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dprim/builder"
	"github.com/katalvlaran/dprim/matrix"
	"github.com/katalvlaran/dprim/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTriangle constructs a simple triangle:
//
//	0—1 (weight 1), 1—2 (weight 2), 0—2 (weight 3).
//
// This graph’s MST consists of edges 0—1 and 1—2 with total weight 3.
func buildTriangle(t testing.TB) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewSquare([][]int64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	})
	require.NoError(t, err)

	return m
}

// buildMediumGraph creates a connected random graph with n vertices:
// a random spanning tree plus each other pair with probability p,
// weights uniform in [1..100], seeded for reproducibility.
func buildMediumGraph(t testing.TB, n int, p float64, seed int64) *matrix.Dense {
	t.Helper()
	m, err := builder.BuildMatrix(n,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 100)},
		builder.RandomConnected(p))
	require.NoError(t, err)

	return m
}

// edgeSet normalises edges to "min-max" keys.
func edgeSet(edges []prim_kruskal.Edge) map[[2]int]int64 {
	out := make(map[[2]int]int64, len(edges))
	for _, e := range edges {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		out[[2]int{u, v}] = e.Weight
	}

	return out
}

// TestValidation_InvalidGraph verifies that both algorithms reject matrices
// breaking the adjacency contract.
func TestValidation_InvalidGraph(t *testing.T) {
	asym, err := matrix.NewSquare([][]int64{{0, 1}, {2, 0}})
	require.NoError(t, err)
	neg, err := matrix.NewSquare([][]int64{{0, -1}, {-1, 0}})
	require.NoError(t, err)
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	cases := []struct {
		name  string
		m     *matrix.Dense
		cause error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"asymmetric", asym, matrix.ErrAsymmetry},
		{"negative", neg, matrix.ErrNegativeWeight},
		{"non-square", rect, matrix.ErrNonSquare},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, errK := prim_kruskal.Kruskal(tc.m)
			assert.ErrorIs(t, errK, prim_kruskal.ErrInvalidGraph)
			assert.ErrorIs(t, errK, tc.cause)

			_, _, errP := prim_kruskal.Prim(tc.m, 0)
			assert.ErrorIs(t, errP, prim_kruskal.ErrInvalidGraph)
			assert.ErrorIs(t, errP, tc.cause)
		})
	}
}

// TestValidation_RootOutOfRange verifies Prim's root bounds.
func TestValidation_RootOutOfRange(t *testing.T) {
	g := buildTriangle(t)

	_, _, err := prim_kruskal.Prim(g, 3)
	assert.ErrorIs(t, err, prim_kruskal.ErrRootOutOfRange)
	_, _, err = prim_kruskal.Prim(g, -1)
	assert.ErrorIs(t, err, prim_kruskal.ErrRootOutOfRange)
}

// TestTriangle ensures both algorithms pick {0—1, 1—2} with weight 3.
func TestTriangle(t *testing.T) {
	g := buildTriangle(t)
	want := map[[2]int]int64{{0, 1}: 1, {1, 2}: 2}

	mstP, totalP, err := prim_kruskal.Prim(g, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), totalP)
	assert.Equal(t, want, edgeSet(mstP))

	mstK, totalK, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, int64(3), totalK)
	assert.Equal(t, want, edgeSet(mstK))
}

// TestPrim_JoinOrder: Prim returns edges in the order vertices join the tree.
func TestPrim_JoinOrder(t *testing.T) {
	g, err := matrix.NewSquare([][]int64{
		{0, 2, 0, 6, 0},
		{2, 0, 3, 8, 5},
		{0, 3, 0, 0, 7},
		{6, 8, 0, 0, 9},
		{0, 5, 7, 9, 0},
	})
	require.NoError(t, err)

	mst, total, err := prim_kruskal.Prim(g, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(16), total)
	assert.Equal(t, []prim_kruskal.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 3},
		{From: 1, To: 4, Weight: 5},
		{From: 0, To: 3, Weight: 6},
	}, mst)
}

// TestSingleVertexGraph: a 1×1 matrix has an empty MST.
func TestSingleVertexGraph(t *testing.T) {
	g, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	mstK, totalK, errK := prim_kruskal.Kruskal(g)
	assert.NoError(t, errK)
	assert.Empty(t, mstK)
	assert.Zero(t, totalK)

	mstP, totalP, errP := prim_kruskal.Prim(g, 0)
	assert.NoError(t, errP)
	assert.Empty(t, mstP)
	assert.Zero(t, totalP)
}

// TestDisconnected verifies ErrDisconnected for isolated vertices and for
// two separate components.
func TestDisconnected(t *testing.T) {
	isolated, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	blocks, err := builder.BuildMatrix(6, nil, builder.Components(3, 3))
	require.NoError(t, err)

	for _, g := range []*matrix.Dense{isolated, blocks} {
		_, _, errK := prim_kruskal.Kruskal(g)
		assert.ErrorIs(t, errK, prim_kruskal.ErrDisconnected)
		_, _, errP := prim_kruskal.Prim(g, 0)
		assert.ErrorIs(t, errP, prim_kruskal.ErrDisconnected)
	}
}

// TestDiagonalIgnored: self-loop weights on the diagonal never enter the tree.
func TestDiagonalIgnored(t *testing.T) {
	g, err := matrix.NewSquare([][]int64{
		{1, 4},
		{4, 1},
	})
	require.NoError(t, err)

	_, totalK, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, int64(4), totalK)
	_, totalP, err := prim_kruskal.Prim(g, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), totalP)
}

// TestComparison_RandomGraphs compares Prim vs. Kruskal on generated graphs.
func TestComparison_RandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := buildMediumGraph(t, 30, 0.2, seed)

		mstK, totalK, errK := prim_kruskal.Kruskal(g)
		require.NoError(t, errK)
		assert.Len(t, mstK, 29)

		for _, root := range []int{0, 17, 29} {
			mstP, totalP, errP := prim_kruskal.Prim(g, root)
			require.NoError(t, errP)
			assert.Len(t, mstP, 29)
			assert.Equal(t, totalK, totalP, "seed %d root %d", seed, root)
		}
	}
}

// TestCompute dispatches on Method.
func TestCompute(t *testing.T) {
	g := buildTriangle(t)

	_, total, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	opts := prim_kruskal.NewOptions(prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(2))
	mst, total, err := prim_kruskal.Compute(g, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, prim_kruskal.Edge{From: 2, To: 1, Weight: 2}, mst[0])

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// TestWeightLimits: the reserved weight is invalid input, and a tree whose total
// does not fit an int64 is rejected by both algorithms.
func TestWeightLimits(t *testing.T) {
	reserved, err := matrix.NewSquare([][]int64{{0, math.MaxInt64}, {math.MaxInt64, 0}})
	require.NoError(t, err)
	_, _, err = prim_kruskal.Kruskal(reserved)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	assert.ErrorIs(t, err, matrix.ErrWeightRange)

	half := int64(math.MaxInt64/2 + 1)
	path, err := matrix.NewSquare([][]int64{{0, half, 0}, {half, 0, half}, {0, half, 0}})
	require.NoError(t, err)
	_, _, err = prim_kruskal.Kruskal(path)
	assert.ErrorIs(t, err, prim_kruskal.ErrTotalOverflow)
	_, _, err = prim_kruskal.Prim(path, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrTotalOverflow)
}
