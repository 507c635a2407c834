package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/dprim/dprim"
	"github.com/katalvlaran/dprim/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenThenRun drives the subcommands end to end through files: every
// method and transport must write the same tree weight.
func TestGenThenRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "graph.txt")
	require.NoError(t, cmdGen([]string{"-n", "40", "-density", "0.2", "-seed", "3", "-max", "50", in}))

	ref := filepath.Join(dir, "kruskal.txt")
	require.NoError(t, cmdRun(context.Background(), []string{"-method", "kruskal", in, ref}))
	want := weightOf(t, ref)

	cases := [][]string{
		{"-workers", "3"},
		{"-workers", "7", "-transport", "rpc"},
		{"-workers", "50"},
		{"-method", "prim"},
	}
	for i, flags := range cases {
		out := filepath.Join(dir, "out"+string(rune('a'+i))+".txt")
		require.NoError(t, cmdRun(context.Background(), append(flags, in, out)), "%v", flags)
		assert.Equal(t, want, weightOf(t, out), "%v", flags)
	}
}

func TestRunEdgeList(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "graph.txt")
	require.NoError(t, os.WriteFile(in, []byte("0 2 0 6 0\n2 0 3 8 5\n0 3 0 0 7\n6 8 0 0 9\n0 5 7 9 0\n"), 0o644))
	out := filepath.Join(dir, "edges.txt")

	require.NoError(t, cmdRun(context.Background(), []string{"-workers", "2", "-edges", in, out}))
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "0 1 2\n1 2 3\n1 4 5\n0 3 6\n", string(got))
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("0 1\n2 0\n"), 0o644))
	split := filepath.Join(dir, "split.txt")
	require.NoError(t, os.WriteFile(split, []byte("0 1 0\n1 0 0\n0 0 0\n"), 0o644))

	err := cmdRun(context.Background(), []string{bad})
	assert.ErrorIs(t, err, dprim.ErrInput)

	err = cmdRun(context.Background(), []string{filepath.Join(dir, "missing.txt")})
	assert.ErrorIs(t, err, dprim.ErrInput)

	err = cmdRun(context.Background(), []string{"-workers", "2", split})
	assert.ErrorIs(t, err, dprim.ErrDisconnected)

	err = cmdRun(context.Background(), []string{"-workers", "5", "-strict", split})
	assert.ErrorIs(t, err, dprim.ErrConfiguration)

	assert.Error(t, cmdRun(context.Background(), []string{"-method", "boruvka", split}))
	assert.Error(t, cmdRun(context.Background(), []string{"-transport", "mpi", split}))
	assert.Error(t, cmdRun(context.Background(), nil))
	assert.Error(t, cmdGen([]string{"-max", "0", filepath.Join(dir, "g.txt")}))
}

// weightOf sums the upper triangle of an MST matrix file.
func weightOf(t *testing.T, path string) int64 {
	t.Helper()
	m, err := matrix.ReadFile(path)
	require.NoError(t, err)
	var total int64
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		require.NoError(t, err)
		for j := i + 1; j < len(row); j++ {
			total += row[j]
		}
	}

	return total
}
