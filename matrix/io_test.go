package matrix_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/dprim/matrix"
	"github.com/stretchr/testify/require"
)

// sample5 is the five-vertex graph used throughout the module's tests.
const sample5 = `0 2 0 6 0
2 0 3 8 5
0 3 0 0 7
6 8 0 0 9
0 5 7 9 0
`

// TestReadCountsVerticesWhileParsing reads a well-formed file and checks N and contents.
func TestReadCountsVerticesWhileParsing(t *testing.T) {
	m, err := matrix.Read(strings.NewReader(sample5))
	require.NoError(t, err)
	require.Equal(t, 5, m.Rows())
	require.Equal(t, 5, m.Cols())

	v, err := m.At(3, 4)
	require.NoError(t, err)
	require.Equal(t, int64(9), v)
	require.NoError(t, matrix.ValidateAdjacency(m))
}

// TestReadToleratesBlankLinesAndTabs accepts any whitespace between tokens.
func TestReadToleratesBlankLinesAndTabs(t *testing.T) {
	m, err := matrix.Read(strings.NewReader("\n0\t4\n\n4   0\n\n"))
	require.NoError(t, err)
	require.Equal(t, "0 4\n4 0\n", m.String())
}

// TestReadErrors covers each input failure class.
func TestReadErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", matrix.ErrEmptyInput},
		{"blank only", "\n \n", matrix.ErrEmptyInput},
		{"ragged", "0 1\n1\n", matrix.ErrDimensionMismatch},
		{"too few rows", "0 1 2\n1 0 3\n", matrix.ErrNonSquare},
		{"too many rows", "0 1\n1 0\n0 0\n", matrix.ErrNonSquare},
		{"not a number", "0 x\n1 0\n", matrix.ErrSyntax},
		{"one huge line", strings.Repeat("1 ", 1<<20), matrix.ErrInvalidDimensions},
		{"one long row", strings.Repeat("1 ", 20000), matrix.ErrNonSquare},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestWriteMatchesInputFormat writes a matrix and reads it back from disk.
func TestWriteMatchesInputFormat(t *testing.T) {
	m, err := matrix.Read(strings.NewReader(sample5))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matrix.Write(&buf, m))
	require.Equal(t, sample5, buf.String())

	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, matrix.WriteFile(path, m))
	back, err := matrix.ReadFile(path)
	require.NoError(t, err)
	require.True(t, m.Equal(back))

	require.ErrorIs(t, matrix.Write(&buf, nil), matrix.ErrNilMatrix)
}

// TestReadFileMissing surfaces the os error unchanged for errors.Is.
func TestReadFileMissing(t *testing.T) {
	_, err := matrix.ReadFile(filepath.Join(t.TempDir(), "absent.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
