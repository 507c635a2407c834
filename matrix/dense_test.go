// Package matrix_test contains unit tests for the Dense row-major storage.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dprim/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewDenseFrom checks buffer adoption and length validation.
func TestNewDenseFrom(t *testing.T) {
	buf := []int64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, buf)
	require.NoError(t, err)
	require.Equal(t, 3, m.Stride())

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(4), v) // offset = 1*3 + 0

	_, err = matrix.NewDenseFrom(2, 2, buf)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestNewSquare rejects ragged input and copies rows in order.
func TestNewSquare(t *testing.T) {
	m, err := matrix.NewSquare([][]int64{{0, 7}, {7, 0}})
	require.NoError(t, err)
	require.Equal(t, []int64{0, 7, 7, 0}, m.Data())

	_, err = matrix.NewSquare([][]int64{{0, 7}, {7}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.NewSquare(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetSymmetric(0, 5, 1), matrix.ErrOutOfRange)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestRowAliasesBuffer verifies Row returns a window into the flat buffer.
func TestRowAliasesBuffer(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.SetSymmetric(0, 2, 9))

	row, err := m.Row(2)
	require.NoError(t, err)
	require.Equal(t, []int64{9, 0, 0}, row)

	row[1] = 4 // write through the alias
	v, _ := m.At(2, 1)
	require.Equal(t, int64(4), v)
	require.Len(t, row, 3)
	require.Equal(t, 3, cap(row)) // capped so append cannot spill into the next row
}

// TestRowBlockIsIndependentCopy checks bounds and copy semantics of RowBlock.
func TestRowBlockIsIndependentCopy(t *testing.T) {
	m, err := matrix.NewDenseFrom(3, 2, []int64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	blk, err := m.RowBlock(1, 2)
	require.NoError(t, err)
	require.Equal(t, 2, blk.Rows())
	require.Equal(t, []int64{3, 4, 5, 6}, blk.Data())

	require.NoError(t, blk.Set(0, 0, 99))
	v, _ := m.At(1, 0)
	require.Equal(t, int64(3), v) // original untouched

	_, err = m.RowBlock(2, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.RowBlock(0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestCloneEqualString covers Clone independence, Equal and String rendering.
func TestCloneEqualString(t *testing.T) {
	m, err := matrix.NewSquare([][]int64{{0, 3}, {3, 0}})
	require.NoError(t, err)

	c := m.Clone()
	require.True(t, m.Equal(c))
	require.NoError(t, c.Set(0, 1, 4))
	require.False(t, m.Equal(c))

	require.Equal(t, "0 3\n3 0\n", m.String())
	require.True(t, (*matrix.Dense)(nil).Equal(nil))
}
