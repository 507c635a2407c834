// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*stride + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Support row-block extraction (RowBlock) so a coordinator can hand out owned slices.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); Clone: O(r*c); RowBlock: O(h*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxRowBlock = "RowBlock"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of int64 weights.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c; the stride between rows equals c.
type Dense struct {
	r, c int     // row and column counts
	data []int64 // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Stage 1 (Validate): rows>0 && cols>0, else ErrInvalidDimensions.
// Stage 2 (Prepare): allocate a zero-filled flat buffer.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// NewDenseFrom wraps an existing row-major buffer without copying.
// The caller transfers ownership of data to the returned matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//   - ErrDimensionMismatch when len(data) != rows*cols.
func NewDenseFrom(rows, cols int, data []int64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom: len=%d want %d: %w", len(data), rows*cols, ErrDimensionMismatch)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewSquare builds an n×n matrix from nested rows, copying them into a flat buffer.
// Every row must have exactly len(rows) entries.
func NewSquare(rows [][]int64) (*Dense, error) {
	n := len(rows)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("NewSquare: row %d has %d entries, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Stride returns the distance in the flat buffer between the starts of two
// consecutive rows. It always equals Cols for a Dense.
func (m *Dense) Stride() int { return m.c }

// Data exposes the flat row-major buffer. Callers must treat it as read-only
// unless they own the matrix.
func (m *Dense) Data() []int64 { return m.data }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// SetSymmetric assigns v at (i,j) and (j,i).
func (m *Dense) SetSymmetric(i, j int, v int64) error {
	if err := m.Set(i, j, v); err != nil {
		return err
	}

	return m.Set(j, i, v)
}

// Row returns row i as a slice aliasing the backing buffer (no copy).
// Mutations through the slice are visible in the matrix.
func (m *Dense) Row(i int) ([]int64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// RowBlock copies rows [offset, offset+size) into a new size×Cols matrix.
// The copy has an independent lifetime from m.
//
// Errors:
//   - ErrInvalidDimensions when size <= 0.
//   - ErrOutOfRange when the block does not fit inside m.
func (m *Dense) RowBlock(offset, size int) (*Dense, error) {
	if size <= 0 {
		return nil, denseErrorf(ctxRowBlock, offset, size, ErrInvalidDimensions)
	}
	if offset < 0 || offset+size > m.r {
		return nil, denseErrorf(ctxRowBlock, offset, size, ErrOutOfRange)
	}
	buf := make([]int64, size*m.c)
	copy(buf, m.data[offset*m.c:(offset+size)*m.c])

	return &Dense{r: size, c: m.c, data: buf}, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	buf := make([]int64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// Equal reports whether m and o have the same shape and entries.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders the matrix in the same layout as the text file format:
// one row per line, entries separated by a single space.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatInt(m.data[i*m.c+j], 10))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
