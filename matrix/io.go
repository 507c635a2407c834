// SPDX-License-Identifier: MIT
// Package: matrix
//
// io.go — text codec for adjacency matrices.
//
// Format:
//   • N lines, each holding N whitespace-separated base-10 integers.
//   • Blank lines are ignored; the first non-blank line fixes N.
//   • The vertex count is discovered during the single streaming pass.

package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line (N integers of up to 20 digits each).
const maxLineBytes = 64 << 20

// maxVertices bounds N so that N*N fits an int on every platform.
const maxVertices = 1 << 15

// Read parses an adjacency matrix from r in one pass.
// It does not validate symmetry or weights; see ValidateAdjacency.
//
// Errors:
//   - ErrEmptyInput when r holds no non-blank line.
//   - ErrSyntax when a token is not an int64.
//   - ErrDimensionMismatch when a line's field count differs from the first line.
//   - ErrNonSquare when the number of lines differs from N.
func Read(r io.Reader) (*Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		n    int     // columns, fixed by the first non-blank line
		rows int     // rows seen so far
		line int     // physical line number, 1-based
		data []int64 // row-major accumulator
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if n == 0 {
			n = len(fields)
			if n > maxVertices {
				return nil, fmt.Errorf("Read: line %d has %d values, limit %d: %w", line, n, maxVertices, ErrInvalidDimensions)
			}
			// Grow row by row; the row count is unknown until EOF.
			data = make([]int64, 0, n*min(n, 64))
		}
		if len(fields) != n {
			return nil, fmt.Errorf("Read: line %d has %d values, want %d: %w", line, len(fields), n, ErrDimensionMismatch)
		}
		for _, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("Read: line %d value %q: %w", line, f, ErrSyntax)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if rows != n {
		return nil, fmt.Errorf("Read: %d rows of %d values: %w", rows, n, ErrNonSquare)
	}

	return NewDenseFrom(n, n, data)
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Write renders m in the text format, one row per line.
func Write(w io.Writer, m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			buf = buf[:0]
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, m.data[i*m.c+j], 10)
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile creates (or truncates) path and writes m into it.
func WriteFile(path string, m *Dense) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return Write(f, m)
}
