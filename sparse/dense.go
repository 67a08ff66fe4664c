// SPDX-License-Identifier: MIT
// File: dense.go
// Role: bridge between rank-2 sparse matrices and row-major [][]T data.
// The rank is fixed to dim.D2 in the signatures, so only two-dimensional
// matrices can be passed.

package sparse

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ndsparse/dim"
)

// denseErrorf wraps an underlying error with dense-bridge context.
func denseErrorf(method string, row, col uint64, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, row, col, err)
}

// ToRows materializes m as a rows×cols row-major table. Unstored cells
// hold Default().
// Stage 1 (Validate): rows and cols > 0.
// Stage 2 (Prepare): allocate and fill with Default().
// Stage 3 (Execute): copy stored entries, rejecting any outside the shape.
//
// Errors:
//   - ErrBadShape if rows <= 0 or cols <= 0.
//   - ErrOutOfRange if a stored entry lies outside rows×cols.
//
// Complexity: O(rows*cols + Len()).
func ToRows[T comparable, D Defaulter[T]](m *Matrix[T, D, dim.D2], rows, cols int) ([][]T, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("ToRows(%d,%d): %w", rows, cols, ErrBadShape)
	}
	def := m.Default()
	out := make([][]T, rows)
	for i := range out {
		row := make([]T, cols)
		for j := range row {
			row[j] = def
		}
		out[i] = row
	}
	for key, v := range m.Items() {
		r, c := uint64(key.At(0)), uint64(key.At(1))
		if r >= uint64(rows) || c >= uint64(cols) {
			return nil, denseErrorf("ToRows", r, c, ErrOutOfRange)
		}
		out[r][c] = v
	}

	return out, nil
}

// FromRows builds a rank-2 Matrix from a row-major table. Cells equal to
// D's Default are elided.
//
// Errors:
//   - ErrBadShape if data is empty, has empty rows, or is ragged.
//   - ErrOutOfRange if the table has more rows or columns than Index can address.
//
// Complexity: O(rows*cols).
func FromRows[T comparable, D Defaulter[T]](data [][]T, opts ...Option) (*Matrix[T, D, dim.D2], error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	cols := len(data[0])
	if uint64(len(data))-1 > math.MaxUint32 || uint64(cols)-1 > math.MaxUint32 {
		return nil, fmt.Errorf("FromRows(%d,%d): %w", len(data), cols, ErrOutOfRange)
	}
	m := New[T, D, dim.D2](opts...)
	for i, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d cols, want %d: %w", i, len(row), cols, ErrBadShape)
		}
		for j, v := range row {
			m.Set(v, Index(i), Index(j))
		}
	}

	return m, nil
}
