// SPDX-License-Identifier: MIT

// Package matrix - Distances storage (row-major) & accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Build Euclidean instances by computing the upper triangle only and mirroring it.
//   - Keep the value immutable after construction: Row returns a view that callers
//     must treat as read-only.
//
// Complexity quicksheet:
//   - NewEuclidean: O(n²) time and space; FromRows: O(n²); At/Row: O(1).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tsptour/city"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// distErrorf wraps a sentinel with the offending coordinates.
func distErrorf(row, col int, err error) error {
	return fmt.Errorf("Distances(%d,%d): %w", row, col, err)
}

// Distances is an immutable symmetric n×n distance table.
//   - n is the number of cities.
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Distances struct {
	n    int   // order of the matrix (>= 0)
	data []int // contiguous row-major storage (len == n*n)
}

var _ fmt.Stringer = (*Distances)(nil)

// NewEuclidean computes the rounded Euclidean distance between every pair of
// cities. Only the upper triangle (diagonal included) is evaluated; the lower
// triangle is mirrored from it.
//
// n == 0 yields an empty matrix and n == 1 yields [[0]].
//
// Complexity: O(n²) time, O(n²) space.
func NewEuclidean(cities []city.City) *Distances {
	var (
		n    = len(cities)
		data = make([]int, n*n)
		i, j int
		d    int
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			d = city.Distance(cities[i], cities[j])
			data[i*n+j] = d
			data[j*n+i] = d
		}
	}

	return &Distances{n: n, data: data}
}

// FromRows builds a Distances value from explicit rows after validating the
// metric invariants (square, non-negative, zero diagonal, symmetric).
// The input is copied; later edits to rows do not affect the matrix.
//
// Errors: ErrNonSquare, ErrNegativeDistance, ErrNonZeroDiagonal, ErrAsymmetry.
//
// Complexity: O(n²).
func FromRows(rows [][]int) (*Distances, error) {
	var (
		n    = len(rows)
		data = make([]int, n*n)
		i    int
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), n, ErrNonSquare)
		}
		copy(data[i*n:(i+1)*n], rows[i])
	}

	m := &Distances{n: n, data: data}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// N returns the number of cities (matrix order).
func (m *Distances) N() int {
	if m == nil {
		return 0
	}

	return m.n
}

// At returns d[i][j]. It is the hot-path accessor used by the solvers and
// does not bounds-check beyond the slice access itself.
func (m *Distances) At(i, j int) int {
	return m.data[i*m.n+j]
}

// Row returns row i as a view into the underlying buffer. Callers must not
// modify it.
func (m *Distances) Row(i int) []int {
	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n]
}

// String renders the matrix one row per line, e.g. "[0, 10]\n[10, 0]\n".
func (m *Distances) String() string {
	if m == nil {
		return "<nil>"
	}
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.n+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
