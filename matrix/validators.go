// SPDX-License-Identifier: MIT

// Package matrix - invariant checks.
//
// Validate walks the upper triangle once and reports the first violation in
// a fixed priority order: negativity, diagonal, symmetry. The wrapped error
// carries the coordinates of the offending entry.

package matrix

// Validate re-checks every invariant of the distance table:
//   - d[i][j] >= 0,
//   - d[i][i] == 0,
//   - d[i][j] == d[j][i].
//
// Complexity: O(n²) time, O(1) space.
func (m *Distances) Validate() error {
	if m == nil {
		return ErrNilMatrix
	}
	if len(m.data) != m.n*m.n {
		return ErrNonSquare
	}

	var (
		n        = m.n
		i, j     int
		aij, aji int
	)
	for i = 0; i < n; i++ {
		if m.data[i*n+i] != 0 {
			if m.data[i*n+i] < 0 {
				return distErrorf(i, i, ErrNegativeDistance)
			}
			return distErrorf(i, i, ErrNonZeroDiagonal)
		}
		for j = i + 1; j < n; j++ {
			aij = m.data[i*n+j]
			aji = m.data[j*n+i]
			if aij < 0 {
				return distErrorf(i, j, ErrNegativeDistance)
			}
			if aji < 0 {
				return distErrorf(j, i, ErrNegativeDistance)
			}
			if aij != aji {
				return distErrorf(i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}
