// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and validators return these sentinels (possibly wrapped
// with coordinates via %w); tests match them with errors.Is.

package matrix

import "errors"

var (
	// ErrNonSquare is returned when rows have different lengths or the row
	// count does not match the column count.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNegativeDistance signals an entry below zero.
	ErrNegativeDistance = errors.New("matrix: negative distance")

	// ErrNonZeroDiagonal signals d[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrAsymmetry signals d[i][j] != d[j][i].
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNilMatrix indicates that a nil *Distances was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
