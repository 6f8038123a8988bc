// Package tsp - validation shared by the solvers.
//
// This file contains the up-front checks run by Solve before any work:
//  1. Options sanity (positive sampling knobs).
//  2. Distance matrix invariants (square, non-negative, zero diagonal, symmetric).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go
//     (matrix sentinels are wrapped so errors.Is still matches them).
//   - O(n²) worst-case where n is the matrix size; no hidden allocations.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tsptour/matrix"
)

// validateAll verifies Options and the distance matrix.
// It returns n (matrix order) on success.
//
// Complexity: O(n²) time, O(1) extra space.
func validateAll(dist *matrix.Distances, opts Options) (int, error) {
	// Stage 1: Options-only sanity.
	if err := opts.Validate(); err != nil {
		return 0, err
	}

	// Stage 2: Matrix shape/values.
	if dist == nil {
		return 0, ErrNilMatrix
	}
	if err := dist.Validate(); err != nil {
		return 0, fmt.Errorf("tsp: distance matrix: %w", err)
	}

	return dist.N(), nil
}
