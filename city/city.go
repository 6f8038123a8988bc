// SPDX-License-Identifier: MIT

// Package city defines the planar point type consumed by the distance matrix
// and the rounded Euclidean metric used throughout the solver.
//
// A city is identified by its position in the input slice; the ID read from
// the input file is carried along for diagnostics only.
package city

import (
	"fmt"
	"math"
)

// City is a point on the integer grid.
type City struct {
	ID int // identifier from the input file (not used for indexing)
	X  int // abscissa
	Y  int // ordinate
}

// String renders the city as "#id(x,y)".
func (c City) String() string {
	return fmt.Sprintf("#%d(%d,%d)", c.ID, c.X, c.Y)
}

// Distance returns the Euclidean distance between a and b rounded to the
// nearest integer.
//
// Complexity: O(1).
func Distance(a, b City) int {
	var (
		dx = a.X - b.X
		dy = a.Y - b.Y
	)

	return int(math.Round(math.Sqrt(float64(dx*dx + dy*dy))))
}
