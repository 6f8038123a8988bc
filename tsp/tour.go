// Package tsp — the Tour value and the helpers that keep its cost honest.
//
// A Tour is an open permutation of 0..n-1; the closing edge from the last
// city back to the first is implicit. Its cost is cached and every mutating
// method updates order and cost together, so Validate can always compare the
// cache against a fresh recomputation.
//
// Provided helpers:
//   - NewTour: validate a permutation and compute its cost.
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - (*Tour).Validate: permutation + cost invariants against a matrix.
//   - (*Tour).Apply: in-place 2-opt reversal with cost update.
package tsp

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tsptour/matrix"
)

// Tour is a closed tour over n cities with its cached total cost.
type Tour struct {
	order []int
	cost  int
}

// NewTour copies order, checks that it is a permutation of 0..dist.N()-1 and
// computes its cost.
//
// Complexity: O(n) time, O(n) space.
func NewTour(order []int, dist *matrix.Distances) (*Tour, error) {
	if dist == nil {
		return nil, ErrNilMatrix
	}
	if err := ValidatePermutation(order, dist.N()); err != nil {
		return nil, err
	}
	t := &Tour{order: CopyOrder(order)}
	t.cost = TourCost(dist, t.order)

	return t, nil
}

// IdentityTour returns the tour 0, 1, …, n-1.
func IdentityTour(dist *matrix.Distances) (*Tour, error) {
	if dist == nil {
		return nil, ErrNilMatrix
	}
	order := make([]int, dist.N())
	var i int
	for i = range order {
		order[i] = i
	}

	return &Tour{order: order, cost: TourCost(dist, order)}, nil
}

// Len returns the number of cities on the tour.
func (t *Tour) Len() int {
	if t == nil {
		return 0
	}

	return len(t.order)
}

// Cost returns the cached total cost (closing edge included).
func (t *Tour) Cost() int {
	if t == nil {
		return Infinity
	}

	return t.cost
}

// At returns the city visited at position i.
func (t *Tour) At(i int) int {
	return t.order[i]
}

// Order returns a copy of the visiting order.
func (t *Tour) Order() []int {
	if t == nil {
		return nil
	}

	return CopyOrder(t.order)
}

// Validate checks that t is a permutation of 0..dist.N()-1 and that the
// cached cost equals the recomputed one.
//
// Errors: ErrNilTour, ErrNilMatrix, ErrDimensionMismatch, ErrCostMismatch.
//
// Complexity: O(n).
func (t *Tour) Validate(dist *matrix.Distances) error {
	if t == nil {
		return ErrNilTour
	}
	if dist == nil {
		return ErrNilMatrix
	}
	if err := ValidatePermutation(t.order, dist.N()); err != nil {
		return err
	}
	if got := TourCost(dist, t.order); got != t.cost {
		return fmt.Errorf("cached %d, recomputed %d: %w", t.cost, got, ErrCostMismatch)
	}

	return nil
}

// Apply performs the 2-opt move mv: the segment of positions mv.I+1..mv.J
// is reversed in place and the cost drops by mv.Gain.
//
// Contracts:
//   - 0 ≤ mv.I, mv.I+2 ≤ mv.J ≤ Len()-2.
//   - mv.Gain is the exact cost difference for this tour (BestMove guarantees it).
//
// Complexity: O(J-I) time, O(1) space.
func (t *Tour) Apply(mv Move) error {
	if t == nil {
		return ErrNilTour
	}
	if mv.I < 0 || mv.J < mv.I+2 || mv.J > len(t.order)-2 {
		return ErrInvalidMove
	}
	reverseInPlace(t.order, mv.I+1, mv.J)
	t.cost -= mv.Gain

	return nil
}

// String returns a compact representation such as "[0 3 1 2 | 0] cost=42".
func (t *Tour) String() string {
	if t == nil {
		return "<nil>"
	}
	var (
		sb strings.Builder
		i  int
	)
	sb.WriteString("[")
	for i = range t.order {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%d", t.order[i])
	}
	if len(t.order) > 0 {
		fmt.Fprintf(&sb, " | %d", t.order[0])
	}
	fmt.Fprintf(&sb, "] cost=%d", t.cost)

	return sb.String()
}

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// It does not allocate besides a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		// Out-of-range element violates the dimension contract.
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		// Duplicate also violates the bijection/dimension contract.
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// reverseInPlace reverses the inclusive segment order[i..k].
//
// Complexity: O(k-i) time, O(1) space.
func reverseInPlace(order []int, i, k int) {
	for i < k {
		order[i], order[k] = order[k], order[i]
		i++
		k--
	}
}

// CopyOrder returns an independent copy of the input sequence.
func CopyOrder(order []int) []int {
	if order == nil {
		return nil
	}
	out := make([]int, len(order))
	copy(out, order)

	return out
}
