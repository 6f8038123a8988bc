// Package tsp - construction + optimization pipeline.
//
// Solve is the single entry point used by the CLI:
//
//  1. NearestNeighbor builds the initial tour (may exhaust the budget).
//  2. TwoOpt refines it in place, unless construction already timed out.
//
// If construction timed out before completing any attempt, the identity
// order 0..n−1 is returned instead so that callers always receive a valid,
// correctly costed tour.
package tsp

import "github.com/katalvlaran/tsptour/matrix"

// Result is the outcome of Solve.
type Result struct {
	Tour         *Tour
	Construction Construction
	Optimization TwoOptStats
	InitialCost  int  // cost before 2-opt
	Fallback     bool // Tour is the identity order, no attempt completed
}

// TimedOut reports whether either phase stopped on the budget.
func (r Result) TimedOut() bool {
	return r.Construction.TimedOut || r.Optimization.TimedOut
}

// Solve validates dist, constructs a tour and optimizes it within budget.
//
// Errors: ErrNilMatrix, ErrInvalidOptions, and matrix validation sentinels
// (wrapped). Expiry is never an error.
//
// Complexity: O(n²) validation + see NearestNeighbor and TwoOpt.
func Solve(dist *matrix.Distances, budget Budget, opts Options) (Result, error) {
	if _, err := validateAll(dist, opts); err != nil {
		return Result{}, err
	}

	cons, err := NearestNeighbor(dist, budget, opts)
	if err != nil {
		return Result{}, err
	}
	res := Result{Tour: cons.Tour, Construction: cons}

	if res.Tour == nil {
		if res.Tour, err = IdentityTour(dist); err != nil {
			return Result{}, err
		}
		res.Fallback = true
	}
	res.InitialCost = res.Tour.Cost()
	if cons.TimedOut {
		return res, nil
	}

	if res.Optimization, err = TwoOpt(res.Tour, dist, budget); err != nil {
		return Result{}, err
	}

	return res, nil
}
