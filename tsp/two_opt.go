// Package tsp - best-improvement 2-opt local search.
//
// TwoOpt refines a tour in place. Each pass scans every pair of non-adjacent
// edges (p[i],p[i+1]) and (p[j],p[j+1]) with 0 ≤ i, i+2 ≤ j ≤ n−2 and computes
//
//	gain = d(a,b) + d(c,e) − d(a,c) − d(b,e),  a=p[i], b=p[i+1], c=p[j], e=p[j+1].
//
// Only the single best move of the pass is applied (reverse p[i+1..j]);
// the scan then restarts. The closing edge (p[n−1],p[0]) is never a candidate.
//
// Design:
//   - Best-improvement, not first-improvement: the whole pass is scanned
//     before any swap. Among equal gains the first pair in scan order wins.
//   - The budget is polled once per completed pass, never inside a scan, so
//     a single pass may overrun the nominal limit.
//   - Swaps already applied stay applied when the budget expires.
//
// Complexity:
//   - One pass: O(n²) gain evaluations + O(n) for the reversal.
package tsp

import "github.com/katalvlaran/tsptour/matrix"

// Move is a 2-opt move on positions I and J of the current order.
type Move struct {
	I, J int // cut after positions I and J
	Gain int // cost reduction obtained by applying the move
}

// TwoOptStats summarizes a TwoOpt run.
type TwoOptStats struct {
	Passes    int  // completed scanning passes
	Swaps     int  // moves applied
	Converged bool // the last pass found no improving move
	TimedOut  bool // the budget expired before convergence
}

// BestMove scans the whole neighborhood of t and returns the move with the
// largest positive gain. ok is false when no move shortens the tour.
//
// Complexity: O(n²) time, O(1) space.
func BestMove(t *Tour, dist *matrix.Distances) (mv Move, ok bool) {
	if t == nil || dist == nil {
		return Move{}, false
	}
	var (
		p    = t.order
		n    = len(p)
		i, j int
		gain int
	)
	for i = 0; i < n-2; i++ {
		for j = i + 2; j < n-1; j++ {
			gain = moveGain(dist, p, i, j)
			if gain > mv.Gain {
				mv = Move{I: i, J: j, Gain: gain}
				ok = true
			}
		}
	}

	return mv, ok
}

// TwoOptPass runs one scanning pass and applies its best move, if any.
// It reports whether the tour changed.
func TwoOptPass(t *Tour, dist *matrix.Distances) (bool, error) {
	if t == nil {
		return false, ErrNilTour
	}
	if dist == nil {
		return false, ErrNilMatrix
	}
	if t.Len() != dist.N() {
		return false, ErrDimensionMismatch
	}
	mv, ok := BestMove(t, dist)
	if !ok {
		return false, nil
	}

	return true, t.Apply(mv)
}

// TwoOpt repeats TwoOptPass until no improving move remains or the budget
// expires, polling the budget after every pass.
//
// Contracts:
//   - t is a valid tour for dist (len == dist.N(), cached cost exact).
//   - budget may be nil (run to convergence).
//
// Errors: ErrNilTour, ErrNilMatrix, ErrDimensionMismatch. Expiry is reported
// through TwoOptStats.TimedOut, not as an error.
func TwoOpt(t *Tour, dist *matrix.Distances, budget Budget) (TwoOptStats, error) {
	var (
		stats    TwoOptStats
		improved bool
		err      error
	)
	for {
		improved, err = TwoOptPass(t, dist)
		if err != nil {
			return stats, err
		}
		stats.Passes++
		if improved {
			stats.Swaps++
		} else {
			stats.Converged = true
		}

		if exceeded(budget) {
			stats.TimedOut = !stats.Converged
			return stats, nil
		}
		if !improved {
			return stats, nil
		}
	}
}
