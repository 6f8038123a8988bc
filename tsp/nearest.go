// Package tsp - multi-start nearest-neighbor construction.
//
// NearestNeighbor grows a greedy path from several start cities and keeps the
// cheapest closed tour.
//   - Small instances (n < ExhaustiveBelow) try every start.
//   - Larger instances try every (n / SampleStarts)-th city, keeping the
//     number of O(n²) attempts near SampleStarts.
//
// Design:
//   - Ties go to the lowest index: a later candidate must be strictly closer
//     to replace the current pick. Output is fully deterministic.
//   - The budget is polled after every appended city. On expiry the attempt
//     in progress is dropped and only completed attempts are reported.
//   - Buffers (visited, path) are allocated once and reused across attempts.
//
// Complexity:
//   - One attempt: O(n²). Total: O(k·n²) with k = number of starts.
package tsp

import "github.com/katalvlaran/tsptour/matrix"

// Construction is the outcome of NearestNeighbor.
type Construction struct {
	// Tour is the best completed attempt; nil if the budget expired before
	// any attempt finished.
	Tour *Tour

	// TimedOut is set when the budget expired during construction.
	TimedOut bool

	// Attempts counts completed greedy attempts; zero for n < 2, where the
	// trivial tour is returned without running any.
	Attempts int
}

// NearestNeighbor runs the multi-start nearest-neighbor heuristic.
//
// Contracts:
//   - dist is a valid distance matrix (see matrix.Distances.Validate).
//   - budget may be nil (no limit).
//
// Errors: ErrNilMatrix, ErrInvalidOptions. Expiry is not an error.
func NearestNeighbor(dist *matrix.Distances, budget Budget, opts Options) (Construction, error) {
	if dist == nil {
		return Construction{}, ErrNilMatrix
	}
	if err := opts.Validate(); err != nil {
		return Construction{}, err
	}

	n := dist.N()
	switch n {
	case 0:
		return Construction{Tour: &Tour{order: []int{}}}, nil
	case 1:
		return Construction{Tour: &Tour{order: []int{0}}}, nil
	}

	var (
		stride   = startStride(n, opts)
		visited  = make([]bool, n)
		path     = make([]int, n)
		best     []int
		bestCost = Infinity
		attempts int
	)

	var (
		s, j, k  int // start city, path position, candidate city
		next     int // nearest unvisited city to the path end
		near     int // its distance
		cost     int // running cost of the attempt
		row      []int
		timedOut bool
	)
	for s = 0; s < n; s += stride {
		for k = range visited {
			visited[k] = false
		}
		visited[s] = true
		path[0] = s
		cost = 0

		for j = 1; j < n; j++ {
			next = -1
			near = Infinity
			row = dist.Row(path[j-1])
			for k = 0; k < n; k++ {
				if !visited[k] && row[k] < near {
					next = k
					near = row[k]
				}
			}
			path[j] = next
			cost += near
			visited[next] = true

			if exceeded(budget) {
				timedOut = true
				break
			}
		}
		if timedOut {
			break
		}

		cost += dist.At(next, s)
		attempts++
		if cost < bestCost {
			if best == nil {
				best = make([]int, n)
			}
			copy(best, path)
			bestCost = cost
		}
	}

	res := Construction{TimedOut: timedOut, Attempts: attempts}
	if best != nil {
		res.Tour = &Tour{order: best, cost: bestCost}
	}

	return res, nil
}

// startStride returns the distance between consecutive start cities.
func startStride(n int, opts Options) int {
	if n < opts.ExhaustiveBelow {
		return 1
	}
	if stride := n / opts.SampleStarts; stride > 1 {
		return stride
	}

	return 1
}
