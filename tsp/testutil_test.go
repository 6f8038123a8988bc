// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsptour/city"
	"github.com/katalvlaran/tsptour/deadline"
	"github.com/katalvlaran/tsptour/matrix"
	"github.com/katalvlaran/tsptour/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed for random instances.
	seedDet = int64(7)

	// coordSpan bounds random coordinates to [0, coordSpan).
	coordSpan = 1000

	// squareCost is the perimeter of the 10×10 square instance.
	squareCost = 40
)

// -----------------------------------------------------------------------------
// Instances
// -----------------------------------------------------------------------------

// squareCities returns the corners (0,0), (0,10), (10,10), (10,0).
func squareCities() []city.City {
	return []city.City{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 0, Y: 10}, {ID: 3, X: 10, Y: 10}, {ID: 4, X: 10, Y: 0}}
}

// squareDist is the distance matrix of squareCities.
func squareDist() *matrix.Distances {
	return matrix.NewEuclidean(squareCities())
}

// randomCities returns n reproducible cities for the given seed.
func randomCities(n int, seed int64) []city.City {
	rng := rand.New(rand.NewSource(seed))
	out := make([]city.City, n)
	var i int
	for i = range out {
		out[i] = city.City{ID: i + 1, X: rng.Intn(coordSpan), Y: rng.Intn(coordSpan)}
	}

	return out
}

// randomDist is the distance matrix of randomCities(n, seed).
func randomDist(n int, seed int64) *matrix.Distances {
	return matrix.NewEuclidean(randomCities(n, seed))
}

// mustRows builds a matrix from explicit rows or fails the test.
func mustRows(t *testing.T, rows [][]int) *matrix.Distances {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// mustTour builds a tour from an explicit order or fails the test.
func mustTour(t *testing.T, order []int, dist *matrix.Distances) *tsp.Tour {
	t.Helper()
	tour, err := tsp.NewTour(order, dist)
	require.NoError(t, err)

	return tour
}

// -----------------------------------------------------------------------------
// Budgets
// -----------------------------------------------------------------------------

// countingBudget expires on its trip-th check (trip <= 0 never expires) and
// records how many times it was consulted.
type countingBudget struct {
	trip  int
	calls int
}

func (b *countingBudget) Exceeded() bool {
	b.calls++

	return b.trip > 0 && b.calls >= b.trip
}

// expiredBudget is a real deadline whose zero limit has already passed.
func expiredBudget() *deadline.Deadline {
	return deadline.New(time.Now().Add(-time.Second), 0)
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// requireValidTour checks the permutation and cached-cost invariants, and
// recomputes the cost edge by edge independently of tsp.TourCost.
func requireValidTour(t *testing.T, tour *tsp.Tour, dist *matrix.Distances) {
	t.Helper()
	require.NotNil(t, tour)
	require.NoError(t, tour.Validate(dist))

	order := tour.Order()
	n := len(order)
	require.Equal(t, dist.N(), n)

	var sum, i int
	for i = 0; i < n && n > 1; i++ {
		sum += dist.At(order[i], order[(i+1)%n])
	}
	require.Equal(t, sum, tour.Cost(), "cached cost must equal the recomputed sum")
}

// sameCycleEitherDir reports whether a and b describe the same closed tour,
// allowing any rotation and either direction of travel.
func sameCycleEitherDir(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	if n == 0 {
		return true
	}
	var off, i int
	for off = 0; off < n && b[off] != a[0]; off++ {
	}
	if off == n {
		return false
	}

	fwd, back := true, true
	for i = 0; i < n; i++ {
		if a[i] != b[(off+i)%n] {
			fwd = false
		}
		if a[i] != b[(off-i+n)%n] {
			back = false
		}
	}

	return fwd || back
}
