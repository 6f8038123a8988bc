// Package tsp — cost utilities.
//
// TourCost is the independent recomputation used to seed a tour's cache and
// to audit it afterwards. It assumes indices are valid; callers validate the
// permutation first.
package tsp

import "github.com/katalvlaran/tsptour/matrix"

// TourCost sums d[order[i]][order[i+1]] over consecutive positions plus the
// closing edge d[order[n-1]][order[0]]. Empty and single-city orders cost 0.
//
// Complexity: O(n).
func TourCost(dist *matrix.Distances, order []int) int {
	n := len(order)
	if n < 2 {
		return 0
	}
	var (
		sum int
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += dist.At(order[i], order[i+1])
	}

	return sum + dist.At(order[n-1], order[0])
}

// moveGain is the 2-opt gain of reconnecting edges (p[i],p[i+1]) and
// (p[j],p[j+1]) as (p[i],p[j]) and (p[i+1],p[j+1]). Positive shortens the tour.
//
// Complexity: O(1).
func moveGain(dist *matrix.Distances, p []int, i, j int) int {
	var (
		a = p[i]
		b = p[i+1]
		c = p[j]
		e = p[j+1]
	)

	return (dist.At(a, b) + dist.At(c, e)) - (dist.At(a, c) + dist.At(b, e))
}
