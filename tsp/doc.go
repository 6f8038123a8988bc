// Package tsp provides a time-bounded heuristic solver for the symmetric,
// Euclidean Travelling Salesman Problem.
//
// The solver works on a matrix.Distances and has two phases:
//
//   - NearestNeighbor — multi-start greedy construction.
//
//   - Complexity: O(k·n²) for k sampled starts.
//
//   - TwoOpt — best-improvement 2-opt local search, in place.
//
//   - Complexity: O(n²) per pass.
//
// Both phases poll a Budget (see package deadline) at fixed points: after
// every city appended during construction and after every 2-opt pass. When
// the budget expires they return the best result computed so far and flag
// it as timed out; expiry is never an error.
//
// Solve chains the two phases. Use this package when a good tour is needed
// quickly and optimality is not required.
package tsp
