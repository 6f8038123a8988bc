// Package matrix stores the pairwise distances of a TSP instance.
//
// Distances is a dense, row-major n×n table of non-negative integers with a
// zero diagonal and d[i][j] == d[j][i]. It is built once, either from city
// coordinates (NewEuclidean) or from explicit rows (FromRows), and is never
// mutated afterwards, so it can be shared freely by read-only callers.
//
// Memory is O(n²) ints. Callers own the matrix for the whole run and drop it
// once the tour has been written.
package matrix
