package tsp

import (
	"errors"
	"math"
)

// Sentinel errors. Callers match them with errors.Is; wrapping adds context only.
var (
	// ErrNilMatrix is returned when a solver receives a nil distance matrix.
	ErrNilMatrix = errors.New("tsp: nil distance matrix")

	// ErrNilTour is returned when an operation requires a tour but got nil.
	ErrNilTour = errors.New("tsp: nil tour")

	// ErrDimensionMismatch indicates that a tour and a matrix disagree on n,
	// or that a sequence is not a permutation of 0..n-1.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrCostMismatch indicates that a tour's cached cost differs from the
	// cost recomputed from the matrix.
	ErrCostMismatch = errors.New("tsp: cached cost does not match tour")

	// ErrInvalidOptions is returned for non-positive sampling parameters.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrInvalidMove is returned when a 2-opt move does not fit the tour.
	ErrInvalidMove = errors.New("tsp: invalid 2-opt move")
)

// Infinity is the cost of "no tour found yet".
const Infinity = math.MaxInt

const (
	// DefaultSampleStarts is the target number of nearest-neighbor starts on
	// large instances.
	DefaultSampleStarts = 35

	// DefaultExhaustiveBelow is the instance size under which every city is
	// tried as a nearest-neighbor start.
	DefaultExhaustiveBelow = 250
)

// Budget is the cooperative stop signal consulted by the solvers.
// *deadline.Deadline satisfies it; a nil Budget never expires.
type Budget interface {
	Exceeded() bool
}

// Options configures the nearest-neighbor constructor.
//   - SampleStarts: target count of sampled starts when n >= ExhaustiveBelow.
//   - ExhaustiveBelow: instances smaller than this try every start.
type Options struct {
	SampleStarts    int
	ExhaustiveBelow int
}

// DefaultOptions returns the reference tuning (35 sampled starts above 249 cities).
func DefaultOptions() Options {
	return Options{
		SampleStarts:    DefaultSampleStarts,
		ExhaustiveBelow: DefaultExhaustiveBelow,
	}
}

// Validate rejects non-positive knobs.
func (o Options) Validate() error {
	if o.SampleStarts <= 0 || o.ExhaustiveBelow < 0 {
		return ErrInvalidOptions
	}

	return nil
}

// exceeded treats a nil budget as unlimited.
func exceeded(b Budget) bool {
	return b != nil && b.Exceeded()
}
