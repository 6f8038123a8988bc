// Package deadline implements the self-imposed wall-clock budget shared by the
// tour constructor and the 2-opt optimizer.
//
// A Deadline is a fixed point in time (start + limit). It is read-only after
// construction; solvers poll Exceeded at their own check points and abandon
// the remaining work voluntarily. There is no external cancellation.
package deadline

import "time"

// Option customizes a Deadline.
type Option func(*Deadline)

// WithClock replaces time.Now, letting tests drive the budget deterministically.
func WithClock(now func() time.Time) Option {
	return func(d *Deadline) {
		if now != nil {
			d.now = now
		}
	}
}

// Deadline is the budget: the run started at start and may last limit.
type Deadline struct {
	start     time.Time
	limit     time.Duration
	now       func() time.Time
	unlimited bool
}

// New returns a budget of limit measured from start.
func New(start time.Time, limit time.Duration, opts ...Option) *Deadline {
	d := &Deadline{start: start, limit: limit, now: time.Now}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Unlimited returns a budget measured from start that never expires. Elapsed
// still reports the time spent since start.
func Unlimited(start time.Time, opts ...Option) *Deadline {
	d := New(start, 0, opts...)
	d.unlimited = true

	return d
}

// Exceeded reports whether more than the limit has elapsed since start.
// A nil Deadline never expires.
func (d *Deadline) Exceeded() bool {
	if d == nil || d.unlimited {
		return false
	}

	return d.now().Sub(d.start) > d.limit
}

// Elapsed returns the wall-clock time spent since start.
func (d *Deadline) Elapsed() time.Duration {
	if d == nil {
		return 0
	}

	return d.now().Sub(d.start)
}

// Remaining returns the time left before the budget expires, clamped at zero.
// Unlimited budgets report the largest representable duration.
func (d *Deadline) Remaining() time.Duration {
	if d == nil || d.unlimited {
		return time.Duration(1<<63 - 1)
	}
	if left := d.limit - d.Elapsed(); left > 0 {
		return left
	}

	return 0
}

// Limit returns the configured budget; zero for unlimited budgets.
func (d *Deadline) Limit() time.Duration {
	if d == nil {
		return 0
	}

	return d.limit
}

// Bounded reports whether the budget can expire at all.
func (d *Deadline) Bounded() bool {
	return d != nil && !d.unlimited
}
