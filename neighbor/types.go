// This file declares the neighbor package Options, functional setters,
// and sentinel errors.
package neighbor

import "errors"

// Sentinel errors for neighbor graph construction.
var (
	// ErrNilArena indicates a nil *core.Arena was passed to Build.
	ErrNilArena = errors.New("neighbor: arena is nil")

	// ErrBadDistance indicates the neighbor distance is zero or negative.
	ErrBadDistance = errors.New("neighbor: distance must be positive")
)

// Options configures neighbor graph construction.
//
// Distance – the neighbor threshold: two instances are neighbors when
// their Euclidean distance is ≤ Distance. Must be > 0.
type Options struct {
	Distance float64
}

// Option is a functional option for Build.
type Option func(*Options)

// WithDistance sets the neighbor distance threshold. Panics on a
// non-positive value; Build additionally rejects the unset default.
func WithDistance(d float64) Option {
	return func(o *Options) {
		if d <= 0 {
			panic(ErrBadDistance.Error())
		}
		o.Distance = d
	}
}

// DefaultOptions returns the zero configuration. Distance has no sane
// universal default, so Build fails with ErrBadDistance until WithDistance
// provides one.
func DefaultOptions() Options {
	return Options{Distance: 0}
}
