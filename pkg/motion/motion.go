// Package motion provides the pluggable curves that drive animated paging: a
// spring curve for seeks and snap-back, an exponential decay curve for flings,
// and the frame clocks that pace the animation loops.
//
// Curves are pure functions of elapsed time, so a motion can be re-evaluated
// at any frame rate and interrupted between frames without losing state.
package motion

import "time"

// Curve maps elapsed time to a position and velocity for a motion from one
// value toward a fixed target.
type Curve interface {
	// At reports the value and velocity of a motion that started at from with
	// the given initial velocity, heading toward to, after elapsed time.
	// done reports whether the motion has come to rest.
	At(from, to, velocity float64, elapsed time.Duration) (value, vel float64, done bool)
}

// Decay maps elapsed time to a position and velocity for an unconstrained
// decaying motion, and can predict where that motion naturally stops.
type Decay interface {
	// At reports the value and velocity of a decaying motion that started at
	// start with the given initial velocity, after elapsed time.
	At(start, velocity float64, elapsed time.Duration) (value, vel float64, done bool)

	// Target reports the natural resting value of a decay started at start
	// with the given velocity, with no time bound.
	Target(start, velocity float64) float64
}
