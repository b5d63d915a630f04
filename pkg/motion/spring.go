package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	// DefaultFrequency is the default angular frequency of [Spring], in Hz.
	// Higher values give a faster, snappier motion.
	DefaultFrequency = 6.0

	// DefaultDamping is the default damping ratio of [Spring]. 1.0 is
	// critically damped: the motion settles as fast as possible without
	// oscillating past the target.
	DefaultDamping = 1.0

	// springStepsPerSecond is the internal integration rate. The spring is
	// simulated at this fixed step regardless of the caller's frame rate, so
	// At is a pure function of elapsed time.
	springStepsPerSecond = 120

	springRestDelta = 1e-3
	springRestSpeed = 1e-3
)

// Spring is a spring-physics [Curve] built on harmonica. The zero value is
// not usable; construct with [NewSpring].
//
// A Spring has no fixed duration. It reports done once both the distance to
// the target and the velocity fall below a small rest threshold.
type Spring struct {
	spring harmonica.Spring
}

// NewSpring creates a spring curve with the given angular frequency and
// damping ratio. Non-positive arguments fall back to the defaults.
func NewSpring(frequency, damping float64) *Spring {
	if frequency <= 0 {
		frequency = DefaultFrequency
	}
	if damping <= 0 {
		damping = DefaultDamping
	}

	return &Spring{
		spring: harmonica.NewSpring(harmonica.FPS(springStepsPerSecond), frequency, damping),
	}
}

// DefaultSpring creates a critically-damped spring curve with default tuning.
func DefaultSpring() *Spring {
	return NewSpring(DefaultFrequency, DefaultDamping)
}

// At simulates the spring from (from, velocity) toward to for elapsed time.
func (s *Spring) At(from, to, velocity float64, elapsed time.Duration) (float64, float64, bool) {
	steps := int(elapsed.Seconds() * springStepsPerSecond)

	value, vel := from, velocity
	for range steps {
		value, vel = s.spring.Update(value, vel, to)
	}

	done := math.Abs(to-value) < springRestDelta && math.Abs(vel) < springRestSpeed
	if done {
		// Pin the tail so callers land exactly on the target.
		value, vel = to, 0
	}

	return value, vel, done
}
