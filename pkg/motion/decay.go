package motion

import (
	"math"
	"time"
)

const (
	// DefaultDecayTau is the default time constant of [ExponentialDecay], in
	// seconds. Roughly the feel of a standard touch-scroll flywheel.
	DefaultDecayTau = 0.325

	// DefaultDecayRestSpeed is the velocity, in units per second, below which
	// an [ExponentialDecay] motion is considered at rest.
	DefaultDecayRestSpeed = 0.5
)

// ExponentialDecay is a flywheel-style [Decay]: velocity decays as
// v(t) = v0*e^(-t/tau), which integrates to a finite travel distance of
// v0*tau. The zero value uses the default tuning.
type ExponentialDecay struct {
	// Tau is the decay time constant in seconds.
	Tau float64

	// RestSpeed is the velocity below which the motion reports done.
	RestSpeed float64
}

// NewExponentialDecay creates a decay curve with default tuning.
func NewExponentialDecay() *ExponentialDecay {
	return &ExponentialDecay{
		Tau:       DefaultDecayTau,
		RestSpeed: DefaultDecayRestSpeed,
	}
}

// At reports the decayed position and velocity after elapsed time.
func (d *ExponentialDecay) At(start, velocity float64, elapsed time.Duration) (float64, float64, bool) {
	k := math.Exp(-elapsed.Seconds() / d.tau())

	vel := velocity * k
	value := start + velocity*d.tau()*(1-k)

	return value, vel, math.Abs(vel) < d.restSpeed()
}

// Target reports where the decay naturally stops: start + velocity*tau.
func (d *ExponentialDecay) Target(start, velocity float64) float64 {
	return start + velocity*d.tau()
}

func (d *ExponentialDecay) tau() float64 {
	if d.Tau <= 0 {
		return DefaultDecayTau
	}

	return d.Tau
}

func (d *ExponentialDecay) restSpeed() float64 {
	if d.RestSpeed <= 0 {
		return DefaultDecayRestSpeed
	}

	return d.RestSpeed
}
