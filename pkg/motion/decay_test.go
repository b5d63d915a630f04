package motion_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/flick/pkg/motion"
)

func TestExponentialDecay_Target(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		tau      float64
		start    float64
		velocity float64
		want     float64
	}{
		"forward": {
			tau:      0.5,
			start:    10,
			velocity: 100,
			want:     60,
		},
		"backward": {
			tau:      0.5,
			start:    10,
			velocity: -100,
			want:     -40,
		},
		"at rest": {
			tau:      0.5,
			start:    10,
			velocity: 0,
			want:     10,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			d := &motion.ExponentialDecay{Tau: tc.tau}
			assert.InDelta(t, tc.want, d.Target(tc.start, tc.velocity), 1e-9)
		})
	}
}

func TestExponentialDecay_At(t *testing.T) {
	t.Parallel()

	d := &motion.ExponentialDecay{Tau: 0.5}

	// After one time constant, velocity is v0/e and the position has covered
	// (1 - 1/e) of the total travel.
	value, vel, _ := d.At(0, 100, 500*time.Millisecond)
	assert.InDelta(t, 100/math.E, vel, 1e-9)
	assert.InDelta(t, 100*0.5*(1-1/math.E), value, 1e-9)

	// At t=0 nothing has moved.
	value, vel, done := d.At(42, 100, 0)
	assert.InDelta(t, 42, value, 1e-9)
	assert.InDelta(t, 100, vel, 1e-9)
	assert.False(t, done)
}

func TestExponentialDecay_ComesToRest(t *testing.T) {
	t.Parallel()

	d := motion.NewExponentialDecay()

	value, vel, done := d.At(0, 1000, 10*time.Second)
	require.True(t, done)
	assert.Less(t, math.Abs(vel), motion.DefaultDecayRestSpeed)
	assert.InDelta(t, d.Target(0, 1000), value, 1e-3)
}

func TestExponentialDecay_ZeroValueDefaults(t *testing.T) {
	t.Parallel()

	var d motion.ExponentialDecay

	assert.InDelta(t, 100*motion.DefaultDecayTau, d.Target(0, 100), 1e-9)
}
