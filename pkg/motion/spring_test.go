package motion_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/flick/pkg/motion"
)

func TestSpring_ConvergesToTarget(t *testing.T) {
	t.Parallel()

	s := motion.DefaultSpring()

	value, vel, done := s.At(0, 100, 0, 10*time.Second)
	require.True(t, done)
	assert.InDelta(t, 100, value, 1e-9)
	assert.InDelta(t, 0, vel, 1e-9)
}

func TestSpring_Deterministic(t *testing.T) {
	t.Parallel()

	s := motion.DefaultSpring()

	a, av, _ := s.At(0, 80, 25, 300*time.Millisecond)
	b, bv, _ := s.At(0, 80, 25, 300*time.Millisecond)

	assert.InDelta(t, a, b, 0)
	assert.InDelta(t, av, bv, 0)
}

func TestSpring_MovesTowardTarget(t *testing.T) {
	t.Parallel()

	s := motion.DefaultSpring()

	prev := 0.0
	for _, ms := range []int{50, 100, 200, 400, 800} {
		value, _, _ := s.At(0, 100, 0, time.Duration(ms)*time.Millisecond)
		assert.Greater(t, value, prev, "spring must advance monotonically when critically damped")
		assert.LessOrEqual(t, value, 100+1e-6)
		prev = value
	}
}

func TestSpring_NotDoneImmediately(t *testing.T) {
	t.Parallel()

	s := motion.DefaultSpring()

	_, _, done := s.At(0, 100, 0, 0)
	assert.False(t, done)
}

func TestNewSpring_FallsBackToDefaults(t *testing.T) {
	t.Parallel()

	s := motion.NewSpring(-1, -1)

	value, _, done := s.At(0, 10, 0, 10*time.Second)
	require.True(t, done)
	assert.InDelta(t, 10, value, 1e-9)
}
