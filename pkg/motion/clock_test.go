package motion_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/flick/pkg/motion"
)

func TestStepClock_AdvancesFixedSteps(t *testing.T) {
	t.Parallel()

	c := motion.NewStepClock(10 * time.Millisecond)

	first, err := c.Frame(t.Context())
	require.NoError(t, err)

	second, err := c.Frame(t.Context())
	require.NoError(t, err)

	assert.Equal(t, 10*time.Millisecond, second.Sub(first))
	assert.Equal(t, second, c.Now())
}

func TestStepClock_HonorsCancellation(t *testing.T) {
	t.Parallel()

	c := motion.NewStepClock(time.Millisecond)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := c.Frame(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestTickerClock_HonorsCancellation(t *testing.T) {
	t.Parallel()

	c := motion.NewTickerClock(1) // 1 FPS, so cancellation must win.

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := c.Frame(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestTickerClock_ProducesFrames(t *testing.T) {
	t.Parallel()

	c := motion.NewTickerClock(240)

	now, err := c.Frame(t.Context())
	require.NoError(t, err)
	assert.False(t, now.IsZero())
}
