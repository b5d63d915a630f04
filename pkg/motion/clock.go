package motion

import (
	"context"
	"sync"
	"time"
)

// DefaultFPS is the frame rate of [TickerClock] when none is given.
const DefaultFPS = 60

// Clock paces an animation loop. Each call to Frame blocks until the next
// animation frame and reports its time. Frame boundaries are the cooperative
// cancellation points of every animated operation: a preempted motion unwinds
// at its next Frame call.
type Clock interface {
	Frame(ctx context.Context) (time.Time, error)
}

// TickerClock is a real-time [Clock] ticking at a fixed frame rate.
type TickerClock struct {
	interval time.Duration
}

// NewTickerClock creates a clock producing fps frames per second.
// Non-positive fps falls back to [DefaultFPS].
func NewTickerClock(fps int) *TickerClock {
	if fps <= 0 {
		fps = DefaultFPS
	}

	return &TickerClock{interval: time.Second / time.Duration(fps)}
}

// Frame blocks until the next frame or until ctx is cancelled.
func (c *TickerClock) Frame(ctx context.Context) (time.Time, error) {
	t := time.NewTimer(c.interval)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return time.Time{}, ctx.Err()

	case now := <-t.C:
		return now, nil
	}
}

// StepClock is a deterministic [Clock] that advances a fixed amount per frame
// without waiting. It drives animations to completion as fast as the consumer
// can process frames, which makes it suitable for tests and headless use.
type StepClock struct {
	now  time.Time
	step time.Duration
	mu   sync.Mutex
}

// NewStepClock creates a clock advancing by step each frame.
func NewStepClock(step time.Duration) *StepClock {
	if step <= 0 {
		step = time.Second / DefaultFPS
	}

	return &StepClock{step: step}
}

// Frame advances the clock by one step and reports the new time. It never
// blocks, but still honors ctx cancellation so preemption works the same as
// with a real-time clock.
func (c *StepClock) Frame(ctx context.Context) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(c.step)

	return c.now, nil
}

// Now reports the clock's current time without advancing it.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}
