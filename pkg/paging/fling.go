package paging

import (
	"context"
	"math"
	"time"

	"github.com/macropower/flick/pkg/motion"
)

// Fling resolves a released drag with the controller's configured curves.
// See [Controller.FlingWith].
func (c *Controller) Fling(ctx context.Context, velocity float64, scrollBy func(px float64) float64) (float64, error) {
	return c.FlingWith(ctx, velocity, c.decay, c.snap, scrollBy)
}

// FlingWith resolves a released drag with the given velocity, in pixels per
// second, positive toward the end.
//
// The decay curve predicts where an unconstrained fling would naturally stop.
// If that point lies at or beyond the current page boundary, the fling decays
// toward the adjacent page and is cut short once the boundary is reached;
// otherwise it springs back to the nearest rest position within the current
// page (fully forward when the velocity exceeds one page per second, fully
// backward on the opposite sign, and otherwise by which half of the page the
// predicted stop falls in). Either way the position settles on a whole page.
//
// Every frame's incremental pixel delta goes through scrollBy, the same
// mutation path a drag uses; pass [Controller.ScrollPixels] unless deltas
// must be routed through a chain of scrollable regions.
//
// FlingWith reports the last observed velocity, so a parent region can
// continue the motion with the leftover energy. A preempted fling returns
// the velocity observed so far and a nil error.
func (c *Controller) FlingWith(
	ctx context.Context,
	velocity float64,
	decay motion.Decay,
	snap motion.Curve,
	scrollBy func(px float64) float64,
) (float64, error) {
	if scrollBy == nil {
		scrollBy = c.ScrollPixels
	}

	remaining := velocity

	err := c.gate.Mutate(ctx, PriorityDefault, func(mctx context.Context) error {
		c.inMotion.Store(true)
		defer c.inMotion.Store(false)

		var err error
		remaining, err = c.fling(mctx, velocity, decay, snap, scrollBy)

		return err
	})

	return remaining, maskPreempted(err)
}

func (c *Controller) fling(
	ctx context.Context,
	velocity float64,
	decay motion.Decay,
	snap motion.Curve,
	scrollBy func(px float64) float64,
) (float64, error) {
	size := c.scrollDivisor()

	c.mu.Lock()
	page := c.page
	offset := c.offset
	c.mu.Unlock()

	startPx := offset * size
	targetOffset := decay.Target(startPx, velocity) / size

	var (
		lastVel float64
		err     error
	)

	if math.Abs(targetOffset) >= 1 {
		lastVel, err = c.flingDecay(ctx, page, startPx, velocity, size, decay, scrollBy)
	} else {
		lastVel, err = c.flingSnap(ctx, page, targetOffset, velocity, size, snap, scrollBy)
	}
	if err != nil {
		return lastVel, err
	}

	c.settle()

	return lastVel, nil
}

// flingDecay carries the position past the current page boundary into the
// adjacent page, cutting the decay short once the boundary is reached. The
// instantaneous value is clamped into [0, size] each frame, so the motion
// never travels more than one page regardless of the predicted distance.
func (c *Controller) flingDecay(
	ctx context.Context,
	page int,
	startPx, velocity, size float64,
	decay motion.Decay,
	scrollBy func(px float64) float64,
) (float64, error) {
	forward := velocity > 0

	targetPage := page
	if forward {
		targetPage = min(page+1, lastPage(c.PageCount()))
	}

	start, err := c.clock.Frame(ctx)
	if err != nil {
		return velocity, cancelCause(ctx, err)
	}

	var (
		prev    = startPx
		lastVel = velocity
	)

	for {
		now, err := c.clock.Frame(ctx)
		if err != nil {
			return lastVel, cancelCause(ctx, err)
		}

		value, vel, done := decay.At(startPx, velocity, now.Sub(start))
		value = clamp(value, 0, size)
		scrollBy(value - prev)
		prev = value
		lastVel = vel

		if c.passedPage(targetPage, forward) {
			// Reached or crossed the boundary: cancel the rest of the decay
			// and land exactly on the target page.
			c.forcePosition(targetPage, 0)

			return lastVel, nil
		}

		if done {
			return lastVel, nil
		}
	}
}

// passedPage reports whether the position has reached or passed target in
// the direction of travel. The comparison is on the continuous position, so
// a frame that lands exactly on the boundary terminates the motion.
func (c *Controller) passedPage(target int, forward bool) bool {
	pos := c.Position()
	if forward {
		return pos >= float64(target)
	}

	return pos <= float64(target)
}

// flingSnap springs the position to a rest point within the current page.
func (c *Controller) flingSnap(
	ctx context.Context,
	page int,
	targetOffset, velocity, size float64,
	snap motion.Curve,
	scrollBy func(px float64) float64,
) (float64, error) {
	var rest float64

	switch {
	case math.Abs(velocity) >= size:
		// Fast release: spring fully in the direction of the velocity.
		if velocity > 0 {
			rest = 1
		}
	case targetOffset >= 0.5:
		rest = 1
	default:
		rest = 0
	}

	from := c.Position() * size
	to := (float64(page) + rest) * size

	lastVel := velocity

	vel, err := c.drive(ctx, from, scrollBy, func(elapsed time.Duration) (float64, float64, bool) {
		value, v, done := snap.At(from, to, velocity, elapsed)
		lastVel = v

		return value, v, done
	})
	if err != nil {
		return lastVel, err
	}

	return vel, nil
}
