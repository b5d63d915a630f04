package paging

import (
	"context"
	"time"
)

// AnimateScrollToPage smoothly moves the position to page+offset along the
// snap curve, then settles to the nearest whole page. It blocks until the
// motion completes, yielding between frames so an equal or higher priority
// request can preempt it; when preempted it returns nil and leaves the
// partial position in place. Calling it while already exactly at the target
// is a no-op.
func (c *Controller) AnimateScrollToPage(ctx context.Context, page int, offset, velocity float64) error {
	if err := c.checkTarget(page, offset); err != nil {
		return err
	}

	c.mu.Lock()
	atTarget := page == c.page && offset == c.offset
	c.mu.Unlock()

	if atTarget {
		return nil
	}

	err := c.gate.Mutate(ctx, PriorityDefault, func(mctx context.Context) error {
		c.inMotion.Store(true)
		defer c.inMotion.Store(false)

		size := c.scrollDivisor()
		from := c.Position() * size
		to := (float64(page) + offset) * size

		_, err := c.drive(mctx, from, c.ScrollPixels, func(elapsed time.Duration) (float64, float64, bool) {
			return c.snap.At(from, to, velocity, elapsed)
		})
		if err != nil {
			return err
		}

		c.settle()

		return nil
	})

	return maskPreempted(err)
}

// drive runs one motion to completion: each frame it evaluates the motion at
// the total elapsed time and feeds the incremental pixel delta to scrollBy.
// It reports the last observed velocity, and the preemption or cancellation
// cause if the motion was interrupted mid-flight.
func (c *Controller) drive(
	ctx context.Context,
	from float64,
	scrollBy func(px float64) float64,
	at func(elapsed time.Duration) (value, vel float64, done bool),
) (float64, error) {
	start, err := c.clock.Frame(ctx)
	if err != nil {
		return 0, cancelCause(ctx, err)
	}

	prev := from

	for {
		now, err := c.clock.Frame(ctx)
		if err != nil {
			return 0, cancelCause(ctx, err)
		}

		value, vel, done := at(now.Sub(start))
		scrollBy(value - prev)
		prev = value

		if done {
			return vel, nil
		}
	}
}
