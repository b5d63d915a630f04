// Package paging implements the position engine behind a paged view: it
// tracks the current logical page and a fractional offset toward the next
// page, and moves that position instantly, by smooth animated transition, or
// by physics-based fling.
//
// The package renders nothing and decodes no pointer events. It consumes a
// continuous scroll-delta stream plus a fling-velocity signal and produces
// position updates, arbitrating the competing write paths (drag, programmatic
// seek, fling) through a priority-aware [MutatorMutex]. Direct-manipulation
// deltas ([Controller.ScrollBy], [Controller.Dispatch]) bypass the gate and
// always apply immediately.
package paging

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/macropower/flick/pkg/motion"
)

var (
	// ErrInvalidArgument is returned when a page count, page, or offset is out
	// of range. It is always synchronous and leaves no partial state change.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPreempted reports that a mutation lost the exclusivity gate to a
	// higher priority request. It doubles as the cancellation cause delivered
	// to an interrupted motion; the animated operations absorb it and return
	// nil, leaving whatever partial position was reached in place.
	ErrPreempted = errors.New("scroll preempted")
)

// Controller owns the position state of one paged view.
//
// Position is the pair (page, offset): page is the current logical page and
// offset is fractional progress in [0,1] toward the next page. Offset is
// forced to exactly 0 on the last page, so the continuous position
// page+offset ranges over [0, pageCount-1].
//
// A Controller is safe for concurrent use. Animated operations block the
// calling goroutine until the motion completes or is preempted.
type Controller struct {
	clock     motion.Clock
	snap      motion.Curve
	decay     motion.Decay
	observers []func()

	pageCount int
	page      int
	offset    float64
	pageSize  float64

	gate     MutatorMutex
	inMotion atomic.Bool
	mu       sync.Mutex
}

// Option configures a [Controller].
type Option func(*Controller)

// WithPageSize sets the pixel size of one page. Negative sizes are coerced
// to 0 (no layout yet).
func WithPageSize(px float64) Option {
	return func(c *Controller) {
		c.pageSize = math.Max(px, 0)
	}
}

// WithSnapCurve sets the curve used by animated seeks and the fling snap
// branch. Defaults to [motion.DefaultSpring].
func WithSnapCurve(curve motion.Curve) Option {
	return func(c *Controller) {
		c.snap = curve
	}
}

// WithDecayCurve sets the curve used by the fling decay branch. Defaults to
// [motion.NewExponentialDecay].
func WithDecayCurve(d motion.Decay) Option {
	return func(c *Controller) {
		c.decay = d
	}
}

// WithClock sets the frame clock pacing animated operations. Defaults to a
// real-time [motion.TickerClock] at [motion.DefaultFPS].
func WithClock(clock motion.Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// WithObserver registers fn to run after every completed mutation. Observers
// must not block; they run on whichever goroutine performed the mutation.
func WithObserver(fn func()) Option {
	return func(c *Controller) {
		c.observers = append(c.observers, fn)
	}
}

// New creates a controller at the given position. The arguments must satisfy
// the position invariants: pageCount non-negative, page within
// [0, max(pageCount-1, 0)], offset within [0,1] and exactly 0 on the last
// page, and everything 0 when pageCount is 0.
func New(pageCount, page int, offset float64, opts ...Option) (*Controller, error) {
	c := &Controller{
		clock: motion.NewTickerClock(motion.DefaultFPS),
		snap:  motion.DefaultSpring(),
		decay: motion.NewExponentialDecay(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := validate(pageCount, page, offset); err != nil {
		return nil, err
	}

	c.pageCount = pageCount
	c.page = page
	c.offset = offset

	return c, nil
}

func validate(pageCount, page int, offset float64) error {
	if pageCount < 0 {
		return fmt.Errorf("%w: page count %d is negative", ErrInvalidArgument, pageCount)
	}

	last := lastPage(pageCount)
	if page < 0 || page > last {
		return fmt.Errorf("%w: page %d outside [0, %d]", ErrInvalidArgument, page, last)
	}
	if offset < 0 || offset > 1 || math.IsNaN(offset) {
		return fmt.Errorf("%w: offset %v outside [0, 1]", ErrInvalidArgument, offset)
	}
	if page == last && offset != 0 {
		return fmt.Errorf("%w: offset %v on the last page must be 0", ErrInvalidArgument, offset)
	}

	return nil
}

// PageCount reports the total number of pages.
func (c *Controller) PageCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pageCount
}

// SetPageCount changes the total number of pages, re-clamping the current
// page into the new bounds. Negative counts fail with [ErrInvalidArgument].
func (c *Controller) SetPageCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: page count %d is negative", ErrInvalidArgument, n)
	}

	c.mu.Lock()
	c.pageCount = n
	c.clampLocked()
	c.mu.Unlock()

	c.notify()

	return nil
}

// Page reports the current logical page.
func (c *Controller) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.page
}

// Offset reports the fractional progress toward the next page, in [0,1].
func (c *Controller) Offset() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.offset
}

// Position reports the continuous position page+offset. It is derived, never
// stored.
func (c *Controller) Position() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.positionLocked()
}

// PageSize reports the pixel size of one page. 0 means no layout yet.
func (c *Controller) PageSize() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pageSize
}

// SetPageSize updates the pixel size of one page, pushed by the layout
// collaborator whenever the viewport dimension is known or changes.
func (c *Controller) SetPageSize(px float64) error {
	if px < 0 || math.IsNaN(px) {
		return fmt.Errorf("%w: page size %v is negative", ErrInvalidArgument, px)
	}

	c.mu.Lock()
	c.pageSize = px
	c.mu.Unlock()

	return nil
}

// InMotion reports whether an animated seek or fling is currently driving the
// position. Callers derive the settled-page notification stream by watching
// for true-to-false transitions and reading [Controller.Page].
func (c *Controller) InMotion() bool {
	return c.inMotion.Load()
}

// Subscribe registers fn to run after every completed mutation.
func (c *Controller) Subscribe(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.observers = append(c.observers, fn)
}

// ScrollToPage instantly seeks to page+offset, interrupting any in-progress
// animation. The page must be within [0, pageCount) (0 when there are no
// pages) and the offset within [0,1].
func (c *Controller) ScrollToPage(ctx context.Context, page int, offset float64) error {
	if err := c.checkTarget(page, offset); err != nil {
		return err
	}

	err := c.gate.Mutate(ctx, PriorityDefault, func(context.Context) error {
		c.mu.Lock()
		c.page = page
		c.offset = offset
		c.clampLocked()
		c.mu.Unlock()

		c.notify()

		return nil
	})

	return maskPreempted(err)
}

// ScrollBy applies a fractional position delta, positive toward the end. It
// is synchronous, never suspends, and applies immediately even while an
// animation owns the exclusivity gate: direct manipulation is never dropped
// or queued. It returns the unconsumed portion of delta, so a caller chaining
// scrollable regions can hand off overflow.
func (c *Controller) ScrollBy(delta float64) float64 {
	c.mu.Lock()
	pos := c.positionLocked()
	target := clamp(pos+delta, 0, float64(lastPage(c.pageCount)))
	c.setPositionLocked(target)
	consumed := target - pos
	c.mu.Unlock()

	c.notify()

	return delta - consumed
}

// ScrollPixels applies a pixel position delta, positive toward the end, and
// returns the unconsumed remainder in pixels. A zero page size is treated as
// 1 to avoid division faults during pre-layout calls.
func (c *Controller) ScrollPixels(px float64) float64 {
	div := c.scrollDivisor()

	return c.ScrollBy(px/div) * div
}

// Dispatch applies a raw drag delta in pixels and returns the unconsumed
// remainder in the same convention. Drag deltas carry the opposite sign of
// content advance: dragging content toward the start moves the position
// toward the end.
func (c *Controller) Dispatch(px float64) float64 {
	return -c.ScrollPixels(-px)
}

// Scroll runs fn with exclusive write access to position state at the given
// priority. See [MutatorMutex.Mutate] for the preemption contract.
func (c *Controller) Scroll(ctx context.Context, priority MutatePriority, fn func(ctx context.Context) error) error {
	return c.gate.Mutate(ctx, priority, fn)
}

// settle rounds the position to the nearest whole page and zeroes the offset.
func (c *Controller) settle() {
	c.mu.Lock()
	c.page += int(math.Round(c.offset))
	c.offset = 0
	c.clampLocked()
	c.mu.Unlock()

	c.notify()
}

func (c *Controller) forcePosition(page int, offset float64) {
	c.mu.Lock()
	c.page = page
	c.offset = offset
	c.clampLocked()
	c.mu.Unlock()

	c.notify()
}

// checkTarget validates seek arguments against the current page count.
func (c *Controller) checkTarget(page int, offset float64) error {
	last := lastPage(c.PageCount())

	if page < 0 || page > last {
		return fmt.Errorf("%w: page %d outside [0, %d]", ErrInvalidArgument, page, last)
	}
	if offset < 0 || offset > 1 || math.IsNaN(offset) {
		return fmt.Errorf("%w: offset %v outside [0, 1]", ErrInvalidArgument, offset)
	}

	return nil
}

// clampLocked re-applies the position invariants. Callers must hold c.mu.
func (c *Controller) clampLocked() {
	if c.pageCount == 0 {
		c.page = 0
		c.offset = 0

		return
	}

	last := lastPage(c.pageCount)
	if c.page < 0 {
		c.page = 0
	}
	if c.page > last {
		c.page = last
		c.offset = 0
	}

	c.offset = clamp(c.offset, 0, 1)
	if c.page == last {
		c.offset = 0
	}
}

func (c *Controller) positionLocked() float64 {
	return float64(c.page) + c.offset
}

// setPositionLocked decomposes a continuous position into page and offset.
// Callers must hold c.mu and pass a position already clamped into bounds.
func (c *Controller) setPositionLocked(pos float64) {
	c.page = int(math.Floor(pos))
	c.offset = pos - float64(c.page)
	c.clampLocked()
}

// scrollDivisor reports the pixel-to-fraction divisor, coercing a transient
// zero page size to 1.
func (c *Controller) scrollDivisor() float64 {
	return math.Max(c.PageSize(), 1)
}

func (c *Controller) notify() {
	c.mu.Lock()
	observers := make([]func(), len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
}

// maskPreempted absorbs the preemption signal: an interrupted motion is a
// cancellation, not a failure, and its partial effects stay applied.
func maskPreempted(err error) error {
	if errors.Is(err, ErrPreempted) {
		return nil
	}

	return err
}

func lastPage(pageCount int) int {
	return max(pageCount-1, 0)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
