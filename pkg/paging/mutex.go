package paging

import (
	"context"
	"fmt"
	"sync"
)

// MutatePriority ranks competing position mutations.
type MutatePriority int

const (
	// PriorityDefault is used by programmatic seeks, animations, and flings.
	PriorityDefault MutatePriority = iota

	// PriorityHigh preempts any in-flight mutation and cannot be preempted by
	// default-priority requests.
	PriorityHigh
)

// MutatorMutex grants exclusive write access to position state for the
// duration of a mutation. A new mutation at equal or higher priority cancels
// the current holder via its context; the holder unwinds cooperatively at its
// next frame boundary and its partial effects stay applied. A new mutation at
// lower priority fails immediately with [ErrPreempted] instead of waiting.
//
// The zero value is ready to use.
type MutatorMutex struct {
	active *mutation
	claim  sync.Mutex
	run    sync.Mutex
}

type mutation struct {
	cancel   context.CancelCauseFunc
	priority MutatePriority
}

// Mutate runs fn with exclusive write access. The context passed to fn is
// cancelled, with [ErrPreempted] as the cause, when a newer mutation takes
// over; fn must check it at every frame boundary and return promptly.
//
// Mutate returns fn's error, or [ErrPreempted] if fn was superseded before it
// could start.
func (m *MutatorMutex) Mutate(ctx context.Context, priority MutatePriority, fn func(ctx context.Context) error) error {
	mctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	mu := &mutation{priority: priority, cancel: cancel}

	m.claim.Lock()
	if cur := m.active; cur != nil {
		if priority < cur.priority {
			m.claim.Unlock()

			return fmt.Errorf("%w: a higher priority mutation is in progress", ErrPreempted)
		}

		cur.cancel(ErrPreempted)
	}
	m.active = mu
	m.claim.Unlock()

	// Wait for the previous holder to unwind.
	m.run.Lock()
	defer func() {
		m.claim.Lock()
		if m.active == mu {
			m.active = nil
		}
		m.claim.Unlock()

		m.run.Unlock()
	}()

	// A later claim may have replaced this one while it waited.
	if err := mctx.Err(); err != nil {
		return cancelCause(mctx, err)
	}

	return fn(mctx)
}

// cancelCause prefers the cancellation cause over the bare context error, so
// the preemption sentinel survives the unwind of an interrupted motion.
func cancelCause(ctx context.Context, err error) error {
	if cause := context.Cause(ctx); cause != nil {
		return cause
	}

	return err
}
