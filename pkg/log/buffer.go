package log

import (
	"io"
	"sync"
)

const defaultBufferCapacity = 100

// RingBuffer is a thread-safe ring of recent log entries implementing
// [io.Writer]. While the TUI owns the terminal, the log handler writes here
// instead of stderr; the buffered entries are flushed once the program exits.
// When full, the oldest entry is overwritten.
type RingBuffer struct {
	entries  [][]byte
	capacity int
	size     int
	head     int
	mu       sync.RWMutex
}

// NewRingBuffer creates a ring buffer holding up to capacity entries.
// Non-positive capacities fall back to a default of 100.
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity <= 0 {
		capacity = defaultBufferCapacity
	}

	return &RingBuffer{
		entries:  make([][]byte, capacity),
		capacity: capacity,
	}
}

// Write implements [io.Writer]. Each call stores one entry; the data is
// copied so the caller may reuse p.
func (b *RingBuffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	entry := make([]byte, len(p))
	copy(entry, p)

	b.entries[b.head] = entry
	b.head = (b.head + 1) % b.capacity

	if b.size < b.capacity {
		b.size++
	}

	return len(p), nil
}

// WriteTo implements [io.WriterTo], draining the buffered entries in order
// from oldest to newest. The buffer is left empty.
func (b *RingBuffer) WriteTo(w io.Writer) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var written int64

	start := b.head - b.size
	if start < 0 {
		start += b.capacity
	}

	for i := range b.size {
		entry := b.entries[(start+i)%b.capacity]

		n, err := w.Write(entry)
		written += int64(n)

		if err != nil {
			return written, err //nolint:wrapcheck // Pass through the writer's error.
		}
	}

	b.size = 0
	b.head = 0

	return written, nil
}

// Size reports the number of buffered entries.
func (b *RingBuffer) Size() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.size
}

// Capacity reports the maximum number of entries the buffer can hold.
func (b *RingBuffer) Capacity() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.capacity
}

// IsFull reports whether the buffer has wrapped at least once.
func (b *RingBuffer) IsFull() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.size == b.capacity
}
