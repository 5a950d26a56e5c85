package dispatch

import "sync"

// maxPending bounds the deferred queue. When full, the oldest envelope is
// dropped to make room for the newest.
const maxPending = 8192

// pendingBuffer is a double-buffered queue of deferred envelopes. Producers
// push into the front buffer; Swap atomically flips the buffers so the tick
// can drain a stable snapshot while producers keep pushing.
type pendingBuffer struct {
	mu      sync.Mutex
	front   []EventData
	back    []EventData
	dropped uint64
}

func newPendingBuffer() *pendingBuffer {
	return &pendingBuffer{
		front: make([]EventData, 0, 64),
		back:  make([]EventData, 0, 64),
	}
}

// Push enqueues d. If the buffer is at capacity the oldest envelope is
// dropped, consuming it so pooled events still return to their pool.
func (b *pendingBuffer) Push(d EventData) {
	var evicted *EventData

	b.mu.Lock()
	if len(b.front) >= maxPending {
		old := b.front[0]
		evicted = &old
		b.front = append(b.front[:0], b.front[1:]...)
		b.dropped++
	}
	b.front = append(b.front, d)
	b.mu.Unlock()

	if evicted != nil {
		evicted.consume()
	}
}

// Swap flips the buffers and returns the envelopes queued since the previous
// swap. The returned slice is owned by the caller until the next Swap.
func (b *pendingBuffer) Swap() []EventData {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.front, b.back = b.back[:0], b.front
	return b.back
}

// Len returns the number of envelopes waiting in the front buffer.
func (b *pendingBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.front)
}

// Dropped returns the number of envelopes evicted by capacity pressure.
func (b *pendingBuffer) Dropped() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.dropped
}

// Clear discards all queued envelopes, consuming each one.
func (b *pendingBuffer) Clear() {
	b.mu.Lock()
	discarded := b.front
	b.front = b.back[:0]
	b.back = discarded[:0:0]
	b.mu.Unlock()

	for i := range discarded {
		discarded[i].consume()
	}
}
