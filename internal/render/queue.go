package render

import (
	"errors"
	"sync"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ErrQueueClosed is returned when sending on a closed queue.
var ErrQueueClosed = errors.New("render: frame queue closed")

// FrameQueue is an unbounded FIFO handing frames from one producer to one
// consumer. Send never blocks; Receive blocks until a frame arrives or the
// queue is closed and drained.
type FrameQueue struct {
	mu     sync.Mutex
	ready  *sync.Cond
	frames []*core.Frame
	closed bool
}

// NewFrameQueue creates an empty open queue.
func NewFrameQueue() *FrameQueue {
	q := &FrameQueue{}
	q.ready = sync.NewCond(&q.mu)
	return q
}

// Send appends a frame. Ownership of the frame passes to the consumer.
func (q *FrameQueue) Send(f *core.Frame) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	q.frames = append(q.frames, f)
	q.ready.Signal()
	return nil
}

// Receive returns the oldest frame. ok is false once the queue is closed and
// every buffered frame has been received.
func (q *FrameQueue) Receive() (f *core.Frame, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.frames) == 0 && !q.closed {
		q.ready.Wait()
	}
	if len(q.frames) == 0 {
		return nil, false
	}
	f = q.frames[0]
	q.frames[0] = nil
	q.frames = q.frames[1:]
	return f, true
}

// Close stops further sends. Frames already queued are still delivered.
func (q *FrameQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.ready.Broadcast()
}

// Len returns how many frames are waiting.
func (q *FrameQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.frames)
}
