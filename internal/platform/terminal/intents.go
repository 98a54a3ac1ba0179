package terminal

import (
	"sync"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// IntentBuffer collects intents from an input goroutine until the game loop
// drains them. It implements core.IntentSource.
type IntentBuffer struct {
	mu      sync.Mutex
	pending []core.Intent
	err     error
}

// NewIntentBuffer creates an empty buffer.
func NewIntentBuffer() *IntentBuffer {
	return &IntentBuffer{}
}

// Push queues an intent. IntentNone is dropped.
func (b *IntentBuffer) Push(in core.Intent) {
	if in == core.IntentNone {
		return
	}
	b.mu.Lock()
	b.pending = append(b.pending, in)
	b.mu.Unlock()
}

// Fail records a read failure. Only the first failure is kept.
func (b *IntentBuffer) Fail(err error) {
	if err == nil {
		return
	}
	b.mu.Lock()
	if b.err == nil {
		b.err = err
	}
	b.mu.Unlock()
}

// Drain returns everything pushed since the last call, oldest first.
// Once a failure was recorded it is returned on every call.
func (b *IntentBuffer) Drain() ([]core.Intent, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.err != nil {
		return nil, b.err
	}
	out := b.pending
	b.pending = nil
	return out, nil
}
