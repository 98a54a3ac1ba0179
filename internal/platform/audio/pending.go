package audio

import (
	"sync"
	"time"
)

// pendingCues counts cues still playing. release zeroes the count for
// streamers the speaker discarded before their callbacks ran.
type pendingCues struct {
	mu   sync.Mutex
	n    int
	idle chan struct{}
}

func (p *pendingCues) add() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.n == 0 {
		p.idle = make(chan struct{})
	}
	p.n++
}

func (p *pendingCues) done() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.n == 0 {
		return
	}
	p.n--
	if p.n == 0 {
		close(p.idle)
	}
}

// release forgets every outstanding cue and wakes all waiters.
func (p *pendingCues) release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.n == 0 {
		return
	}
	p.n = 0
	close(p.idle)
}

// wait blocks until the count reaches zero or timeout elapses.
func (p *pendingCues) wait(timeout time.Duration) bool {
	p.mu.Lock()
	if p.n == 0 {
		p.mu.Unlock()
		return true
	}
	idle := p.idle
	p.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-idle:
		return true
	case <-timer.C:
		return false
	}
}
