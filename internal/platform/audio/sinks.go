package audio

import (
	"sync"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(core.Cue) {}

// Recorder keeps cues in the order they were played.
type Recorder struct {
	mu   sync.Mutex
	cues []core.Cue
}

func (r *Recorder) Play(cue core.Cue) {
	r.mu.Lock()
	r.cues = append(r.cues, cue)
	r.mu.Unlock()
}

// Cues returns a copy of the recorded cues.
func (r *Recorder) Cues() []core.Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Cue, len(r.cues))
	copy(out, r.cues)
	return out
}
