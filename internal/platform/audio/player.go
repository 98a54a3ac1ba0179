package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Options configure a speaker Player.
type Options struct {
	SoundDir string
	Volume   float64
	Logger   *log.Logger
}

// Bank resolves cues to streamers, preferring loaded samples over synthesis.
type Bank struct {
	rate    beep.SampleRate
	volume  float64
	samples map[core.Cue]*beep.Buffer
}

// NewBank returns a bank at the given rate. samples may be nil.
func NewBank(rate beep.SampleRate, volume float64, samples map[core.Cue]*beep.Buffer) *Bank {
	return &Bank{rate: rate, volume: volume, samples: samples}
}

// Streamer returns a fresh, finite streamer for cue.
func (b *Bank) Streamer(cue core.Cue) beep.Streamer {
	var s beep.Streamer
	if buf, ok := b.samples[cue]; ok {
		s = buf.Streamer(0, buf.Len())
	} else {
		s = Synth(b.rate, cue)
	}
	return newVolume(s, b.volume)
}

// Player mixes cues onto the speaker. It implements core.CueSink.
type Player struct {
	mu      sync.Mutex
	bank    *Bank
	mixer   *beep.Mixer
	pending pendingCues
	logger  *log.Logger
	closed  bool
}

// NewPlayer opens the speaker. A broken sample directory is logged and the
// synthesized cues are used instead.
func NewPlayer(opts Options) (*Player, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	samples, err := LoadSamples(opts.SoundDir, SampleRate)
	if err != nil {
		logger.Warn("loading sound samples", "dir", opts.SoundDir, "err", err)
		samples = nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	p := &Player{
		bank:   NewBank(SampleRate, opts.Volume, samples),
		mixer:  &beep.Mixer{},
		logger: logger,
	}
	speaker.Play(p.mixer)
	logger.Debug("audio ready", "samples", len(samples))
	return p, nil
}

// Play queues cue without blocking.
func (p *Player) Play(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	p.pending.add()
	s := beep.Seq(p.bank.Streamer(cue), beep.Callback(p.pending.done))
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Wait blocks until every queued cue has finished or timeout elapses. It
// reports whether playback drained.
func (p *Player) Wait(timeout time.Duration) bool {
	if p.pending.wait(timeout) {
		return true
	}
	p.logger.Debug("audio wait timed out", "timeout", timeout)
	return false
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	speaker.Clear()
	speaker.Close()
	// Cleared streamers never reach their callbacks.
	p.pending.release()
}
