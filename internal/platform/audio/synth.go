// Package audio plays the game's sound cues through the system speaker.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// SampleRate is the speaker rate. WAV samples at other rates are resampled.
const SampleRate = beep.SampleRate(44100)

// noise is white noise with an exponential decay, used for explosions.
type noise struct {
	rng      *rand.Rand
	position int
	total    int
	decay    float64
}

func newNoise(rate beep.SampleRate, d time.Duration) *noise {
	total := rate.N(d)
	return &noise{
		rng:   rand.New(rand.NewSource(1)),
		total: total,
		decay: 5.0 / float64(total),
	}
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if n.position >= n.total {
			return i, i > 0
		}
		v := (n.rng.Float64()*2 - 1) * math.Exp(-n.decay*float64(n.position))
		samples[i][0] = v
		samples[i][1] = v
		n.position++
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// tone is a sine note of fixed length. Frequencies the generator rejects
// yield silence of the same length.
func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(d))
	}
	return beep.Take(rate.N(d), sine)
}

// newVolume scales s linearly. Zero or negative volume silences it.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Synth builds a finite streamer for a cue.
func Synth(rate beep.SampleRate, cue core.Cue) beep.Streamer {
	ms := time.Millisecond
	switch cue {
	case core.CueStartup:
		return beep.Seq(
			tone(rate, 523.25, 90*ms),
			tone(rate, 659.25, 90*ms),
			tone(rate, 783.99, 90*ms),
			tone(rate, 1046.5, 180*ms),
		)
	case core.CuePew:
		return newVolume(beep.Seq(
			tone(rate, 1760, 25*ms),
			tone(rate, 1320, 25*ms),
			tone(rate, 990, 30*ms),
		), 0.5)
	case core.CueExplode:
		return newNoise(rate, 250*ms)
	case core.CueLose:
		return beep.Seq(
			tone(rate, 392, 200*ms),
			tone(rate, 311.13, 200*ms),
			tone(rate, 261.63, 400*ms),
		)
	case core.CueWin:
		return beep.Seq(
			tone(rate, 523.25, 120*ms),
			tone(rate, 659.25, 120*ms),
			tone(rate, 783.99, 120*ms),
			tone(rate, 1046.5, 120*ms),
			tone(rate, 1318.51, 360*ms),
		)
	}
	return beep.Silence(0)
}
