package core

import "time"

// RuntimeConfig contains configuration passed to the simulation at creation.
type RuntimeConfig struct {
	TickRate int   // Loop iterations per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay, 0 = time based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the sleep between loop iterations.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// Cue names a sound the audio collaborator should play.
type Cue string

// Audio cues emitted by the game.
const (
	CueStartup Cue = "startup"
	CuePew     Cue = "pew"
	CueExplode Cue = "explode"
	CueLose    Cue = "lose"
	CueWin     Cue = "win"
)

// AllCues lists every cue in a stable order.
func AllCues() []Cue {
	return []Cue{CueStartup, CuePew, CueExplode, CueLose, CueWin}
}

// CueSink receives fire-and-forget audio notifications.
type CueSink interface {
	Play(cue Cue)
}

// Outcome is the terminal state of a round.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeWon
	OutcomeLost
	OutcomeQuit
)

// String returns a human-readable outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Over reports whether the round has ended.
func (o Outcome) Over() bool {
	return o != OutcomeRunning
}

// StepResult is returned by the simulation after each tick.
type StepResult struct {
	Outcome Outcome
	Cues    []Cue // Sounds requested during this tick, in order
	Spawned bool  // A new invader entered this tick
	Kills   int   // Invaders hit by shots this tick
}
