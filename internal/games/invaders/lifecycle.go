package invaders

import "time"

// ExplosionDuration is how long every entity shows its explosion before dying.
const ExplosionDuration = 250 * time.Millisecond

// State is the lifecycle stage of an entity.
type State int

const (
	StateAlive State = iota
	StateExploding
	StateDead
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateAlive:
		return "alive"
	case StateExploding:
		return "exploding"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// lifecycle is the Alive -> Exploding -> Dead state machine shared by all
// entities. remaining counts down the time left in the current state: the step
// interval while alive, the explosion while exploding.
type lifecycle struct {
	state     State
	interval  time.Duration // step cadence while alive, 0 for entities that never step
	remaining time.Duration
}

func newLifecycle(interval time.Duration) lifecycle {
	return lifecycle{
		state:     StateAlive,
		interval:  interval,
		remaining: interval,
	}
}

// advance moves the timer forward and reports whether the alive step fired.
// At most one step fires per call regardless of how large elapsed is.
func (l *lifecycle) advance(elapsed time.Duration) bool {
	switch l.state {
	case StateAlive:
		if l.interval <= 0 {
			return false
		}
		l.remaining -= elapsed
		if l.remaining <= 0 {
			l.remaining = l.interval
			return true
		}
	case StateExploding:
		l.remaining -= elapsed
		if l.remaining <= 0 {
			l.remaining = 0
			l.state = StateDead
		}
	}
	return false
}

// explode switches an alive entity to its explosion timer.
func (l *lifecycle) explode() {
	if l.state != StateAlive {
		return
	}
	l.state = StateExploding
	l.remaining = ExplosionDuration
}

// kill skips the explosion entirely.
func (l *lifecycle) kill() {
	l.state = StateDead
	l.remaining = 0
}

func (l lifecycle) alive() bool     { return l.state == StateAlive }
func (l lifecycle) exploding() bool { return l.state == StateExploding }
func (l lifecycle) dead() bool      { return l.state == StateDead }
