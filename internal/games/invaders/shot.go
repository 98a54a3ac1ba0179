package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ShotInterval is how often a shot climbs one row.
const ShotInterval = 50 * time.Millisecond

// Shot glyphs.
const (
	ShotChar     = '|'
	ShotBoomChar = '*'
)

// Shot is a projectile fired upward by the player.
type Shot struct {
	pos  core.Position
	life lifecycle
}

// NewShot creates a shot at the given cell.
func NewShot(x, y int) *Shot {
	return &Shot{
		pos:  core.Position{X: x, Y: y},
		life: newLifecycle(ShotInterval),
	}
}

// Position returns the shot's cell.
func (s *Shot) Position() core.Position { return s.pos }

// State returns the lifecycle state.
func (s *Shot) State() State { return s.life.state }

// Exploding reports whether the shot has hit something.
func (s *Shot) Exploding() bool { return s.life.exploding() }

// Dead reports whether the shot should be reaped.
func (s *Shot) Dead() bool { return s.life.dead() }

// Explode starts the shot's explosion.
func (s *Shot) Explode() { s.life.explode() }

// Update climbs one row each time the step timer fires.
// A shot that reaches the top row leaves play without exploding.
func (s *Shot) Update(elapsed time.Duration) {
	if !s.life.advance(elapsed) {
		return
	}
	if s.pos.Y > 0 {
		s.pos.Y--
	}
	if s.pos.Y == 0 {
		s.life.kill()
	}
}

// Draw paints the shot into the frame.
func (s *Shot) Draw(dst *core.Frame) {
	if s.Exploding() {
		dst.SetCell(s.pos.X, s.pos.Y, core.Cell{Rune: ShotBoomChar, Color: core.ColorOrange})
		return
	}
	dst.SetCell(s.pos.X, s.pos.Y, core.Cell{Rune: ShotChar, Color: core.ColorBrightYellow})
}
