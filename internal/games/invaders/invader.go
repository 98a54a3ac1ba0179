package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// InvaderInterval is how often an invader descends one row.
const InvaderInterval = 1000 * time.Millisecond

// Invader glyphs.
const (
	InvaderChar     = 'V'
	InvaderBoomChar = '*'
)

// Invader descends from the top row toward the player.
type Invader struct {
	pos  core.Position
	life lifecycle
}

// NewInvader creates an invader at the given cell.
func NewInvader(x, y int) *Invader {
	return &Invader{
		pos:  core.Position{X: x, Y: y},
		life: newLifecycle(InvaderInterval),
	}
}

// Position returns the invader's cell. Y == core.NumRows means it left the grid.
func (inv *Invader) Position() core.Position { return inv.pos }

// State returns the lifecycle state.
func (inv *Invader) State() State { return inv.life.state }

// Exploding reports whether the invader has been hit.
func (inv *Invader) Exploding() bool { return inv.life.exploding() }

// Dead reports whether the invader should be reaped.
func (inv *Invader) Dead() bool { return inv.life.dead() }

// Landed reports whether the invader died by reaching the bottom.
func (inv *Invader) Landed() bool { return inv.pos.Y >= core.NumRows }

// Explode starts the invader's explosion.
func (inv *Invader) Explode() { inv.life.explode() }

// Update descends one row each time the step timer fires. Reaching row
// NumRows kills the invader without an explosion.
func (inv *Invader) Update(elapsed time.Duration) {
	if !inv.life.advance(elapsed) {
		return
	}
	inv.pos.Y++
	if inv.pos.Y >= core.NumRows {
		inv.pos.Y = core.NumRows
		inv.life.kill()
	}
}

// Draw paints the invader into the frame. Off-grid invaders draw nothing.
func (inv *Invader) Draw(dst *core.Frame) {
	if inv.Exploding() {
		dst.SetCell(inv.pos.X, inv.pos.Y, core.Cell{Rune: InvaderBoomChar, Color: core.ColorBrightRed})
		return
	}
	dst.SetCell(inv.pos.X, inv.pos.Y, core.Cell{Rune: InvaderChar, Color: core.ColorBrightGreen})
}
