package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Player glyphs.
const (
	PlayerChar     = 'A'
	PlayerBoomChar = 'X'
)

// MaxShots is how many shots the player may have in flight at once.
const MaxShots = 1

// Player is the ship on the bottom row. It owns its shots in flight.
type Player struct {
	pos   core.Position
	life  lifecycle
	shots []*Shot
}

// NewPlayer creates the player centred on the bottom row.
func NewPlayer() *Player {
	return NewPlayerAt(core.NumCols/2, core.NumRows-1)
}

// NewPlayerAt creates a player at the given cell.
func NewPlayerAt(x, y int) *Player {
	return &Player{
		pos:  core.Position{X: x, Y: y},
		life: newLifecycle(0),
	}
}

// Position returns the player's cell.
func (p *Player) Position() core.Position { return p.pos }

// State returns the lifecycle state.
func (p *Player) State() State { return p.life.state }

// Exploding reports whether the player has been hit.
func (p *Player) Exploding() bool { return p.life.exploding() }

// Dead reports whether the player's explosion has finished.
func (p *Player) Dead() bool { return p.life.dead() }

// Explode starts the player's explosion.
func (p *Player) Explode() { p.life.explode() }

// Shots returns the shots currently in flight.
func (p *Player) Shots() []*Shot { return p.shots }

// MoveLeft shifts the player one column left, stopping at the edge.
func (p *Player) MoveLeft() {
	if !p.life.alive() {
		return
	}
	p.pos.X = core.Clamp(p.pos.X-1, 0, core.NumCols-1)
}

// MoveRight shifts the player one column right, stopping at the edge.
func (p *Player) MoveRight() {
	if !p.life.alive() {
		return
	}
	p.pos.X = core.Clamp(p.pos.X+1, 0, core.NumCols-1)
}

// Shoot fires a shot from the cell above the player.
// Returns false when a shot is already in flight or there is no room above.
// Shots leave play on the top row, so a player on row 1 cannot fire either.
func (p *Player) Shoot() bool {
	if !p.life.alive() || len(p.shots) >= MaxShots {
		return false
	}
	above, ok := p.pos.Above()
	if !ok || above.Y == 0 {
		return false
	}
	p.shots = append(p.shots, NewShot(above.X, above.Y))
	return true
}

// Update advances the player's timer and every shot in flight.
func (p *Player) Update(elapsed time.Duration) {
	p.life.advance(elapsed)
	for _, s := range p.shots {
		s.Update(elapsed)
	}
}

// reapShots drops dead shots, preserving order.
func (p *Player) reapShots() {
	kept := p.shots[:0]
	for _, s := range p.shots {
		if !s.Dead() {
			kept = append(kept, s)
		}
	}
	for i := len(kept); i < len(p.shots); i++ {
		p.shots[i] = nil
	}
	p.shots = kept
}

// Draw paints the player into the frame. Shots draw themselves.
func (p *Player) Draw(dst *core.Frame) {
	if p.Exploding() || p.Dead() {
		dst.SetCell(p.pos.X, p.pos.Y, core.Cell{Rune: PlayerBoomChar, Color: core.ColorRed})
		return
	}
	dst.SetCell(p.pos.X, p.pos.Y, core.Cell{Rune: PlayerChar, Color: core.ColorCyan})
}
