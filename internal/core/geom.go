// Package core provides fundamental types shared by the simulation, the renderer
// and the platform layer. It has no external dependencies so game logic stays
// pure and testable.
package core

// Position is a column/row pair on the grid. Row 0 is the top of the screen.
type Position struct {
	X, Y int
}

// Above returns the position one row up and false when that would leave the grid.
func (p Position) Above() (Position, bool) {
	if p.Y <= 0 {
		return Position{}, false
	}
	return Position{X: p.X, Y: p.Y - 1}, true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
