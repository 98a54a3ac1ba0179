package core

import (
	"strings"
)

// Grid dimensions shared by the simulation and every renderer.
const (
	NumCols = 40
	NumRows = 20
)

// Cell is a single glyph on the grid together with its color.
type Cell struct {
	Rune  rune
	Color Color
}

// Blank is the value of an empty cell.
var Blank = Cell{Rune: ' ', Color: ColorDefault}

// IsBlank reports whether the cell renders as empty space.
func (c Cell) IsBlank() bool {
	return c.Rune == ' ' || c.Rune == 0
}

// Drawable is implemented by anything that can paint itself into a Frame.
type Drawable interface {
	Draw(dst *Frame)
}

// Frame is a fixed-size 2D glyph buffer holding one rendered screen.
// Frames are produced by the simulation and handed to the renderer; once sent
// the producer must not touch the frame again.
type Frame struct {
	width  int
	height int
	cells  [][]Cell
}

// NewFrame creates a blank NumCols x NumRows frame.
func NewFrame() *Frame {
	return NewFrameSize(NumCols, NumRows)
}

// NewFrameSize creates a blank frame with the given dimensions.
func NewFrameSize(width, height int) *Frame {
	f := &Frame{
		width:  width,
		height: height,
	}
	f.cells = make([][]Cell, height)
	for y := range f.cells {
		f.cells[y] = make([]Cell, width)
	}
	f.Clear()
	return f
}

// Width returns the frame width in cells.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in cells.
func (f *Frame) Height() int {
	return f.height
}

// Clear resets every cell to blank.
func (f *Frame) Clear() {
	for y := range f.cells {
		for x := range f.cells[y] {
			f.cells[y][x] = Blank
		}
	}
}

// InBounds reports whether (x, y) addresses a cell of this frame.
func (f *Frame) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Set places a rune with the default color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (f *Frame) Set(x, y int, r rune) {
	f.SetCell(x, y, Cell{Rune: r})
}

// SetCell places a cell at the given position. Last writer wins.
// Out-of-bounds coordinates are silently ignored.
func (f *Frame) SetCell(x, y int, c Cell) {
	if !f.InBounds(x, y) {
		return
	}
	f.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (f *Frame) Get(x, y int) rune {
	return f.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position, or Blank when out of bounds.
func (f *Frame) GetCell(x, y int) Cell {
	if !f.InBounds(x, y) {
		return Blank
	}
	return f.cells[y][x]
}

// Draw paints each drawable into the frame in order.
func (f *Frame) Draw(items ...Drawable) {
	for _, d := range items {
		d.Draw(f)
	}
}

// Equal reports whether two frames have the same size and contents.
func (f *Frame) Equal(other *Frame) bool {
	if other == nil || f.width != other.width || f.height != other.height {
		return false
	}
	for y := range f.cells {
		for x := range f.cells[y] {
			if f.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	c := NewFrameSize(f.width, f.height)
	for y := range f.cells {
		copy(c.cells[y], f.cells[y])
	}
	return c
}

// String converts the frame to plain text, one line per row.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow(f.width*f.height + f.height)

	for y := 0; y < f.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < f.width; x++ {
			sb.WriteRune(f.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (f *Frame) Row(y int) string {
	if y < 0 || y >= f.height {
		return strings.Repeat(" ", f.width)
	}
	var sb strings.Builder
	for _, c := range f.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
