package render

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Diff writes the cells of curr that differ from last to out and returns the
// number of writes. With force, or when last is missing or a different size,
// every cell is written. Cells that became blank are written as blanks.
func Diff(out Output, last, curr *core.Frame, force bool) int {
	full := force || last == nil ||
		last.Width() != curr.Width() || last.Height() != curr.Height()

	writes := 0
	for y := 0; y < curr.Height(); y++ {
		for x := 0; x < curr.Width(); x++ {
			cell := curr.GetCell(x, y)
			if !full && cell == last.GetCell(x, y) {
				continue
			}
			if cell.Rune == 0 {
				cell = core.Blank
			}
			out.WriteCell(y, x, cell)
			writes++
		}
	}
	return writes
}

// Renderer keeps the last drawn frame so each call only emits changes.
type Renderer struct {
	out    Output
	last   *core.Frame
	writes int
}

// NewRenderer creates a renderer that has drawn nothing yet.
func NewRenderer(out Output) *Renderer {
	return &Renderer{out: out}
}

// Draw renders curr against the previously drawn frame and flushes.
// The first call always redraws everything. curr becomes the new baseline and
// must not be modified afterwards.
func (r *Renderer) Draw(curr *core.Frame, force bool) (int, error) {
	n := Diff(r.out, r.last, curr, force)
	r.last = curr
	r.writes += n
	if n == 0 {
		return 0, nil
	}
	if err := r.out.Flush(); err != nil {
		return n, fmt.Errorf("flush output: %w", err)
	}
	return n, nil
}

// Last returns the most recently drawn frame, or nil before the first draw.
func (r *Renderer) Last() *core.Frame {
	return r.last
}

// Writes returns the total number of cell writes issued so far.
func (r *Renderer) Writes() int {
	return r.writes
}
