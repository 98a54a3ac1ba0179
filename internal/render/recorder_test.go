package render

import (
	"errors"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

type cellWrite struct {
	row, col int
	cell     core.Cell
}

// recorder is an Output that keeps every operation and a replayed screen.
type recorder struct {
	writes   []cellWrite
	cursor   []bool
	flushes  int
	failOn   int // fail the Nth flush, 0 = never
	screen   *core.Frame
	flushErr error
}

func newRecorder() *recorder {
	return &recorder{screen: core.NewFrame()}
}

func (r *recorder) WriteCell(row, col int, cell core.Cell) {
	r.writes = append(r.writes, cellWrite{row, col, cell})
	r.screen.SetCell(col, row, cell)
}

func (r *recorder) SetCursorVisible(visible bool) {
	r.cursor = append(r.cursor, visible)
}

func (r *recorder) Flush() error {
	r.flushes++
	if r.failOn > 0 && r.flushes == r.failOn {
		r.flushErr = errors.New("broken pipe")
		return r.flushErr
	}
	return nil
}

func (r *recorder) reset() {
	r.writes = nil
}
