package render

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestFirstDrawIsFull(t *testing.T) {
	out := newRecorder()
	r := NewRenderer(out)

	n, err := r.Draw(core.NewFrame(), false)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if n != core.NumCols*core.NumRows {
		t.Errorf("first draw wrote %d cells, expected %d", n, core.NumCols*core.NumRows)
	}
	if out.flushes != 1 {
		t.Errorf("flushes = %d, expected 1", out.flushes)
	}
}

func TestDiffIdenticalFramesWritesNothing(t *testing.T) {
	out := newRecorder()
	f := core.NewFrame()
	f.Set(3, 4, 'V')

	if n := Diff(out, f, f.Clone(), false); n != 0 {
		t.Errorf("Diff of identical frames wrote %d cells", n)
	}

	r := NewRenderer(out)
	r.Draw(f, false)
	flushes := out.flushes
	out.reset()

	n, err := r.Draw(f.Clone(), false)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if n != 0 || len(out.writes) != 0 {
		t.Errorf("second identical draw wrote %d cells", len(out.writes))
	}
	if out.flushes != flushes {
		t.Error("nothing to write should not flush")
	}
}

func TestDiffOnlyChangedCells(t *testing.T) {
	out := newRecorder()
	last := core.NewFrame()
	last.Set(1, 1, 'V')
	last.Set(2, 2, 'A')

	curr := core.NewFrame()
	curr.Set(1, 2, 'V')                                               // moved down
	curr.Set(2, 2, 'A')                                               // unchanged
	curr.SetCell(5, 5, core.Cell{Rune: '|', Color: core.ColorYellow}) // new

	n := Diff(out, last, curr, false)
	if n != 3 {
		t.Fatalf("Diff wrote %d cells, expected 3: %+v", n, out.writes)
	}

	got := make(map[[2]int]core.Cell)
	for _, w := range out.writes {
		got[[2]int{w.row, w.col}] = w.cell
	}
	if c := got[[2]int{1, 1}]; c != core.Blank {
		t.Errorf("vacated cell should be cleared, got %+v", c)
	}
	if c := got[[2]int{2, 1}]; c.Rune != 'V' {
		t.Errorf("moved invader not written, got %+v", c)
	}
	if _, ok := got[[2]int{2, 2}]; ok {
		t.Error("unchanged cell should not be written")
	}
}

func TestDiffColorChangeIsWritten(t *testing.T) {
	out := newRecorder()
	last := core.NewFrame()
	last.SetCell(0, 0, core.Cell{Rune: '*', Color: core.ColorOrange})
	curr := core.NewFrame()
	curr.SetCell(0, 0, core.Cell{Rune: '*', Color: core.ColorBrightRed})

	if n := Diff(out, last, curr, false); n != 1 {
		t.Errorf("Diff wrote %d cells, expected 1", n)
	}
}

func TestDiffForceAndSizeMismatch(t *testing.T) {
	out := newRecorder()
	f := core.NewFrame()

	if n := Diff(out, f, f, true); n != core.NumCols*core.NumRows {
		t.Errorf("forced Diff wrote %d cells", n)
	}

	small := core.NewFrameSize(2, 2)
	out.reset()
	if n := Diff(out, small, f, false); n != core.NumCols*core.NumRows {
		t.Errorf("size mismatch should redraw fully, wrote %d", n)
	}
}

func TestRendererTracksLastFrame(t *testing.T) {
	out := newRecorder()
	r := NewRenderer(out)
	if r.Last() != nil {
		t.Fatal("fresh renderer should have no last frame")
	}

	frames := []*core.Frame{core.NewFrame(), core.NewFrame(), core.NewFrame()}
	frames[1].Set(0, 0, 'V')
	frames[2].Set(0, 1, 'V')

	for _, f := range frames {
		if _, err := r.Draw(f, false); err != nil {
			t.Fatalf("Draw: %v", err)
		}
		if r.Last() != f {
			t.Fatal("drawn frame should become the baseline")
		}
	}
	if !out.screen.Equal(frames[2]) {
		t.Errorf("replayed output differs from last frame:\n%s", out.screen)
	}
}

func TestRendererFlushError(t *testing.T) {
	out := newRecorder()
	out.failOn = 1
	r := NewRenderer(out)

	if _, err := r.Draw(core.NewFrame(), true); err == nil {
		t.Fatal("expected flush error")
	}
}
