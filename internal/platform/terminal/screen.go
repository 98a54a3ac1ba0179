package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Screen is the local terminal backend. It is both the render Output and
// the IntentSource for a session.
type Screen struct {
	screen  tcell.Screen
	intents *IntentBuffer
	styles  map[core.Color]tcell.Style
	done    chan struct{}
}

// OpenScreen initializes the controlling terminal: raw mode, alternate
// screen and event polling. Close must be called to restore it.
func OpenScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewScreen(s), nil
}

// NewScreen wraps an initialized tcell screen and starts polling its events.
func NewScreen(s tcell.Screen) *Screen {
	sc := &Screen{
		screen:  s,
		intents: NewIntentBuffer(),
		styles:  make(map[core.Color]tcell.Style),
		done:    make(chan struct{}),
	}
	for c := range ansiIndex {
		sc.styles[c] = tcellStyle(c)
	}
	s.Clear()
	go sc.poll()
	return sc
}

func tcellStyle(c core.Color) tcell.Style {
	idx := paletteIndex(c)
	if idx < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(idx))
}

// poll forwards key events until the screen is finalized.
func (s *Screen) poll() {
	defer close(s.done)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			s.intents.Push(MapKey(KeyName(ev)))
		case *tcell.EventError:
			s.intents.Fail(ev)
		}
	}
}

// KeyName converts a tcell key event to the names used by MapKey.
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

// Drain implements core.IntentSource.
func (s *Screen) Drain() ([]core.Intent, error) {
	return s.intents.Drain()
}

// WriteCell implements render.Output.
func (s *Screen) WriteCell(row, col int, cell core.Cell) {
	style, ok := s.styles[cell.Color]
	if !ok {
		style = tcell.StyleDefault
	}
	s.screen.SetContent(col, row, cell.Rune, nil, style)
}

// SetCursorVisible implements render.Output. A visible cursor is parked
// below the playfield.
func (s *Screen) SetCursorVisible(visible bool) {
	if visible {
		s.screen.ShowCursor(0, core.NumRows)
		return
	}
	s.screen.HideCursor()
}

// Flush implements render.Output.
func (s *Screen) Flush() error {
	s.screen.Show()
	return nil
}

// Size returns the terminal dimensions.
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// Close restores the terminal and stops event polling.
func (s *Screen) Close() {
	s.screen.Fini()
	<-s.done
}
