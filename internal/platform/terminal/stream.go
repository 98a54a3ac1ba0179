package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Escape sequences used by the stream backend.
const (
	seqHideCursor    = "\x1b[?25l"
	seqShowCursor    = "\x1b[?25h"
	seqEnterAltScr   = "\x1b[?1049h"
	seqExitAltScr    = "\x1b[?1049l"
	seqClearScreen   = "\x1b[2J"
	seqCursorHome    = "\x1b[H"
	seqResetGraphics = "\x1b[0m"
)

// Stream writes cells as ANSI cursor moves plus lipgloss styled glyphs to any
// io.Writer. It is used for SSH sessions and for the plain local backend.
type Stream struct {
	w      *bufio.Writer
	styles map[core.Color]lipgloss.Style
}

// NewStream creates a stream backend. The lipgloss renderer decides the color
// profile; pass lipgloss.NewRenderer(w) when nothing better is known.
func NewStream(w io.Writer, r *lipgloss.Renderer) *Stream {
	s := &Stream{
		w:      bufio.NewWriterSize(w, 16*1024),
		styles: make(map[core.Color]lipgloss.Style),
	}
	for c := range ansiIndex {
		style := r.NewStyle()
		if idx := paletteIndex(c); idx >= 0 {
			style = style.Foreground(lipgloss.Color(strconv.Itoa(idx)))
		}
		s.styles[c] = style
	}
	return s
}

// WriteCell implements render.Output.
func (s *Stream) WriteCell(row, col int, cell core.Cell) {
	fmt.Fprintf(s.w, "\x1b[%d;%dH", row+1, col+1)
	style, ok := s.styles[cell.Color]
	if !ok || cell.IsBlank() {
		s.w.WriteRune(cell.Rune)
		return
	}
	s.w.WriteString(style.Render(string(cell.Rune)))
}

// SetCursorVisible implements render.Output.
func (s *Stream) SetCursorVisible(visible bool) {
	if visible {
		s.w.WriteString(seqResetGraphics)
		fmt.Fprintf(s.w, "\x1b[%d;1H", core.NumRows+1)
		s.w.WriteString(seqShowCursor)
		return
	}
	s.w.WriteString(seqHideCursor)
}

// Flush implements render.Output.
func (s *Stream) Flush() error {
	return s.w.Flush()
}

// EnterAltScreen switches to the alternate screen and clears it.
// Call it before the session starts rendering.
func (s *Stream) EnterAltScreen() error {
	s.w.WriteString(seqEnterAltScr + seqClearScreen + seqCursorHome)
	return s.w.Flush()
}

// ExitAltScreen returns to the normal screen. Call it after the session ends.
func (s *Stream) ExitAltScreen() error {
	s.w.WriteString(seqResetGraphics + seqExitAltScr)
	return s.w.Flush()
}
