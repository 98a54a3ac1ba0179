package terminal

import (
	"errors"
	"fmt"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ErrTooSmall is returned when the terminal cannot fit the playfield.
var ErrTooSmall = errors.New("terminal too small")

// ErrNotTerminal is returned when raw mode is requested on a non-terminal.
var ErrNotTerminal = errors.New("not a terminal")

// MakeRaw puts the terminal on fd into raw mode and returns a function that
// restores the previous state.
func MakeRaw(fd int) (restore func() error, err error) {
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	return func() error {
		return term.Restore(fd, old)
	}, nil
}

// Size returns the width and height of the terminal on fd.
func Size(fd int) (int, int, error) {
	return term.GetSize(fd)
}

// CheckSize reports whether a width x height terminal fits the playfield
// plus one spare line for the cursor.
func CheckSize(width, height int) error {
	if width < core.NumCols || height < core.NumRows+1 {
		return fmt.Errorf("%w: need %dx%d, have %dx%d",
			ErrTooSmall, core.NumCols, core.NumRows+1, width, height)
	}
	return nil
}
