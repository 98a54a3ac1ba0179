// Package render turns frames into terminal cell writes. A Worker consumes
// frames from a FrameQueue on its own goroutine and diffs each against the
// previous one so only changed cells reach the output.
package render

import "github.com/vovakirdan/tui-invaders/internal/core"

// Output is the display collaborator. It only ever receives cell writes and
// cursor visibility toggles; Flush pushes buffered writes to the device.
type Output interface {
	WriteCell(row, col int, cell core.Cell)
	SetCursorVisible(visible bool)
	Flush() error
}
