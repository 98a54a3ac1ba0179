// Package terminal provides the display and keyboard collaborators: a tcell
// backed local screen, an ANSI stream writer for arbitrary io.Writers such as
// SSH sessions, and a Bubble Tea based key decoder for byte streams.
package terminal

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// MapKey translates a key name, as produced by Bubble Tea's KeyMsg.String
// or KeyName for tcell events, to an intent. Unbound keys map to IntentNone.
func MapKey(key string) core.Intent {
	switch key {
	case "left", "a", "h":
		return core.IntentMoveLeft
	case "right", "d", "l":
		return core.IntentMoveRight
	case " ", "space", "enter", "up", "w", "k":
		return core.IntentShoot
	case "q", "esc", "ctrl+c":
		return core.IntentQuit
	}
	return core.IntentNone
}
