package terminal

import "github.com/vovakirdan/tui-invaders/internal/core"

// ansiIndex maps core colors onto the terminal palette. -1 keeps the
// terminal's default foreground.
var ansiIndex = map[core.Color]int{
	core.ColorDefault:      -1,
	core.ColorRed:          1,
	core.ColorGreen:        2,
	core.ColorYellow:       3,
	core.ColorBlue:         4,
	core.ColorMagenta:      5,
	core.ColorCyan:         6,
	core.ColorWhite:        7,
	core.ColorBrightRed:    9,
	core.ColorBrightGreen:  10,
	core.ColorBrightYellow: 11,
	core.ColorOrange:       208,
	core.ColorGray:         245,
}

func paletteIndex(c core.Color) int {
	if idx, ok := ansiIndex[c]; ok {
		return idx
	}
	return -1
}
