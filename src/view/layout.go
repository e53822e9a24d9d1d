package view

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	titleText    = "gridlife: Conway's Game of Life"
	sidebarWidth = 28
	titleHeight  = 3
	keysHeight   = 2
	minHeight    = 20
)

//rect is the view area in gocui coordinates, the frame included
type rect struct {
	x0, y0, x1, y1 int
}

//screen is the placement of the views for the terminal size
type screen struct {
	tooSmall bool
	title    rect
	settings rect
	status   rect
	field    rect
	keys     rect
}

//arrange splits the terminal into the title line, the sidebar with the settings and the status,
//the field on the right and the key list at the bottom
func arrange(width, height int) screen {
	if height < minHeight {
		return screen{tooSmall: true, title: rect{-1, -1, width + 1, height}}
	}
	bottom := height - keysHeight - titleHeight
	split := titleHeight + (bottom-titleHeight)/2
	return screen{
		title:    rect{-1, -1, width + 1, titleHeight},
		settings: rect{0, titleHeight, sidebarWidth, split},
		status:   rect{0, split + 1, sidebarWidth, bottom},
		field:    rect{sidebarWidth + 1, titleHeight, width - 1, bottom},
		keys:     rect{-1, bottom, width, bottom + keysHeight},
	}
}

//centered pads text to the middle of the line of the given width, a text wider than the line is cut
func centered(text string, width int) string {
	if width <= 0 {
		return ""
	}
	w := runewidth.StringWidth(text)
	if w > width {
		return runewidth.Truncate(text, width, "…")
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
