// Package canvas defines the drawing surface the game renders to and a
// terminal implementation of it on top of core.Screen.
//
// All coordinates and sizes are in pixels. Implementations decide how pixels
// map to their output; the game never inspects anything they return.
package canvas

import "github.com/vovakirdan/tui-snake/internal/core"

// Align is the horizontal anchoring of text relative to its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font describes text size and family, mirroring a CSS font shorthand.
type Font struct {
	Size   int // Pixel height
	Family string
}

// Surface is the rendering collaborator of the game.
type Surface interface {
	// FillRect draws a filled rectangle with a border of strokeWidth pixels.
	FillRect(x, y, w, h int, fill, stroke core.Color, strokeWidth int)

	// DrawText draws a single line of text anchored at (x, y).
	DrawText(text string, x, y int, font Font, color core.Color, align Align)

	// ClearRect resets an area to the background.
	ClearRect(x, y, w, h int)

	// Size returns the surface dimensions in pixels.
	Size() (w, h int)

	// SetSize changes the surface dimensions in pixels.
	SetSize(w, h int)
}
