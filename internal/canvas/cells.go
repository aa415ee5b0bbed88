package canvas

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ColsPerTile is how many terminal columns one tile spans. Terminal cells
// are roughly twice as tall as they are wide, so two columns by one row
// keeps tiles close to square.
const ColsPerTile = 2

// boldFontSize is the smallest font drawn in bold.
const boldFontSize = 30

// Cells is a Surface backed by a core.Screen. One tile of tileSize pixels
// maps to ColsPerTile columns by one row.
type Cells struct {
	screen *core.Screen
	tile   int
	width  int
	height int
}

// NewCells wraps screen as a pixel surface with the given tile size.
// The surface starts at whatever pixel size the screen currently covers.
func NewCells(screen *core.Screen, tileSize int) *Cells {
	return &Cells{
		screen: screen,
		tile:   tileSize,
		width:  screen.Width() / ColsPerTile * tileSize,
		height: screen.Height() * tileSize,
	}
}

// Screen returns the underlying cell buffer.
func (c *Cells) Screen() *core.Screen {
	return c.screen
}

// Size returns the surface dimensions in pixels.
func (c *Cells) Size() (w, h int) {
	return c.width, c.height
}

// SetSize changes the surface dimensions in pixels and resizes the screen
// to the cells needed to cover them.
func (c *Cells) SetSize(w, h int) {
	c.width, c.height = w, h
	c.screen.Resize(c.ceilCol(w), c.ceilRow(h))
}

// FillRect fills the cells covered by the rectangle with the fill color as
// background. A positive stroke width brackets each row with the stroke
// color, which is the closest a character grid gets to a border.
func (c *Cells) FillRect(x, y, w, h int, fill, stroke core.Color, strokeWidth int) {
	r := c.cellRect(x, y, w, h)
	c.screen.FillRect(r, core.Cell{Rune: ' ', BG: fill})

	if strokeWidth <= 0 || r.W < 2 {
		return
	}
	for row := r.Y; row < r.Bottom(); row++ {
		c.screen.SetCell(r.X, row, core.Cell{Rune: '[', FG: stroke, BG: fill})
		c.screen.SetCell(r.Right()-1, row, core.Cell{Rune: ']', FG: stroke, BG: fill})
	}
}

// DrawText writes text on the row containing y. The background of the cells
// underneath is kept.
func (c *Cells) DrawText(text string, x, y int, font Font, color core.Color, align Align) {
	runes := []rune(text)
	col := c.col(x)
	switch align {
	case AlignCenter:
		col -= len(runes) / 2
	case AlignRight:
		col -= len(runes)
	}
	row := c.row(y)

	for i, r := range runes {
		under := c.screen.GetCell(col+i, row)
		c.screen.SetCell(col+i, row, core.Cell{
			Rune: r,
			FG:   color,
			BG:   under.BG,
			Bold: font.Size >= boldFontSize,
		})
	}
}

// ClearRect blanks the cells covered by the rectangle.
func (c *Cells) ClearRect(x, y, w, h int) {
	c.screen.ClearRect(c.cellRect(x, y, w, h))
}

// cellRect converts a pixel rectangle to the cells it touches.
func (c *Cells) cellRect(x, y, w, h int) core.Rect {
	x0, y0 := c.col(x), c.row(y)
	return core.NewRect(x0, y0, c.ceilCol(x+w)-x0, c.ceilRow(y+h)-y0)
}

func (c *Cells) col(x int) int {
	return core.FloorDiv(x*ColsPerTile, c.tile)
}

func (c *Cells) row(y int) int {
	return core.FloorDiv(y, c.tile)
}

func (c *Cells) ceilCol(x int) int {
	return -core.FloorDiv(-x*ColsPerTile, c.tile)
}

func (c *Cells) ceilRow(y int) int {
	return -core.FloorDiv(-y, c.tile)
}

var _ Surface = (*Cells)(nil)
