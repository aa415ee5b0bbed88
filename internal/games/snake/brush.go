package snake

import (
	"github.com/vovakirdan/tui-snake/internal/canvas"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Brush holds what every entity tile is drawn with besides its own color.
type Brush struct {
	Tile        int
	Stroke      core.Color
	StrokeWidth int
}

// Paint draws one filled, stroked tile at p.
func (b Brush) Paint(dst canvas.Surface, p Vec, fill core.Color) {
	dst.FillRect(p.X, p.Y, b.Tile, b.Tile, fill, b.Stroke, b.StrokeWidth)
}
