package snake

import (
	"github.com/vovakirdan/tui-snake/internal/canvas"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Food is the item the snake eats. A new Food replaces the old one each
// time it is eaten.
type Food struct {
	Pos   Vec
	Color core.Color
}

// NewFood creates food at pos. The caller guarantees pos is tile-aligned
// and inside the grid.
func NewFood(pos Vec, color core.Color) *Food {
	return &Food{Pos: pos, Color: color}
}

// Render draws the food.
func (f *Food) Render(dst canvas.Surface, b Brush) {
	b.Paint(dst, f.Pos, f.Color)
}
