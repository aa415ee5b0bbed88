package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Vec is an integer pair used for both pixel positions and unit velocities.
type Vec struct {
	X, Y int
}

// Unit velocities.
var (
	Left  = Vec{X: -1, Y: 0}
	Right = Vec{X: 1, Y: 0}
	Up    = Vec{X: 0, Y: -1}
	Down  = Vec{X: 0, Y: 1}
)

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * k.
func (v Vec) Scale(k int) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Neg returns the opposite vector.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// IsUnit reports whether v is a unit vector along one axis.
func (v Vec) IsUnit() bool {
	return core.Abs(v.X)+core.Abs(v.Y) == 1
}

// Tile returns the tile-sized square whose top-left corner is v.
func (v Vec) Tile(tile int) core.Rect {
	return core.NewRect(v.X, v.Y, tile, tile)
}

// Near reports whether the tiles at v and o overlap, i.e. the distance is
// strictly less than one tile on both axes.
func (v Vec) Near(o Vec, tile int) bool {
	return v.Tile(tile).Intersects(o.Tile(tile))
}

func (v Vec) String() string {
	switch v {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}
