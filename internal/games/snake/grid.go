package snake

import "math/rand"

// Grid is the playable area, fixed for the lifetime of a session.
type Grid struct {
	Tile   int // Tile edge in pixels
	Width  int // Playable width in pixels, a multiple of Tile
	Height int // Playable height in pixels, a multiple of Tile
}

// NewGrid floors the viewport to whole tiles.
func NewGrid(viewportW, viewportH, tile int) Grid {
	return Grid{
		Tile:   tile,
		Width:  tile * max(viewportW/tile, 0),
		Height: tile * max(viewportH/tile, 0),
	}
}

// Columns returns the number of tiles across.
func (g Grid) Columns() int {
	return g.Width / g.Tile
}

// Rows returns the number of tiles down.
func (g Grid) Rows() int {
	return g.Height / g.Tile
}

// Center returns the tile-aligned middle of the grid.
func (g Grid) Center() Vec {
	return Vec{
		X: g.Tile * (g.Width / (2 * g.Tile)),
		Y: g.Tile * (g.Height / (2 * g.Tile)),
	}
}

// Contains reports whether p lies within the grid, edges included.
func (g Grid) Contains(p Vec) bool {
	return p.X >= 0 && p.X <= g.Width && p.Y >= 0 && p.Y <= g.Height
}

// SpawnLocation picks a uniformly random cell and returns its pixel
// position. The snake's occupancy is not checked.
func (g Grid) SpawnLocation(rng *rand.Rand) Vec {
	cols, rows := max(g.Columns(), 1), max(g.Rows(), 1)
	return Vec{
		X: rng.Intn(cols) * g.Tile,
		Y: rng.Intn(rows) * g.Tile,
	}
}
