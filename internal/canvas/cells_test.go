package canvas

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	green = core.Color("#21bf73")
	dark  = core.Color("#272121")
)

func newSurface(t *testing.T, w, h int) *Cells {
	t.Helper()
	c := NewCells(core.NewScreen(0, 0), 20)
	c.SetSize(w, h)
	return c
}

func TestCellsSetSize(t *testing.T) {
	c := newSurface(t, 400, 200)

	if w, h := c.Size(); w != 400 || h != 200 {
		t.Errorf("Size() = (%d, %d), expected (400, 200)", w, h)
	}
	if c.Screen().Width() != 40 || c.Screen().Height() != 10 {
		t.Errorf("screen = %dx%d, expected 40x10", c.Screen().Width(), c.Screen().Height())
	}

	// Sizes that are not tile multiples round the screen up
	c.SetSize(410, 205)
	if c.Screen().Width() != 41 || c.Screen().Height() != 11 {
		t.Errorf("screen = %dx%d, expected 41x11", c.Screen().Width(), c.Screen().Height())
	}
}

func TestNewCellsFromScreen(t *testing.T) {
	c := NewCells(core.NewScreen(80, 23), 20)
	if w, h := c.Size(); w != 800 || h != 460 {
		t.Errorf("Size() = (%d, %d), expected (800, 460)", w, h)
	}
}

func TestCellsFillRectTile(t *testing.T) {
	c := newSurface(t, 400, 200)
	c.FillRect(100, 40, 20, 20, green, dark, 3)

	s := c.Screen()
	left, right := s.GetCell(10, 2), s.GetCell(11, 2)
	if left != (core.Cell{Rune: '[', FG: dark, BG: green}) {
		t.Errorf("left cell = %+v", left)
	}
	if right != (core.Cell{Rune: ']', FG: dark, BG: green}) {
		t.Errorf("right cell = %+v", right)
	}
	if s.GetCell(9, 2).BG != core.ColorDefault || s.GetCell(12, 2).BG != core.ColorDefault {
		t.Error("FillRect should only touch the two columns of the tile")
	}
	if s.GetCell(10, 1).BG != core.ColorDefault || s.GetCell(10, 3).BG != core.ColorDefault {
		t.Error("FillRect should only touch one row for one tile")
	}
}

func TestCellsFillRectNoStroke(t *testing.T) {
	c := newSurface(t, 400, 200)
	c.FillRect(0, 0, 40, 20, green, dark, 0)

	for x := 0; x < 4; x++ {
		if got := c.Screen().GetCell(x, 0); got != (core.Cell{Rune: ' ', BG: green}) {
			t.Errorf("cell %d = %+v, expected plain fill", x, got)
		}
	}
}

func TestCellsFillRectOffSurface(t *testing.T) {
	c := newSurface(t, 400, 200)

	// Fully outside: clipped silently
	c.FillRect(-20, 0, 20, 20, green, dark, 3)
	c.FillRect(400, 0, 20, 20, green, dark, 3)
	c.FillRect(0, 200, 20, 20, green, dark, 3)

	if strings.TrimSpace(c.Screen().String()) != "" {
		t.Errorf("off-surface tiles should not draw, got:\n%s", c.Screen().String())
	}
}

func TestCellsClearRect(t *testing.T) {
	c := newSurface(t, 400, 200)
	c.FillRect(0, 0, 400, 200, green, dark, 0)
	c.ClearRect(0, 0, 400, 200)

	s := c.Screen()
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y) != (core.Cell{Rune: ' '}) {
				t.Fatalf("cell (%d, %d) not cleared: %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestCellsDrawTextAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align Align
		start int
	}{
		{"left", AlignLeft, 28},
		{"center", AlignCenter, 24},
		{"right", AlignRight, 19},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newSurface(t, 400, 200)
			c.DrawText("SCORE: 10", 280, 30, Font{Size: 25}, core.ColorWhite, tc.align)

			row := c.Screen().Row(1)
			if got := row[tc.start : tc.start+9]; got != "SCORE: 10" {
				t.Errorf("row 1 = %q, expected text at column %d", row, tc.start)
			}
			if c.Screen().GetCell(tc.start, 1).Bold {
				t.Error("25px text should not be bold")
			}
		})
	}
}

func TestCellsDrawTextKeepsBackground(t *testing.T) {
	c := newSurface(t, 400, 200)
	c.FillRect(200, 100, 20, 20, green, dark, 3)
	c.DrawText("PAUSED", 200, 100, Font{Size: 35}, core.ColorWhite, AlignCenter)

	s := c.Screen()
	if got := s.Row(5)[17:23]; got != "PAUSED" {
		t.Errorf("row 5 = %q", s.Row(5))
	}
	cell := s.GetCell(20, 5)
	if cell.BG != green || cell.FG != core.ColorWhite || !cell.Bold {
		t.Errorf("text over a tile = %+v, expected white bold on green", cell)
	}
}
