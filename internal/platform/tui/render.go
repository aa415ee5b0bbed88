package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// cellStyle is the part of a cell that decides its ANSI styling.
type cellStyle struct {
	fg, bg core.Color
	bold   bool
}

func styleOf(c core.Cell) cellStyle {
	return cellStyle{fg: c.FG, bg: c.BG, bold: c.Bold}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	styles := make(map[cellStyle]lipgloss.Style)
	lookup := func(cs cellStyle) lipgloss.Style {
		if st, ok := styles[cs]; ok {
			return st
		}
		st := r.NewStyle().Bold(cs.bold)
		if !cs.fg.IsDefault() {
			st = st.Foreground(lipgloss.Color(cs.fg))
		}
		if !cs.bg.IsDefault() {
			st = st.Background(lipgloss.Color(cs.bg))
		}
		styles[cs] = st
		return st
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, height := 0, s.Height(); y < height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := styleOf(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if styleOf(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(lookup(start).Render(run.String()))
		}
	}
	return sb.String()
}
