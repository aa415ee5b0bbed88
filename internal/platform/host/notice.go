package host

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// NoticeHint tells the player how to leave the game over notice.
const NoticeHint = "enter: play again  q: quit"

// DrawGameOver draws a boxed notice with the final score in the middle of
// the screen. Hosts keep it up until the player dismisses it.
func DrawGameOver(screen *core.Screen, score int, text core.Color) {
	lines := []string{
		"GAME OVER!",
		fmt.Sprintf("Score: %d", score),
		NoticeHint,
	}

	inner := 0
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	w, h := inner+4, len(lines)+2
	box := core.NewRect((screen.Width()-w)/2, (screen.Height()-h)/2, w, h)

	style := core.Cell{FG: text}
	screen.FillRect(box, core.Cell{Rune: ' '})
	screen.DrawBox(box, style)

	for i, l := range lines {
		x := box.X + (w-len([]rune(l)))/2
		line := style
		line.Bold = i == 0
		screen.DrawText(x, box.Y+1+i, l, line)
	}
}
