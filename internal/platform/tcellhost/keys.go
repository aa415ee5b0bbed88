package tcellhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// runeActions maps printable keys to game actions.
var runeActions = map[rune]core.Action{
	'w': core.ActionUp,
	'k': core.ActionUp,
	's': core.ActionDown,
	'j': core.ActionDown,
	'a': core.ActionLeft,
	'h': core.ActionLeft,
	'd': core.ActionRight,
	'l': core.ActionRight,
	' ': core.ActionPause,
	'p': core.ActionPause,
	'r': core.ActionRestart,
	'q': core.ActionQuit,
}

// MapKey translates a tcell key event to a game action.
func MapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEnter:
		return core.ActionRestart
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		return runeActions[ev.Rune()]
	}
	return core.ActionNone
}

// Style converts a buffer cell to a tcell style.
func Style(c core.Cell) tcell.Style {
	st := tcell.StyleDefault.Bold(c.Bold)
	if !c.FG.IsDefault() {
		st = st.Foreground(tcell.GetColor(string(c.FG)))
	}
	if !c.BG.IsDefault() {
		st = st.Background(tcell.GetColor(string(c.BG)))
	}
	return st
}
