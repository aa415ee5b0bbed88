package core

// Action represents a semantic game action, abstracted from physical key presses.
// Hosts map their own key events onto these so the game never sees raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W, K
	ActionDown           // Down arrow, S, J
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionPause          // Space, P
	ActionRestart        // Enter, R - dismiss the game over notice
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyEvent is a single key press delivered to the game.
// A handler that consumes the key calls PreventDefault so the host skips
// its own default handling for it.
type KeyEvent struct {
	Action Action

	defaultPrevented bool
}

// NewKeyEvent creates a key event for the given action.
func NewKeyEvent(a Action) KeyEvent {
	return KeyEvent{Action: a}
}

// PreventDefault marks the event as consumed by the game.
func (e *KeyEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a handler consumed the event.
func (e KeyEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}
