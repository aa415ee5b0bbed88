package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// PausedText is drawn the moment the game is paused.
const PausedText = "PAUSED"

// directions maps direction actions to velocities.
var directions = map[core.Action]Vec{
	core.ActionUp:    Up,
	core.ActionDown:  Down,
	core.ActionLeft:  Left,
	core.ActionRight: Right,
}

// HandleKey applies a key event to the session. Pause and the four
// directions are consumed; anything else is left for the host.
func (s *Session) HandleKey(ev *core.KeyEvent) {
	if ev.Action == core.ActionPause {
		ev.PreventDefault()
		s.togglePause()
		return
	}

	if dir, ok := directions[ev.Action]; ok {
		ev.PreventDefault()
		s.turn(dir)
	}
}

// togglePause flips between running and paused. Pausing draws the banner
// right away since paused ticks do not render.
func (s *Session) togglePause() {
	switch s.phase {
	case PhaseRunning:
		s.phase = PhasePaused
		s.showBanner(PausedText)
		s.logger.Debug("paused", "tick", s.tick)
	case PhasePaused:
		s.phase = PhaseRunning
		s.logger.Debug("resumed", "tick", s.tick)
	}
}

// turn changes direction unless it reverses the snake onto itself. Turns
// are also refused while the head is outside the grid (edges inclusive);
// this does not keep the snake in bounds, the border wrap does that.
func (s *Session) turn(dir Vec) {
	if s.phase == PhaseTerminated {
		return
	}
	if s.snake.Vel == dir.Neg() {
		return
	}
	if !s.grid.Contains(s.snake.Head) {
		return
	}
	s.snake.SetDirection(dir)
}
