package snake

// Snapshot captures the session state for determinism testing and logging.
type Snapshot struct {
	Tick    uint64
	Phase   Phase
	Score   int
	Head    Vec
	Vel     Vec
	TailLen int
	Food    Vec
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:    s.tick,
		Phase:   s.phase,
		Score:   s.score,
		Head:    s.snake.Head,
		Vel:     s.snake.Vel,
		TailLen: s.snake.Len(),
		Food:    s.food.Pos,
	}
}
