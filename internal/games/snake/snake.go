// Package snake implements the Snake game: the snake and food entities, the
// grid they live on, and the session that ticks them.
//
// The package contains no terminal code. It draws through canvas.Surface and
// receives input as core.KeyEvent values; hosts in internal/platform own the
// timer, the keyboard and the screen.
package snake

import (
	"github.com/vovakirdan/tui-snake/internal/canvas"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is the player: a head, a velocity and the trailing body segments.
//
// Tail[0] always holds where the head was before the most recent Move.
type Snake struct {
	Head  Vec
	Vel   Vec
	Tail  []Vec
	Color core.Color

	tile int
}

// NewSnake creates a snake at head moving right, with tailLen segments
// laid out to its left.
func NewSnake(head Vec, color core.Color, tile, tailLen int) *Snake {
	s := &Snake{
		Head:  head,
		Vel:   Right,
		Tail:  make([]Vec, tailLen),
		Color: color,
		tile:  tile,
	}
	for i := range s.Tail {
		s.Tail[i] = head.Add(Left.Scale(tile * (i + 1)))
	}
	return s
}

// Render draws the head and then every tail segment.
func (s *Snake) Render(dst canvas.Surface, b Brush) {
	b.Paint(dst, s.Head, s.Color)
	for _, seg := range s.Tail {
		b.Paint(dst, seg, s.Color)
	}
}

// Move shifts every segment one step toward the head, puts the old head
// position at Tail[0] and advances the head by one tile along Vel.
func (s *Snake) Move() {
	for i := len(s.Tail) - 1; i > 0; i-- {
		s.Tail[i] = s.Tail[i-1]
	}
	if len(s.Tail) > 0 {
		s.Tail[0] = s.Head
	}
	s.Head = s.Head.Add(s.Vel.Scale(s.tile))
}

// SetDirection overwrites the velocity. Reversal checks are the caller's job.
func (s *Snake) SetDirection(v Vec) {
	s.Vel = v
}

// CheckEat reports whether the head overlaps food and, if so, grows the
// tail by one segment. The new segment starts at the head; the next Move
// shifts it into place.
func (s *Snake) CheckEat(food Vec) bool {
	if !s.Head.Near(food, s.tile) {
		return false
	}
	s.Tail = append(s.Tail, s.Head)
	return true
}

// CheckDeath reports whether the head overlaps any tail segment.
func (s *Snake) CheckDeath() bool {
	for _, seg := range s.Tail {
		if s.Head.Near(seg, s.tile) {
			return true
		}
	}
	return false
}

// WrapBorder brings the head back when it has left a width x height area.
// The x axis is checked first; y is only checked when x needed no fix, so
// a single call wraps at most one axis. The reflection x = width - x puts a
// head that left on the right back at 0.
func (s *Snake) WrapBorder(width, height int) {
	switch {
	case (s.Head.X+s.tile > width && s.Vel.X != -1) || (s.Head.X < 0 && s.Vel.X != 1):
		s.Head.X = width - s.Head.X
	case (s.Head.Y+s.tile > height && s.Vel.Y != -1) || (s.Head.Y < 0 && s.Vel.Y != 1):
		s.Head.Y = height - s.Head.Y
	}
}

// Len returns the number of tail segments.
func (s *Snake) Len() int {
	return len(s.Tail)
}
