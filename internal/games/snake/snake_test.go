package snake

import (
	"testing"
)

const tile = 20

func TestNewSnakeLayout(t *testing.T) {
	s := NewSnake(Vec{X: 200, Y: 100}, "#21bf73", tile, 2)

	if s.Vel != Right {
		t.Errorf("initial velocity = %v, expected right", s.Vel)
	}
	want := []Vec{{180, 100}, {160, 100}}
	if len(s.Tail) != len(want) {
		t.Fatalf("tail length = %d, expected %d", len(s.Tail), len(want))
	}
	for i := range want {
		if s.Tail[i] != want[i] {
			t.Errorf("Tail[%d] = %v, expected %v", i, s.Tail[i], want[i])
		}
	}
}

func TestMoveShiftsTail(t *testing.T) {
	s := NewSnake(Vec{X: 200, Y: 100}, "", tile, 4)
	s.SetDirection(Down)

	oldHead := s.Head
	oldTail := append([]Vec(nil), s.Tail...)

	s.Move()

	if s.Tail[0] != oldHead {
		t.Errorf("Tail[0] = %v, expected pre-move head %v", s.Tail[0], oldHead)
	}
	for k := 1; k < len(s.Tail); k++ {
		if s.Tail[k] != oldTail[k-1] {
			t.Errorf("Tail[%d] = %v, expected %v", k, s.Tail[k], oldTail[k-1])
		}
	}
	if want := (Vec{X: 200, Y: 120}); s.Head != want {
		t.Errorf("Head = %v, expected %v", s.Head, want)
	}
}

func TestMoveEmptyTail(t *testing.T) {
	s := NewSnake(Vec{X: 40, Y: 40}, "", tile, 0)
	s.Move()

	if len(s.Tail) != 0 {
		t.Errorf("empty tail should stay empty, got %v", s.Tail)
	}
	if want := (Vec{X: 60, Y: 40}); s.Head != want {
		t.Errorf("Head = %v, expected %v", s.Head, want)
	}
}

func TestSetDirectionIsUnconditional(t *testing.T) {
	s := NewSnake(Vec{X: 40, Y: 40}, "", tile, 2)
	s.SetDirection(Left) // reverse of the initial direction
	if s.Vel != Left {
		t.Errorf("Vel = %v, expected left", s.Vel)
	}
}

func TestCheckEat(t *testing.T) {
	head := Vec{X: 100, Y: 100}
	tests := []struct {
		name string
		food Vec
		want bool
	}{
		{"same tile", Vec{100, 100}, true},
		{"half tile right", Vec{110, 100}, true},
		{"just under a tile down", Vec{100, 119}, true},
		{"one tile right", Vec{120, 100}, false},
		{"one tile left", Vec{80, 100}, false},
		{"one tile up", Vec{100, 80}, false},
		{"diagonal just inside", Vec{119, 81}, true},
		{"far away", Vec{400, 300}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(head, "", tile, 2)
			got := s.CheckEat(tc.food)
			if got != tc.want {
				t.Errorf("CheckEat(%v) = %v, expected %v", tc.food, got, tc.want)
			}

			wantLen := 2
			if tc.want {
				wantLen = 3
			}
			if s.Len() != wantLen {
				t.Errorf("tail length = %d, expected %d", s.Len(), wantLen)
			}
		})
	}
}

func TestCheckEatSeedsSegmentAtHead(t *testing.T) {
	s := NewSnake(Vec{X: 100, Y: 100}, "", tile, 2)
	if !s.CheckEat(s.Head) {
		t.Fatal("CheckEat() at head should be true")
	}
	if last := s.Tail[len(s.Tail)-1]; last != s.Head {
		t.Errorf("new segment = %v, expected head %v", last, s.Head)
	}

	// The next move fills the new segment from the one before it
	before := s.Tail[1]
	s.Move()
	if s.Tail[2] != before {
		t.Errorf("after Move, Tail[2] = %v, expected %v", s.Tail[2], before)
	}
}

func TestCheckDeath(t *testing.T) {
	fresh := NewSnake(Vec{X: 100, Y: 100}, "", tile, 3)
	if fresh.CheckDeath() {
		t.Error("fresh snake should not be dead")
	}

	empty := NewSnake(Vec{X: 100, Y: 100}, "", tile, 0)
	if empty.CheckDeath() {
		t.Error("snake without tail should never be dead")
	}

	bitten := NewSnake(Vec{X: 100, Y: 100}, "", tile, 3)
	bitten.Tail[2] = Vec{X: 100, Y: 100}
	if !bitten.CheckDeath() {
		t.Error("head on a tail segment should be dead")
	}

	grazing := NewSnake(Vec{X: 100, Y: 100}, "", tile, 1)
	grazing.Tail[0] = Vec{X: 110, Y: 90}
	if !grazing.CheckDeath() {
		t.Error("partial overlap should count as death")
	}
}

func TestWrapBorder(t *testing.T) {
	const width, height = 400, 200

	tests := []struct {
		name string
		head Vec
		vel  Vec
		want Vec
	}{
		{"past right edge", Vec{400, 100}, Right, Vec{0, 100}},
		{"past left edge reflects", Vec{-20, 100}, Left, Vec{420, 100}},
		{"last column stays", Vec{380, 100}, Right, Vec{380, 100}},
		{"right edge moving back left", Vec{400, 100}, Left, Vec{400, 100}},
		{"left of grid moving right", Vec{-20, 100}, Right, Vec{-20, 100}},
		{"past bottom edge", Vec{100, 200}, Down, Vec{100, 0}},
		{"past top edge reflects", Vec{100, -20}, Up, Vec{100, 220}},
		{"bottom edge moving up", Vec{100, 200}, Up, Vec{100, 200}},
		{"both axes only fixes x", Vec{400, 200}, Right, Vec{0, 200}},
		{"both axes moving down fixes x", Vec{400, 200}, Down, Vec{0, 200}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(tc.head, "", tile, 0)
			s.SetDirection(tc.vel)
			s.WrapBorder(width, height)
			if s.Head != tc.want {
				t.Errorf("WrapBorder() head = %v, expected %v", s.Head, tc.want)
			}
		})
	}
}
