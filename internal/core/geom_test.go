package core

import "testing"

func TestRectIntersects(t *testing.T) {
	// Tiles are 20x20 like the default grid.
	tile := func(x, y int) Rect { return NewRect(x, y, 20, 20) }

	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"same tile", tile(100, 100), tile(100, 100), true},
		{"half tile right", tile(100, 100), tile(110, 100), true},
		{"adjacent right", tile(100, 100), tile(120, 100), false},
		{"adjacent below", tile(100, 100), tile(100, 120), false},
		{"diagonal overlap", tile(100, 100), tile(119, 119), true},
		{"diagonal touch", tile(100, 100), tile(120, 120), false},
		{"negative coords", tile(-20, 0), tile(-5, 0), true},
		{"contained", NewRect(0, 0, 60, 60), tile(20, 20), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, expected int
	}{
		{40, 20, 2},
		{39, 20, 1},
		{0, 20, 0},
		{-1, 20, -1},  // rounds down, not toward zero
		{-20, 20, -1}, // exact negative
		{-21, 20, -2},
	}

	for _, tc := range tests {
		result := FloorDiv(tc.a, tc.b)
		if result != tc.expected {
			t.Errorf("FloorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
