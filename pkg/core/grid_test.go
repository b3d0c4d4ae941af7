package core

import "testing"

func TestWrapHandlesNegativeCoordinates(t *testing.T) {
	g := NewByteGrid(10, 6)
	cases := []struct {
		x, y, wantX, wantY int
	}{
		{0, 0, 0, 0},
		{10, 6, 0, 0},
		{-1, -1, 9, 5},
		{-11, -7, 9, 5},
		{23, 13, 3, 1},
	}
	for _, c := range cases {
		x, y := g.Wrap(c.x, c.y)
		if x != c.wantX || y != c.wantY {
			t.Fatalf("Wrap(%d, %d) = (%d, %d), want (%d, %d)", c.x, c.y, x, y, c.wantX, c.wantY)
		}
	}
}

func TestIsAliveThreshold(t *testing.T) {
	cases := []struct {
		v    uint8
		want bool
	}{
		{CellDead, false},
		{1, false},
		{127, false},
		{128, false},
		{129, true},
		{200, true},
		{CellAlive, true},
	}
	for _, c := range cases {
		if got := IsAlive(c.v); got != c.want {
			t.Fatalf("IsAlive(%d) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestCountAlive(t *testing.T) {
	g := NewByteGrid(4, 4)
	if got := g.CountAlive(); got != 0 {
		t.Fatalf("fresh grid alive count = %d, want 0", got)
	}
	cells := g.Cells()
	cells[0] = CellAlive
	cells[7] = 200
	cells[9] = 128 // below threshold, still dead
	if got := g.CountAlive(); got != 2 {
		t.Fatalf("alive count = %d, want 2", got)
	}
	g.Clear()
	if got := g.CountAlive(); got != 0 {
		t.Fatalf("alive count after Clear = %d, want 0", got)
	}
}
