package core

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Point
	}{
		{DirUp, Point{Col: 0, Row: -1}},
		{DirDown, Point{Col: 0, Row: 1}},
		{DirLeft, Point{Col: -1, Row: 0}},
		{DirRight, Point{Col: 1, Row: 0}},
		{DirNone, Point{}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.Delta(); got != tc.expected {
				t.Errorf("Delta() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestPointAddSigned(t *testing.T) {
	p := Point{Col: 0, Row: 0}
	got := p.Add(DirLeft.Delta())
	if got.Col != -1 || got.Row != 0 {
		t.Errorf("moving left from origin should give (-1, 0), got %+v", got)
	}
}

func TestManhattan(t *testing.T) {
	a := Point{Col: 1, Row: 1}
	b := Point{Col: 6, Row: 6}
	if d := a.Manhattan(b); d != 10 {
		t.Errorf("Manhattan() = %d, expected 10", d)
	}
	if d := b.Manhattan(a); d != 10 {
		t.Errorf("Manhattan() should be symmetric, got %d", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		val, n, expected int
	}{
		{0, 5, 0},
		{5, 5, 0},
		{-1, 5, 4},
		{-6, 5, 4},
		{7, 3, 1},
		{3, 0, 0},
	}

	for _, tc := range tests {
		if got := Wrap(tc.val, tc.n); got != tc.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.val, tc.n, got, tc.expected)
		}
	}
}

func TestMapRange(t *testing.T) {
	tests := []struct {
		v, inLo, inHi, outLo, outHi, expected int
	}{
		{1, 1, 10, 25, 255, 25},
		{10, 1, 10, 25, 255, 255},
		{1, 1, 10, 0, 15, 0},
		{10, 1, 10, 0, 15, 15},
		{5, 1, 10, 1, 16, 7},
		{3, 3, 3, 9, 20, 9},
	}

	for _, tc := range tests {
		got := MapRange(tc.v, tc.inLo, tc.inHi, tc.outLo, tc.outHi)
		if got != tc.expected {
			t.Errorf("MapRange(%d, %d..%d -> %d..%d) = %d, expected %d",
				tc.v, tc.inLo, tc.inHi, tc.outLo, tc.outHi, got, tc.expected)
		}
	}
}
