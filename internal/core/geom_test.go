package core

import (
	"math"
	"testing"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     GameRectangle
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        RectAt(Loc(0, 0), 10, 10),
			b:        RectAt(Loc(5, 5), 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        RectAt(Loc(0, 0), 10, 10),
			b:        RectAt(Loc(15, 0), 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        RectAt(Loc(0, 0), 10, 10),
			b:        RectAt(Loc(0, 15), 10, 10),
			expected: false,
		},
		{
			name:     "touching horizontal edge (no overlap)",
			a:        RectAt(Loc(0, 0), 10, 10),
			b:        RectAt(Loc(10, 0), 10, 10),
			expected: false,
		},
		{
			name:     "touching vertical edge (no overlap)",
			a:        RectAt(Loc(0, 0), 10, 10),
			b:        RectAt(Loc(0, 10), 10, 10),
			expected: false,
		},
		{
			name:     "touching corner (no overlap)",
			a:        RectAt(Loc(0, 0), 10, 10),
			b:        RectAt(Loc(10, 10), 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        RectAt(Loc(0, 0), 20, 20),
			b:        RectAt(Loc(5, 5), 5, 5),
			expected: true,
		},
		{
			name:     "fractional crossing",
			a:        RectAt(Loc(0, 0), 10, 10),
			b:        RectAt(Loc(9.5, 9.5), 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Overlaps(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := Overlaps(tc.b, tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectangleContains(t *testing.T) {
	r := RectAt(Loc(10, 10), 20, 15)

	tests := []struct {
		name     string
		loc      GameLocation
		expected bool
	}{
		{"inside", Loc(15, 15), true},
		{"top-left corner", Loc(10, 10), true},
		{"bottom-right edge (exclusive)", Loc(30, 25), false},
		{"outside left", Loc(5, 15), false},
		{"outside right", Loc(35, 15), false},
		{"outside top", Loc(15, 5), false},
		{"outside bottom", Loc(15, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.loc)
			if result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.loc, result, tc.expected)
			}
		})
	}
}

func TestRectangleEdges(t *testing.T) {
	r := RectAt(Loc(5, 10), 20, 15)

	if r.Right != 25 {
		t.Errorf("Right = %v, expected 25", r.Right)
	}
	if r.Bottom != 25 {
		t.Errorf("Bottom = %v, expected 25", r.Bottom)
	}

	c := r.Center()
	if c.Left != 15 || c.Top != 17.5 {
		t.Errorf("Center() = %v, expected (15, 17.5)", c)
	}

	e := r.Expand(2)
	if e.Left != 3 || e.Top != 8 || e.Right != 27 || e.Bottom != 27 {
		t.Errorf("Expand(2) = %v", e)
	}
}

func TestStepDirections(t *testing.T) {
	const eps = 1e-9
	tests := []struct {
		angle  float64
		dl, dt float64
	}{
		{0, 1, 0},
		{90, 0, -1},
		{180, -1, 0},
		{270, 0, 1},
	}

	for _, tc := range tests {
		d := Step(tc.angle, 1)
		if math.Abs(d.Left-tc.dl) > eps || math.Abs(d.Top-tc.dt) > eps {
			t.Errorf("Step(%v, 1) = %v, expected (%v, %v)", tc.angle, d, tc.dl, tc.dt)
		}
	}
}

func TestAngleTo(t *testing.T) {
	const eps = 1e-9
	if a := AngleTo(Loc(0, 0), Loc(10, 0)); math.Abs(a) > eps {
		t.Errorf("AngleTo right = %v, expected 0", a)
	}
	if a := AngleTo(Loc(0, 10), Loc(0, 0)); math.Abs(a-90) > eps {
		t.Errorf("AngleTo up = %v, expected 90", a)
	}
	if a := AngleTo(Loc(0, 0), Loc(0, 10)); math.Abs(a+90) > eps {
		t.Errorf("AngleTo down = %v, expected -90", a)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d",
				tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
