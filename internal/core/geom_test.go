package core

import "testing"

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

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
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
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		want Color
		ok   bool
	}{
		{"emerald", ColorEmerald, true},
		{" Pink ", ColorPink, true},
		{"VIOLET", ColorViolet, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.name)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}

	if ColorAmber.String() != "amber" {
		t.Errorf("ColorAmber.String() = %q, expected \"amber\"", ColorAmber.String())
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("New input frame should be empty")
	}

	f.Set(ActionToggle)
	f.Click(3, 4)

	if !f.Has(ActionToggle) {
		t.Error("Has(ActionToggle) should be true after Set")
	}
	if f.Has(ActionShuffle) {
		t.Error("Has(ActionShuffle) should be false")
	}
	if len(f.Clicks) != 1 || f.Clicks[0] != (Point{X: 3, Y: 4}) {
		t.Errorf("Clicks = %v, expected [{3 4}]", f.Clicks)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Frame should be empty after Clear")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("Zero-value frame should report no actions")
	}
}
