package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFromMidBottom(t *testing.T) {
	r := RectFromMidBottom(200, 300, 68, 84)
	if r.X != 166 || r.Y != 216 {
		t.Errorf("RectFromMidBottom() origin = (%d, %d), expected (166, 216)", r.X, r.Y)
	}
	if r.Bottom() != 300 {
		t.Errorf("Bottom() = %d, expected 300", r.Bottom())
	}
	cx, _ := r.Center()
	if cx != 200 {
		t.Errorf("Center() x = %d, expected 200", cx)
	}

	r.SetBottom(250)
	if r.Bottom() != 250 || r.Y != 166 {
		t.Errorf("SetBottom(250) gave Y=%d Bottom=%d", r.Y, r.Bottom())
	}
}

func TestViewportProjection(t *testing.T) {
	v := NewViewport(800, 400, 80, 20)

	x, y := v.Point(400, 200)
	if x != 40 || y != 10 {
		t.Errorf("Point(400, 200) = (%d, %d), expected (40, 10)", x, y)
	}

	// Off-screen to the left stays negative
	x, _ = v.Point(-5, 0)
	if x >= 0 {
		t.Errorf("Point(-5, 0) x = %d, expected negative", x)
	}

	r := v.Rect(NewRect(100, 100, 200, 100))
	if r != NewRect(10, 5, 20, 5) {
		t.Errorf("Rect() = %+v, expected {10 5 20 5}", r)
	}

	// Tiny rects still cover a cell
	tiny := v.Rect(NewRect(0, 0, 2, 2))
	if tiny.W != 1 || tiny.H != 1 {
		t.Errorf("tiny Rect() = %+v, expected 1x1", tiny)
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
