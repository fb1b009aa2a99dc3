// Package core provides fundamental types and utilities shared by the game
// and the platform layer. It has no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromMidBottom creates a rectangle whose bottom edge is centered on (x, bottom).
func RectFromMidBottom(x, bottom, w, h int) Rect {
	return Rect{X: x - w/2, Y: bottom - h, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// SetBottom moves the rectangle vertically so its bottom edge sits at y.
func (r *Rect) SetBottom(y int) {
	r.Y = y - r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Viewport maps the fixed logical playfield onto a screen buffer of
// arbitrary size. Game code works in logical units only.
type Viewport struct {
	LogicalW, LogicalH int
	ScreenW, ScreenH   int
}

// NewViewport creates a viewport for the given logical and screen sizes.
func NewViewport(logicalW, logicalH, screenW, screenH int) Viewport {
	return Viewport{
		LogicalW: logicalW,
		LogicalH: logicalH,
		ScreenW:  screenW,
		ScreenH:  screenH,
	}
}

// Point projects a logical point to screen cell coordinates.
func (v Viewport) Point(x, y int) (int, int) {
	if v.LogicalW <= 0 || v.LogicalH <= 0 {
		return 0, 0
	}
	return floorDiv(x*v.ScreenW, v.LogicalW), floorDiv(y*v.ScreenH, v.LogicalH)
}

// Rect projects a logical rectangle to screen cells.
// Non-empty rectangles always cover at least one cell.
func (v Viewport) Rect(r Rect) Rect {
	x0, y0 := v.Point(r.X, r.Y)
	x1, y1 := v.Point(r.Right(), r.Bottom())
	w := x1 - x0
	h := y1 - y0
	if r.W > 0 && w < 1 {
		w = 1
	}
	if r.H > 0 && h < 1 {
		h = 1
	}
	return NewRect(x0, y0, w, h)
}

// floorDiv divides rounding toward negative infinity so off-screen
// positions left of the origin stay off-screen after projection.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
