// Package core provides the shared primitives of the runner: geometry,
// per-tick input frames, the character screen buffer and the state values
// exchanged between the simulation and the platform layer.
// It has no external dependencies so the simulation stays pure and testable.
package core

// Rect is an axis-aligned bounding box in integer world or screen units.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether two rectangles share at least one unit of area.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.W <= 0 || r.H <= 0 || other.W <= 0 || other.H <= 0 {
		return false
	}
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Scale maps a rectangle from a world of size (fromW, fromH) onto a grid of
// size (toW, toH). A rectangle with positive area always keeps at least one
// cell in each dimension so small entities stay visible.
func (r Rect) Scale(fromW, fromH, toW, toH int) Rect {
	if fromW <= 0 || fromH <= 0 {
		return Rect{}
	}
	x0 := floorDiv(r.X*toW, fromW)
	y0 := floorDiv(r.Y*toH, fromH)
	x1 := floorDiv(r.Right()*toW, fromW)
	y1 := floorDiv(r.Bottom()*toH, fromH)
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// floorDiv divides rounding toward negative infinity, so entities sliding off
// the left edge map to negative columns instead of sticking at column 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
