// Package core provides fundamental types and utilities for the breakout game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
// Coordinates are in world units; the platform layer decides how units map to cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CenterX returns the x-coordinate of the center.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// CenterY returns the y-coordinate of the center.
func (r Rect) CenterY() int {
	return r.Y + r.H/2
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.CenterX(), r.CenterY()
}

// Move translates the rectangle in place. No bounds checking is done here;
// callers clamp where the playfield requires it.
func (r *Rect) Move(dx, dy int) {
	r.X += dx
	r.Y += dy
}

// Inflate grows (or shrinks, for negative deltas) the rectangle around its center.
func (r *Rect) Inflate(dw, dh int) {
	r.X -= FloorDiv(dw, 2)
	r.Y -= FloorDiv(dh, 2)
	r.W += dw
	r.H += dh
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; touching edges do not overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// LeftEdge returns the 1-unit strip along the left side.
func (r Rect) LeftEdge() Rect {
	return Rect{X: r.X, Y: r.Y, W: 1, H: r.H}
}

// RightEdge returns the 1-unit strip starting at the right edge.
func (r Rect) RightEdge() Rect {
	return Rect{X: r.Right(), Y: r.Y, W: 1, H: r.H}
}

// TopEdge returns the 1-unit strip along the top side.
func (r Rect) TopEdge() Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W, H: 1}
}

// BottomEdge returns the 1-unit strip starting at the bottom edge.
func (r Rect) BottomEdge() Rect {
	return Rect{X: r.X, Y: r.Bottom(), W: r.W, H: 1}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
