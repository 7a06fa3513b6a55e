// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea or Ebiten)
// to keep game logic pure and testable.
package core

import "math"

// Vec2 is a point or displacement in world units.
// World space is y-up with the origin at the viewport centre.
type Vec2 struct {
	X, Y float64
}

// V creates a vector from its components.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect represents an axis-aligned bounding box used for collision detection.
// It is stored as a centre and half extents, matching how colliders are authored.
type Rect struct {
	Center Vec2
	HalfW  float64
	HalfH  float64
}

// NewRect creates a new rectangle centred on (cx, cy).
func NewRect(cx, cy, halfW, halfH float64) Rect {
	return Rect{Center: Vec2{X: cx, Y: cy}, HalfW: halfW, HalfH: halfH}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.Center.X - r.HalfW
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Center.X + r.HalfW
}

// Bottom returns the y-coordinate of the bottom edge (y-up).
func (r Rect) Bottom() float64 {
	return r.Center.Y - r.HalfH
}

// Top returns the y-coordinate of the top edge (y-up).
func (r Rect) Top() float64 {
	return r.Center.Y + r.HalfH
}

// Width returns the full width.
func (r Rect) Width() float64 {
	return 2 * r.HalfW
}

// Height returns the full height.
func (r Rect) Height() float64 {
	return 2 * r.HalfH
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.Left() >= other.Right() || other.Left() >= r.Right() {
		return false
	}
	if r.Bottom() >= other.Top() || other.Bottom() >= r.Top() {
		return false
	}
	return true
}

// Overlap returns the penetration depth along each axis.
// Both values are zero when the rectangles do not intersect.
func (r Rect) Overlap(other Rect) (dx, dy float64) {
	if !r.Intersects(other) {
		return 0, 0
	}
	dx = math.Min(r.Right(), other.Right()) - math.Max(r.Left(), other.Left())
	dy = math.Min(r.Top(), other.Top()) - math.Max(r.Bottom(), other.Bottom())
	return dx, dy
}

// Contains returns true if the point is inside this rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Bottom() && p.Y < r.Top()
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
