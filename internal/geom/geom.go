// Package geom provides the 2D vector math the overlay speaks in:
// direction bucketing, bounds-relative positioning and distance rounding.
// The host game is top-down, so only X and Y carry meaning.
package geom

import "math"

// Vec2 is a world-space point or displacement.
// Value type, passed by value (immutable).
type Vec2 struct {
	X float64
	Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v scaled by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Length returns the Euclidean magnitude of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance to another point.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

// Bounds is an axis-aligned box in world space.
type Bounds struct {
	Min Vec2
	Max Vec2
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// Contains reports whether p lies inside the bounds (edges inclusive).
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
