// Package core provides the fundamental types shared by the simulation and
// its frontends: vectors and circles in normalized device coordinates, the
// color palette, a cell screen buffer and the held-key map.
// It has no dependency on any UI toolkit so game logic stays pure and testable.
package core

import (
	"image/color"
	"math"
)

// Vec2 is a point in normalized device coordinates. Both axes span [-1, 1]
// with y pointing up.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Circle is the collision shape shared by the player, collectibles and obstacles.
type Circle struct {
	Pos    Vec2
	Radius float64
	Color  color.RGBA
}

// Overlaps reports whether two circles intersect.
// Touching circles (distance equal to the sum of radii) do not overlap.
func (c Circle) Overlaps(other Circle) bool {
	return c.Pos.Dist(other.Pos) < c.Radius+other.Radius
}

// Rect is an axis-aligned rectangle in screen cells, used for layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	w := Max(r.W-2*n, 0)
	h := Max(r.H-2*n, 0)
	return Rect{X: r.X + n, Y: r.Y + n, W: w, H: h}
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
