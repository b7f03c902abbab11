// Package core holds the terminal-free pieces shared by the game and the
// platform: geometry in world units, the cell screen buffer, input frames
// and runtime config. Nothing here imports Bubble Tea.
package core

import (
	"cmp"
	"math"
)

// Rect is an integer box in screen cells, used for overlays.
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

// Clamp restricts val to [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	return min(max(val, lo), hi)
}

// Vec2 is a 2D vector in world units. Y grows downward, as on screen.
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns the unit vector pointing at angle (radians).
func FromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns v scaled to unit length. The zero vector stays zero.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Angle returns the angle of v in radians, measured from +X toward +Y.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotated returns v rotated by angle radians.
func (v Vec2) Rotated(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Clamp restricts each component of v to the box [lo, hi].
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{
		X: Clamp(v.X, lo.X, hi.X),
		Y: Clamp(v.Y, lo.Y, hi.Y),
	}
}

// RectF is a float axis-aligned box in world units.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// CenteredRectF returns a w x h box centered on c.
func CenteredRectF(c Vec2, w, h float64) RectF {
	return RectF{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if the two boxes overlap with positive area.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}
