// Package core provides fundamental types and utilities for the blaster simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// GameLocation is a position in pixel space. It has no identity and is copied by value.
type GameLocation struct {
	Left float64
	Top  float64
}

// Loc is shorthand for constructing a GameLocation.
func Loc(left, top float64) GameLocation {
	return GameLocation{Left: left, Top: top}
}

// Add returns the location offset by other.
func (l GameLocation) Add(other GameLocation) GameLocation {
	return GameLocation{Left: l.Left + other.Left, Top: l.Top + other.Top}
}

// Distance returns the euclidean distance between two locations.
func (l GameLocation) Distance(other GameLocation) float64 {
	return math.Hypot(other.Left-l.Left, other.Top-l.Top)
}

// Cell rounds the location down to integer cell coordinates.
func (l GameLocation) Cell() (int, int) {
	return int(math.Floor(l.Left)), int(math.Floor(l.Top))
}

// GameRectangle is an axis-aligned hitbox. Right and Bottom are exclusive edges,
// so a rectangle at Left=0 with width 3 has Right=3.
type GameRectangle struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectAt builds a rectangle from an origin and a size.
func RectAt(origin GameLocation, width, height float64) GameRectangle {
	return GameRectangle{
		Left:   origin.Left,
		Top:    origin.Top,
		Right:  origin.Left + width,
		Bottom: origin.Top + height,
	}
}

// Width returns the horizontal extent of the rectangle.
func (r GameRectangle) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r GameRectangle) Height() float64 {
	return r.Bottom - r.Top
}

// Center returns the center point of the rectangle.
func (r GameRectangle) Center() GameLocation {
	return GameLocation{Left: (r.Left + r.Right) / 2, Top: (r.Top + r.Bottom) / 2}
}

// Expand grows the rectangle by margin on every side.
func (r GameRectangle) Expand(margin float64) GameRectangle {
	return GameRectangle{
		Left:   r.Left - margin,
		Top:    r.Top - margin,
		Right:  r.Right + margin,
		Bottom: r.Bottom + margin,
	}
}

// Contains reports whether the location lies inside the rectangle.
// The left/top edges are inclusive and the right/bottom edges exclusive.
func (r GameRectangle) Contains(l GameLocation) bool {
	return l.Left >= r.Left && l.Left < r.Right && l.Top >= r.Top && l.Top < r.Bottom
}

// Overlaps reports whether two hitboxes intersect.
// Rectangles that only share a boundary edge do not overlap. The test is
// symmetric: Overlaps(a, b) == Overlaps(b, a).
func Overlaps(a, b GameRectangle) bool {
	if a.Right <= b.Left || a.Left >= b.Right {
		return false
	}
	if a.Bottom <= b.Top || a.Top >= b.Bottom {
		return false
	}
	return true
}

// Field describes the play field and the pixel size used by the renderer.
// Values are supplied once at construction time and treated as read-only.
type Field struct {
	Top       float64
	Bottom    float64
	Left      float64
	Right     float64
	PixelSize int
}

// Rect returns the field as a rectangle.
func (f Field) Rect() GameRectangle {
	return GameRectangle{Left: f.Left, Top: f.Top, Right: f.Right, Bottom: f.Bottom}
}

// Width returns the field width in pixels.
func (f Field) Width() float64 {
	return f.Right - f.Left
}

// Height returns the field height in pixels.
func (f Field) Height() float64 {
	return f.Bottom - f.Top
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

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Step returns the displacement produced by moving speed pixels along angle.
// Angles are in degrees: 0 points right and 90 points up the screen.
func Step(angle, speed float64) GameLocation {
	rad := Radians(angle)
	return GameLocation{Left: math.Cos(rad) * speed, Top: -math.Sin(rad) * speed}
}

// AngleTo returns the angle in degrees pointing from one location to another.
func AngleTo(from, to GameLocation) float64 {
	return math.Atan2(-(to.Top - from.Top), to.Left-from.Left) * 180 / math.Pi
}
