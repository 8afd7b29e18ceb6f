// Package geom provides the pixel-space primitives shared by hand and face geometry.
//
// Coordinates are dot positions in a y-up frame: +Y points toward 12 o'clock.
// Renderers that address rows top-down flip Y when rasterising.
package geom

import "math"

// Point is a pixel coordinate.
type Point struct {
	X int
	Y int
}

// Segment is a line between two points.
type Segment struct {
	From Point
	To   Point
}

// Rect is an axis-aligned box with inclusive corners.
type Rect struct {
	Min Point
	Max Point
}

// Width returns the number of columns covered by the rect.
func (r Rect) Width() int {
	return r.Max.X - r.Min.X + 1
}

// Height returns the number of rows covered by the rect.
func (r Rect) Height() int {
	return r.Max.Y - r.Min.Y + 1
}

// Center returns the pivot used for a widget occupying the rect.
func (r Rect) Center() Point {
	return Point{
		X: r.Min.X + r.Width()/2,
		Y: r.Min.Y + r.Height()/2,
	}
}

// Contains reports whether p lies inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// RectOf returns the rect with its top-left dot at the origin and the given size.
func RectOf(width, height int) Rect {
	return Rect{Max: Point{X: width - 1, Y: height - 1}}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// Polar returns the point radius away from pivot at a bearing of angleDeg,
// measured clockwise from 12 o'clock. Offsets are truncated toward zero.
func Polar(pivot Point, angleDeg, radius float64) Point {
	rad := Radians(angleDeg)
	return Point{
		X: pivot.X + int(math.Sin(rad)*radius),
		Y: pivot.Y + int(math.Cos(rad)*radius),
	}
}

// Radial returns the segment between two radii along the same bearing.
func Radial(pivot Point, angleDeg, fromRad, toRad float64) Segment {
	return Segment{
		From: Polar(pivot, angleDeg, fromRad),
		To:   Polar(pivot, angleDeg, toRad),
	}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}

// Bearing returns the clockwise-from-12 angle of b seen from a, in [0, 360).
func Bearing(a, b Point) float64 {
	deg := math.Atan2(float64(b.X-a.X), float64(b.Y-a.Y)) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Pen describes how a line is stroked.
type Pen struct {
	Width   int
	Color   string
	Rounded bool
}

// Drawer draws stroked line segments.
type Drawer interface {
	DrawLine(seg Segment, pen Pen)
}
