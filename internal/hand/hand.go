// Package hand computes the geometry of a single clock hand.
//
// Hand anatomy, shown at the 3 o'clock position:
//
//	----(*)----------=================----
//	^    ^           ^               ^   ^
//	|    |           |               |   +--- MainRad
//	|    |           |               +------- FlagEndRad
//	|    |           +----------------------- FlagRad
//	|    +----------------------------------- SpindleRad
//	+---------------------------------------- TailRad (negative for a floating hand)
package hand

import (
	"math"

	"github.com/verte-zerg/tuiclock/internal/geom"
)

// Part identifies a drawable piece of a hand.
type Part int

// Hand parts.
const (
	PartUnknown Part = iota
	PartMain
	PartFlag
	PartSpindle
)

// Spec configures the look of a hand.
type Spec struct {
	TailRad    int
	SpindleRad int
	FlagRad    int
	FlagEndRad int
	MainRad    int
	Color      string
	Width      int
	FlagWidth  int
}

// HasFlag reports whether the spec draws a flag segment.
func (s Spec) HasFlag() bool {
	return s.FlagRad != 0
}

// Geometry holds the segments of a hand at one rotation.
type Geometry struct {
	Main    geom.Segment
	Flag    geom.Segment
	HasFlag bool
}

// FlagSegment returns the flag segment, if the hand has one.
func (g Geometry) FlagSegment() (geom.Segment, bool) {
	if !g.HasFlag {
		return geom.Segment{}, false
	}
	return g.Flag, true
}

// Compute returns the hand segments for a pivot and a clockwise-from-12 angle.
func Compute(pivot geom.Point, angleDeg float64, spec Spec) Geometry {
	g := Geometry{
		Main: geom.Radial(pivot, angleDeg, -float64(spec.TailRad), float64(spec.MainRad)),
	}
	if spec.HasFlag() {
		g.Flag = geom.Radial(pivot, angleDeg, float64(spec.FlagRad), float64(spec.FlagEndRad))
		g.HasFlag = true
	}
	return g
}

// Invert converts between a clockwise-from-12 bearing and the counter-clockwise
// rotation taken by State.Rotate. It is its own inverse modulo 360.
func Invert(deg float64) float64 {
	return 360 - deg
}

// Normalize maps an angle into [0, 360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
