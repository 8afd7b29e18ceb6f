// Package face computes the geometry of an analog clock face.
//
// Face anatomy, right half:
//
//	  12  <----------  Cardinal
//	       .  <------  SubCardinal
//	          .  <---  SubCardinal
//	   O       3 <---  Cardinal
//	          .
//	       .
//	   6
//	   <------->       Dial radius
//
// Between each cardinal and sub-cardinal sit four minute divisions.
package face

import (
	"math"

	"github.com/verte-zerg/tuiclock/internal/geom"
	"github.com/verte-zerg/tuiclock/internal/hand"
)

// Part identifies a drawable piece of the face.
type Part int

// Face parts.
const (
	PartUnknown Part = iota
	PartDial
	PartCardinal
	PartSubCardinal
	PartDivision
)

// referenceRad is the dial radius the default proportions were designed at.
const referenceRad = 160

// Ticks configures one ring of tick marks. Each tick runs inward from Rad to Rad-Len.
type Ticks struct {
	Rad     int
	Len     int
	Width   int
	Color   string
	Rounded bool
}

func (t Ticks) pen() geom.Pen {
	return geom.Pen{Width: t.Width, Color: t.Color, Rounded: t.Rounded}
}

// Pen returns the pen used to draw part. Unknown parts get a zero pen.
func (s Spec) Pen(part Part) geom.Pen {
	switch part {
	case PartDial:
		return s.Dial
	case PartCardinal:
		return s.Cardinal.pen()
	case PartSubCardinal:
		return s.SubCardinal.pen()
	case PartDivision:
		return s.Division.pen()
	}
	return geom.Pen{}
}

// Spec configures the look of a face.
type Spec struct {
	Width       int
	Height      int
	DialRad     int
	Dial        geom.Pen
	Cardinal    Ticks
	SubCardinal Ticks
	Division    Ticks
}

// Hands groups the specs of the three hands.
type Hands struct {
	Hour   hand.Spec
	Minute hand.Spec
	Second hand.Spec
}

// DialRadius returns the largest radius that keeps the face inside width x height.
func DialRadius(width, height int) int {
	side := width
	if height < side {
		side = height
	}
	r := side/2 - 1
	if r < 1 {
		r = 1
	}
	return r
}

// DefaultSpec scales the reference face to width x height. Minute divisions and
// the dial ring are off.
func DefaultSpec(width, height int) Spec {
	r := DialRadius(width, height)
	return Spec{
		Width:  width,
		Height: height,
		Dial:   geom.Pen{Width: 1, Rounded: true},
		Cardinal: Ticks{
			Rad:     r - scale(5, r, 1),
			Len:     scale(9, r, 2),
			Width:   scale(10, r, 1),
			Rounded: true,
		},
		SubCardinal: Ticks{
			Rad:     r,
			Len:     scale(1, r, 1),
			Width:   scale(10, r, 1),
			Rounded: true,
		},
		Division: Ticks{
			Rad:     r,
			Width:   1,
			Rounded: true,
		},
	}
}

// WithDivisions enables minute division ticks.
func (s Spec) WithDivisions() Spec {
	r := DialRadius(s.Width, s.Height)
	s.Division.Len = scale(4, r, 1)
	return s
}

// WithDial enables the outer dial ring.
func (s Spec) WithDial() Spec {
	s.DialRad = DialRadius(s.Width, s.Height)
	return s
}

// DefaultHands scales the reference hands to width x height.
func DefaultHands(width, height int) Hands {
	r := DialRadius(width, height)
	return Hands{
		Hour: hand.Spec{
			TailRad:    scale(15, r, 0),
			SpindleRad: scale(8, r, 1),
			FlagRad:    scale(25, r, 1),
			FlagEndRad: scale(90, r, 1),
			MainRad:    scale(90, r, 1),
			Width:      scale(4, r, 1),
			FlagWidth:  scale(14, r, 1),
		},
		Minute: hand.Spec{
			TailRad:    scale(15, r, 0),
			SpindleRad: scale(5, r, 1),
			FlagRad:    scale(25, r, 1),
			FlagEndRad: scale(125, r, 1),
			MainRad:    scale(125, r, 1),
			Width:      scale(4, r, 1),
			FlagWidth:  scale(12, r, 1),
		},
		Second: hand.Spec{
			TailRad:    scale(15, r, 0),
			SpindleRad: scale(5, r, 1),
			MainRad:    scale(155, r, 1),
			Width:      scale(4, r, 1),
		},
	}
}

func scale(v, r, minimum int) int {
	s := int(math.Round(float64(v) * float64(r) / referenceRad))
	if s < minimum {
		return minimum
	}
	return s
}
