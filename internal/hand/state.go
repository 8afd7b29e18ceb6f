package hand

import "github.com/verte-zerg/tuiclock/internal/geom"

// State tracks one hand's pivot and rotation and caches its geometry.
type State struct {
	spec     Spec
	pivot    geom.Point
	rotation float64
	geometry Geometry
	stale    bool
}

// NewState returns a hand pivoted at the origin with no rotation.
func NewState(spec Spec) *State {
	return &State{spec: spec, stale: true}
}

// Spec returns the hand configuration.
func (s *State) Spec() Spec {
	return s.spec
}

// SetSpec replaces the hand configuration.
func (s *State) SetSpec(spec Spec) {
	s.spec = spec
	s.stale = true
}

// SetPivot moves the spindle.
func (s *State) SetPivot(p geom.Point) {
	if p == s.pivot {
		return
	}
	s.pivot = p
	s.stale = true
}

// Pivot returns the spindle position.
func (s *State) Pivot() geom.Point {
	return s.pivot
}

// Stale reports whether the cached geometry no longer matches pivot and rotation.
func (s *State) Stale() bool {
	return s.stale
}

// Rotate sets the counter-clockwise-from-12 rotation and returns the geometry.
func (s *State) Rotate(by float64) Geometry {
	if by != s.rotation {
		s.rotation = by
		s.stale = true
	}
	if s.stale {
		s.geometry = Compute(s.pivot, Invert(s.rotation), s.spec)
		s.stale = false
	}
	return s.geometry
}

// Geometry returns the cached geometry without recomputing it.
func (s *State) Geometry() Geometry {
	return s.geometry
}

// Draw rotates the hand and strokes its spindle, main and flag segments.
func (s *State) Draw(d geom.Drawer, by float64) {
	g := s.Rotate(by)
	d.DrawLine(g.Main, s.pen(PartMain))
	if flag, ok := g.FlagSegment(); ok {
		d.DrawLine(flag, s.pen(PartFlag))
	}
	if s.spec.SpindleRad > 0 {
		d.DrawLine(geom.Segment{From: s.pivot, To: s.pivot}, s.pen(PartSpindle))
	}
}

func (s *State) pen(part Part) geom.Pen {
	pen := geom.Pen{Width: s.spec.Width, Color: s.spec.Color, Rounded: true}
	switch part {
	case PartFlag:
		pen.Width = s.spec.FlagWidth
	case PartSpindle:
		pen.Width = 2 * s.spec.SpindleRad
	}
	if pen.Width < 1 {
		pen.Width = 1
	}
	return pen
}
