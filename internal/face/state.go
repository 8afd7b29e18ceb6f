package face

import (
	"github.com/verte-zerg/tuiclock/internal/geom"
	"github.com/verte-zerg/tuiclock/internal/hand"
)

// State is one face instance: its layout, cached ticks and hands, and the
// sub-second synchroniser. Cached geometry is recomputed lazily on the next
// DrawMain after any invalidation.
type State struct {
	spec   Spec
	bounds geom.Rect
	pivot  geom.Point
	ticks  TickMarks
	dial   []geom.Segment

	hour   *hand.State
	minute *hand.State
	second *hand.State

	sync        Synchroniser
	smooth      bool
	showSeconds bool
	sample      TimeSample
	angles      Angles

	valid bool
}

// New returns an invalid face laid out over a spec.Width x spec.Height box.
func New(spec Spec, hands Hands) *State {
	return &State{
		spec:        spec,
		bounds:      geom.RectOf(spec.Width, spec.Height),
		hour:        hand.NewState(hands.Hour),
		minute:      hand.NewState(hands.Minute),
		second:      hand.NewState(hands.Second),
		smooth:      true,
		showSeconds: true,
	}
}

// Valid reports whether cached geometry matches the current layout and style.
func (s *State) Valid() bool {
	return s.valid
}

// Invalidate marks cached geometry for recomputation.
func (s *State) Invalidate() {
	s.valid = false
}

// Spec returns the face configuration.
func (s *State) Spec() Spec {
	return s.spec
}

// SetSpec replaces the face configuration.
func (s *State) SetSpec(spec Spec) {
	s.spec = spec
	s.valid = false
}

// Hands returns the hand configurations.
func (s *State) Hands() Hands {
	return Hands{
		Hour:   s.hour.Spec(),
		Minute: s.minute.Spec(),
		Second: s.second.Spec(),
	}
}

// SetHands replaces the hand configurations.
func (s *State) SetHands(h Hands) {
	s.hour.SetSpec(h.Hour)
	s.minute.SetSpec(h.Minute)
	s.second.SetSpec(h.Second)
	s.valid = false
}

// Bounds returns the content box of the face.
func (s *State) Bounds() geom.Rect {
	return s.bounds
}

// SetBounds moves or resizes the content box.
func (s *State) SetBounds(r geom.Rect) {
	if r == s.bounds {
		return
	}
	s.bounds = r
	s.valid = false
}

// SetSmooth selects sweeping (true) or per-second (false) second hand motion.
func (s *State) SetSmooth(smooth bool) {
	s.smooth = smooth
}

// ShowSeconds reports whether the second hand is drawn.
func (s *State) ShowSeconds() bool {
	return s.showSeconds
}

// SetShowSeconds toggles the second hand.
func (s *State) SetShowSeconds(show bool) {
	if show == s.showSeconds {
		return
	}
	s.showSeconds = show
	s.valid = false
}

// Synchronise feeds one clock sample. Call it at most once per frame.
func (s *State) Synchronise(sample TimeSample) Angles {
	fraction := s.sync.Observe(sample)
	if !s.smooth {
		fraction = 0
	}
	s.sample = sample
	s.angles = ComputeHandAngles(sample, fraction)
	return s.angles
}

// Sample returns the last synchronised sample.
func (s *State) Sample() TimeSample {
	return s.sample
}

// Angles returns the hand bearings of the last synchronised sample.
func (s *State) Angles() Angles {
	return s.angles
}

// Pivot returns the spindle position. Valid after the first recompute.
func (s *State) Pivot() geom.Point {
	return s.pivot
}

// Ticks returns the cached tick marks. Valid after the first recompute.
func (s *State) Ticks() TickMarks {
	return s.ticks
}

// Recompute rebuilds cached geometry if the state is invalid.
func (s *State) Recompute() {
	if s.valid {
		return
	}
	s.pivot = s.bounds.Center()
	s.ticks = ComputeTickMarks(s.pivot, s.spec)
	s.dial = ComputeDial(s.pivot, s.spec)
	s.hour.SetPivot(s.pivot)
	s.minute.SetPivot(s.pivot)
	s.second.SetPivot(s.pivot)
	s.valid = true
}

// DrawMain draws the dial and tick marks.
func (s *State) DrawMain(d geom.Drawer) {
	s.Recompute()
	for _, seg := range s.dial {
		d.DrawLine(seg, s.spec.Pen(PartDial))
	}
	for _, seg := range s.ticks.Divisions {
		d.DrawLine(seg, s.spec.Pen(PartDivision))
	}
	for _, seg := range s.ticks.Cardinals {
		d.DrawLine(seg, s.spec.Pen(PartCardinal))
	}
	for _, seg := range s.ticks.SubCardinals {
		d.DrawLine(seg, s.spec.Pen(PartSubCardinal))
	}
}

// DrawHands draws the hands at the last synchronised angles.
func (s *State) DrawHands(d geom.Drawer) {
	s.Recompute()
	rot := s.angles.Rotations()
	s.hour.Draw(d, rot.Hour)
	s.minute.Draw(d, rot.Minute)
	if s.showSeconds {
		s.second.Draw(d, rot.Second)
	}
}

// HandGeometry returns the current geometry of the hour, minute and second hands.
func (s *State) HandGeometry() (hour, minute, second hand.Geometry) {
	s.Recompute()
	rot := s.angles.Rotations()
	return s.hour.Rotate(rot.Hour), s.minute.Rotate(rot.Minute), s.second.Rotate(rot.Second)
}
