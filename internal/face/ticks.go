package face

import "github.com/verte-zerg/tuiclock/internal/geom"

// Tick counts around the face.
const (
	Cardinals    = 4
	SubCardinals = 8
	Hours        = 12
	Minutes      = 60
	DialChords   = 60
)

// TickMarks holds the fixed tick segments of a face.
type TickMarks struct {
	Cardinals         [Cardinals]geom.Segment
	CardinalAngles    [Cardinals]float64
	SubCardinals      [SubCardinals]geom.Segment
	SubCardinalAngles [SubCardinals]float64
	Divisions         []geom.Segment
}

// ComputeTickMarks returns the cardinal, sub-cardinal and division ticks around center.
func ComputeTickMarks(center geom.Point, spec Spec) TickMarks {
	var tm TickMarks

	rotation := 0.0
	for i := 0; i < Cardinals; i++ {
		tm.Cardinals[i] = tickSegment(center, rotation, spec.Cardinal)
		tm.CardinalAngles[i] = rotation
		rotation += 90
	}

	rotation = 0
	n := 0
	for i := 0; i < Hours; i++ {
		rotation += 30
		if i%3 == 2 {
			continue
		}
		tm.SubCardinals[n] = tickSegment(center, rotation, spec.SubCardinal)
		tm.SubCardinalAngles[n] = rotation
		n++
	}

	if spec.Division.Len > 0 {
		tm.Divisions = make([]geom.Segment, 0, Minutes-Hours)
		for i := 1; i < Minutes; i++ {
			if i%5 == 0 {
				continue
			}
			tm.Divisions = append(tm.Divisions, tickSegment(center, float64(i*6), spec.Division))
		}
	}
	return tm
}

// ComputeDial returns chords approximating the dial ring, or nil when DialRad is 0.
func ComputeDial(center geom.Point, spec Spec) []geom.Segment {
	if spec.DialRad <= 0 {
		return nil
	}
	rad := float64(spec.DialRad)
	step := 360.0 / DialChords
	out := make([]geom.Segment, 0, DialChords)
	for i := 0; i < DialChords; i++ {
		a := float64(i) * step
		out = append(out, geom.Segment{
			From: geom.Polar(center, a, rad),
			To:   geom.Polar(center, a+step, rad),
		})
	}
	return out
}

func tickSegment(center geom.Point, angle float64, t Ticks) geom.Segment {
	return geom.Radial(center, angle, float64(t.Rad), float64(t.Rad-t.Len))
}
