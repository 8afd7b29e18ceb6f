package face

import (
	"fmt"
	"time"

	"github.com/verte-zerg/tuiclock/internal/hand"
)

// MaxTickDelta caps the monotonic milliseconds credited by one observation.
const MaxTickDelta = 1000

// TimeSample is one reading of the host clock.
type TimeSample struct {
	Year    int
	Month   time.Month
	Day     int
	Weekday time.Weekday
	Hour    int
	Minute  int
	Second  int
	// TicksMs is a wrapping monotonic millisecond counter.
	TicksMs uint32
}

// NewTimeSample splits t into wall-clock fields.
func NewTimeSample(t time.Time, ticksMs uint32) TimeSample {
	return TimeSample{
		Year:    t.Year(),
		Month:   t.Month(),
		Day:     t.Day(),
		Weekday: t.Weekday(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
		TicksMs: ticksMs,
	}
}

// DateLabel formats the sample as a short date caption, e.g. "Thu 26 May".
func DateLabel(s TimeSample) string {
	if s.Month < time.January || s.Month > time.December {
		return ""
	}
	return fmt.Sprintf("%.3s %d %.3s", s.Weekday, s.Day, s.Month)
}

// Angles are hand bearings in degrees clockwise from 12 o'clock.
type Angles struct {
	Hour   float64
	Minute float64
	Second float64
}

// Rotations returns the counter-clockwise rotations the hands are drawn at.
func (a Angles) Rotations() Angles {
	return Angles{
		Hour:   hand.Invert(a.Hour),
		Minute: hand.Invert(a.Minute),
		Second: hand.Invert(a.Second),
	}
}

// ComputeHandAngles derives hand bearings from a sample and the milliseconds
// elapsed within its second. Each hand creeps with the progress of the next
// faster one.
func ComputeHandAngles(sample TimeSample, fractionalMillis float64) Angles {
	sec := float64(sample.Second)*6 + 6*(fractionalMillis/1000)
	minute := float64(sample.Minute)*6 + sec/60
	hour := float64((sample.Hour*30)%360) + minute/12
	return Angles{Hour: hour, Minute: minute, Second: sec}
}

// Synchroniser accumulates monotonic milliseconds since the last observed
// change of the wall-clock second, so the second hand sweeps between ticks.
type Synchroniser struct {
	lastSecond       int
	lastTicks        uint32
	fractionalMillis float64
	primed           bool
}

// Observe feeds a sample and returns the milliseconds elapsed within its second.
// The counter may wrap; deltas use modular arithmetic and are capped at
// MaxTickDelta.
func (s *Synchroniser) Observe(sample TimeSample) float64 {
	if !s.primed || sample.Second != s.lastSecond {
		s.fractionalMillis = 0
	} else {
		delta := sample.TicksMs - s.lastTicks
		if delta > MaxTickDelta {
			delta = MaxTickDelta
		}
		s.fractionalMillis += float64(delta)
	}
	s.lastSecond = sample.Second
	s.lastTicks = sample.TicksMs
	s.primed = true
	return s.fractionalMillis
}

// FractionalMillis returns the current accumulator.
func (s *Synchroniser) FractionalMillis() float64 {
	return s.fractionalMillis
}

// Reset forgets the previous observation.
func (s *Synchroniser) Reset() {
	*s = Synchroniser{}
}
