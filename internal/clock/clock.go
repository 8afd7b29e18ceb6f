// Package clock provides the wall-clock and monotonic tick sources the face samples.
package clock

import (
	"time"

	"github.com/verte-zerg/tuiclock/internal/face"
)

// Source supplies wall-clock time and a wrapping millisecond tick counter.
type Source interface {
	Now() time.Time
	TicksMs() uint32
}

// Sample reads src once and returns a face sample.
func Sample(src Source) face.TimeSample {
	return face.NewTimeSample(src.Now(), src.TicksMs())
}

// System is the production source. Ticks count milliseconds since creation
// on the monotonic clock and wrap after about 49 days.
type System struct {
	start time.Time
}

// NewSystem returns a system source started now.
func NewSystem() *System {
	return &System{start: time.Now()}
}

// Now returns the local wall-clock time.
func (s *System) Now() time.Time {
	return time.Now()
}

// TicksMs returns milliseconds since the source was created.
func (s *System) TicksMs() uint32 {
	return uint32(time.Since(s.start).Milliseconds())
}

// Fixed is a frozen source, used for simulator mode and snapshots.
type Fixed struct {
	At time.Time
}

// Now returns the frozen time.
func (f Fixed) Now() time.Time {
	return f.At
}

// TicksMs always returns 0.
func (f Fixed) TicksMs() uint32 {
	return 0
}

// Mock is a controllable source for tests.
type Mock struct {
	current time.Time
	ticks   uint32
}

// NewMock returns a Mock set to t.
func NewMock(t time.Time) *Mock {
	return &Mock{current: t}
}

// Now returns the mock time.
func (m *Mock) Now() time.Time {
	return m.current
}

// TicksMs returns the mock tick counter.
func (m *Mock) TicksMs() uint32 {
	return m.ticks
}

// Advance moves both the wall clock and the tick counter forward.
func (m *Mock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
	m.ticks += uint32(d.Milliseconds())
}

// SetTicks sets the tick counter, e.g. to exercise wraparound.
func (m *Mock) SetTicks(ticks uint32) {
	m.ticks = ticks
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" on the date of ref, in ref's location.
func ParseTimeOfDay(value string, ref time.Time) (time.Time, error) {
	var parsed time.Time
	var err error
	for _, layout := range []string{"15:04:05", "15:04"} {
		parsed, err = time.Parse(layout, value)
		if err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := ref.Date()
	return time.Date(y, mo, d, parsed.Hour(), parsed.Minute(), parsed.Second(), 0, ref.Location()), nil
}
