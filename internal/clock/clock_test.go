package clock

import (
	"testing"
	"time"

	"github.com/verte-zerg/tuiclock/internal/face"
)

func TestMockAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 59, 0, time.UTC)
	m := NewMock(start)
	m.SetTicks(1000)
	m.Advance(1500 * time.Millisecond)
	if m.TicksMs() != 2500 {
		t.Fatalf("expected 2500 ticks, got %d", m.TicksMs())
	}
	s := Sample(m)
	if s.Minute != 1 || s.Second != 0 {
		t.Fatalf("unexpected sample %+v", s)
	}
}

func TestMockTicksWrap(t *testing.T) {
	m := NewMock(time.Unix(0, 0))
	m.SetTicks(^uint32(0))
	m.Advance(2 * time.Millisecond)
	if m.TicksMs() != 1 {
		t.Fatalf("expected wrapped counter 1, got %d", m.TicksMs())
	}
}

func TestMockDrivesSynchroniser(t *testing.T) {
	m := NewMock(time.Date(2024, 1, 1, 3, 0, 5, 0, time.UTC))
	var sync face.Synchroniser
	sync.Observe(Sample(m))
	m.Advance(250 * time.Millisecond)
	if got := sync.Observe(Sample(m)); got != 250 {
		t.Fatalf("expected 250ms, got %.1f", got)
	}
	m.Advance(800 * time.Millisecond)
	if got := sync.Observe(Sample(m)); got != 0 {
		t.Fatalf("expected reset after second change, got %.1f", got)
	}
}

func TestFixed(t *testing.T) {
	at := time.Date(1970, 1, 1, 22, 9, 26, 0, time.UTC)
	f := Fixed{At: at}
	if !f.Now().Equal(at) || f.TicksMs() != 0 {
		t.Fatalf("unexpected fixed source")
	}
}

func TestParseTimeOfDay(t *testing.T) {
	ref := time.Date(2024, 5, 26, 8, 0, 0, 0, time.UTC)
	got, err := ParseTimeOfDay("22:09:26", ref)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2024, 5, 26, 22, 9, 26, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	got, err = ParseTimeOfDay("07:30", ref)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Hour() != 7 || got.Minute() != 30 || got.Second() != 0 {
		t.Fatalf("unexpected time %v", got)
	}
	if _, err := ParseTimeOfDay("25:00", ref); err == nil {
		t.Fatalf("expected error for invalid hour")
	}
}
