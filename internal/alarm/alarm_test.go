package alarm

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/tuiclock/internal/model"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in     string
		hour   int
		minute int
		ok     bool
	}{
		{in: "07:05", hour: 7, minute: 5, ok: true},
		{in: " 23:59 ", hour: 23, minute: 59, ok: true},
		{in: "0:00", hour: 0, minute: 0, ok: true},
		{in: "24:00"},
		{in: "12:60"},
		{in: "12:5"},
		{in: "noon"},
		{in: "12:00:00"},
	}
	for _, tc := range cases {
		hour, minute, err := Parse(tc.in)
		if tc.ok {
			if err != nil || hour != tc.hour || minute != tc.minute {
				t.Fatalf("%q: expected %02d:%02d, got %02d:%02d (%v)", tc.in, tc.hour, tc.minute, hour, minute, err)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidTime) {
			t.Fatalf("%q: expected ErrInvalidTime, got %v", tc.in, err)
		}
	}
}

func TestNext(t *testing.T) {
	now := time.Date(2024, 5, 26, 8, 30, 0, 0, time.UTC)
	alarms := []model.Alarm{
		{ID: 1, Hour: 7, Minute: 0, Enabled: true},
		{ID: 2, Hour: 9, Minute: 0, Enabled: false},
		{ID: 3, Hour: 22, Minute: 15, Enabled: true},
	}
	a, at, ok := Next(alarms, now)
	if !ok || a.ID != 3 {
		t.Fatalf("expected alarm 3, got %+v (%v)", a, ok)
	}
	if want := time.Date(2024, 5, 26, 22, 15, 0, 0, time.UTC); !at.Equal(want) {
		t.Fatalf("expected %v, got %v", want, at)
	}

	late := time.Date(2024, 5, 26, 23, 0, 0, 0, time.UTC)
	a, at, ok = Next(alarms, late)
	if !ok || a.ID != 1 || at.Day() != 27 {
		t.Fatalf("expected tomorrow's alarm 1, got %+v at %v", a, at)
	}

	if _, _, ok := Next([]model.Alarm{{ID: 9, Enabled: false}}, now); ok {
		t.Fatalf("expected no enabled alarm")
	}
}

func TestNextAtSameMinute(t *testing.T) {
	a := model.Alarm{Hour: 8, Minute: 30, Enabled: true}
	now := time.Date(2024, 5, 26, 8, 30, 0, 0, time.UTC)
	if at := NextAt(a, now); at.Day() != 27 {
		t.Fatalf("expected alarm at the current instant to roll over, got %v", at)
	}
	before := now.Add(-time.Second)
	if at := NextAt(a, before); !at.Equal(now) {
		t.Fatalf("expected %v, got %v", now, at)
	}
}

func TestWatcherFiresOncePerMinute(t *testing.T) {
	w := NewWatcher()
	alarms := []model.Alarm{
		{ID: 1, Hour: 7, Minute: 0, Enabled: true},
		{ID: 2, Hour: 7, Minute: 0, Enabled: false},
	}
	now := time.Date(2024, 5, 26, 7, 0, 1, 0, time.UTC)
	if due := w.Check(alarms, now); len(due) != 1 || due[0].ID != 1 {
		t.Fatalf("expected alarm 1 due, got %+v", due)
	}
	if due := w.Check(alarms, now.Add(30*time.Second)); len(due) != 0 {
		t.Fatalf("expected no repeat within the minute, got %+v", due)
	}
	if due := w.Check(alarms, now.Add(time.Minute)); len(due) != 0 {
		t.Fatalf("expected nothing due at 07:01, got %+v", due)
	}
	if due := w.Check(alarms, now.AddDate(0, 0, 1)); len(due) != 1 {
		t.Fatalf("expected alarm to fire again the next day, got %+v", due)
	}
}

func TestFormatUntil(t *testing.T) {
	cases := map[time.Duration]string{
		30 * time.Second:                "in <1m",
		5 * time.Minute:                 "in 5m",
		2*time.Hour + 5*time.Minute:     "in 2h05m",
		23*time.Hour + 59*time.Minute:   "in 23h59m",
		59*time.Minute + 40*time.Second: "in 1h00m",
	}
	for in, want := range cases {
		if got := FormatUntil(in); got != want {
			t.Fatalf("%v: expected %q, got %q", in, want, got)
		}
	}
}

func TestFormatAlarms(t *testing.T) {
	now := time.Date(2024, 5, 26, 6, 0, 0, 0, time.UTC)
	lines := FormatAlarms([]model.Alarm{
		{ID: 1, Hour: 7, Minute: 0, Label: "起床", Enabled: true},
		{ID: 12, Hour: 22, Minute: 30, Label: "sleep"},
	}, now)
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "LABEL") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], " 1  07:00  yes  in 1h00m") {
		t.Fatalf("unexpected row %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "12  22:30  no   -") {
		t.Fatalf("unexpected row %q", lines[2])
	}
}

func TestFormatHistory(t *testing.T) {
	lines := FormatHistory([]model.AlarmEvent{
		{AlarmID: 3, Label: "wake", FiredAt: time.Date(2024, 5, 26, 7, 0, 0, 0, time.UTC)},
	})
	if len(lines) != 2 || lines[1] != "2024-05-26 07:00      3  wake" {
		t.Fatalf("unexpected history %q", lines)
	}
}
