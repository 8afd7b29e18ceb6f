// Package alarm contains alarm scheduling and formatting.
package alarm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/tuiclock/internal/model"
)

// ErrInvalidTime is returned for alarm times that are not HH:MM on a 24-hour clock.
var ErrInvalidTime = errors.New("invalid alarm time")

// Parse parses an alarm time in HH:MM form.
func Parse(value string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q (expected HH:MM)", ErrInvalidTime, value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: hour %q", ErrInvalidTime, parts[0])
	}
	if len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("%w: minute %q", ErrInvalidTime, parts[1])
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: minute %q", ErrInvalidTime, parts[1])
	}
	return hour, minute, nil
}

// NextAt returns the first time strictly after now at which a rings.
func NextAt(a model.Alarm, now time.Time) time.Time {
	y, mo, d := now.Date()
	at := time.Date(y, mo, d, a.Hour, a.Minute, 0, 0, now.Location())
	if !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at
}

// Next returns the enabled alarm that rings soonest after now.
func Next(alarms []model.Alarm, now time.Time) (model.Alarm, time.Time, bool) {
	var best model.Alarm
	var bestAt time.Time
	found := false
	for _, a := range alarms {
		if !a.Enabled {
			continue
		}
		at := NextAt(a, now)
		if !found || at.Before(bestAt) {
			best, bestAt, found = a, at, true
		}
	}
	return best, bestAt, found
}

// Watcher reports each enabled alarm once for the minute it is due.
type Watcher struct {
	fired map[int64]string
}

// NewWatcher returns an empty watcher.
func NewWatcher() *Watcher {
	return &Watcher{fired: map[int64]string{}}
}

// Check returns the alarms due at now that have not fired this minute.
func (w *Watcher) Check(alarms []model.Alarm, now time.Time) []model.Alarm {
	key := now.Format("2006-01-02 15:04")
	var due []model.Alarm
	for _, a := range alarms {
		if !a.Enabled || a.Hour != now.Hour() || a.Minute != now.Minute() {
			continue
		}
		if w.fired[a.ID] == key {
			continue
		}
		w.fired[a.ID] = key
		due = append(due, a)
	}
	return due
}

// FormatUntil renders a short countdown such as "in 2h05m".
func FormatUntil(d time.Duration) string {
	if d < time.Minute {
		return "in <1m"
	}
	total := int(d.Round(time.Minute) / time.Minute)
	hours, minutes := total/60, total%60
	if hours == 0 {
		return fmt.Sprintf("in %dm", minutes)
	}
	return fmt.Sprintf("in %dh%02dm", hours, minutes)
}
