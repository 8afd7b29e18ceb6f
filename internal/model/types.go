// Package model defines shared data structures.
package model

import (
	"fmt"
	"time"
)

// Config defines clock display settings.
type Config struct {
	Theme       string
	ShowSeconds bool
	Smooth      bool
	ShowDate    bool
	Dial        bool
	Divisions   bool
	FrameMs     int
	// At freezes the clock at a fixed time when non-nil.
	At *time.Time
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Theme:       "grey",
		ShowSeconds: true,
		Smooth:      true,
		ShowDate:    true,
		FrameMs:     100,
	}
}

// Alarm is a daily alarm at a wall-clock minute.
type Alarm struct {
	ID        int64
	Hour      int
	Minute    int
	Label     string
	Enabled   bool
	CreatedAt time.Time
}

// TimeString formats the alarm time as HH:MM.
func (a Alarm) TimeString() string {
	return fmt.Sprintf("%02d:%02d", a.Hour, a.Minute)
}

// AlarmEvent records an alarm that fired.
type AlarmEvent struct {
	ID      int64
	AlarmID int64
	Label   string
	FiredAt time.Time
}
