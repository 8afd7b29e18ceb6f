// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/tuiclock/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrNotFound is returned when an alarm id does not exist.
var ErrNotFound = errors.New("alarm not found")

// Store wraps SQLite access for alarms and their history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS alarms (
			id INTEGER PRIMARY KEY,
			hour INTEGER NOT NULL,
			minute INTEGER NOT NULL,
			label TEXT NOT NULL,
			enabled INTEGER NOT NULL DEFAULT 1,
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS alarm_events (
			id INTEGER PRIMARY KEY,
			alarm_id INTEGER NOT NULL,
			label TEXT NOT NULL,
			fired_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_alarm_events_fired_at ON alarm_events(fired_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertAlarm stores a new alarm and returns its id.
func (s *Store) InsertAlarm(ctx context.Context, alarm model.Alarm) (int64, error) {
	createdAt := alarm.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO alarms (hour, minute, label, enabled, created_at) VALUES (?, ?, ?, ?, ?)`,
		alarm.Hour,
		alarm.Minute,
		alarm.Label,
		boolToInt(alarm.Enabled),
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListAlarms returns all alarms ordered by time of day.
func (s *Store) ListAlarms(ctx context.Context) ([]model.Alarm, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, hour, minute, label, enabled, created_at
		FROM alarms
		ORDER BY hour ASC, minute ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var alarms []model.Alarm
	for rows.Next() {
		var a model.Alarm
		var enabled int
		var createdAt string
		if err := rows.Scan(&a.ID, &a.Hour, &a.Minute, &a.Label, &enabled, &createdAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		a.Enabled = enabled != 0
		a.CreatedAt = parsed
		alarms = append(alarms, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return alarms, nil
}

// SetAlarmEnabled enables or disables an alarm.
func (s *Store) SetAlarmEnabled(ctx context.Context, id int64, enabled bool) error {
	res, err := s.db.ExecContext(ctx, `UPDATE alarms SET enabled = ? WHERE id = ?`, boolToInt(enabled), id)
	if err != nil {
		return err
	}
	return expectRow(res, id)
}

// DeleteAlarm removes an alarm. Its fired history is kept.
func (s *Store) DeleteAlarm(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM alarms WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return expectRow(res, id)
}

// RecordFired appends an entry to the alarm history.
func (s *Store) RecordFired(ctx context.Context, event model.AlarmEvent) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO alarm_events (alarm_id, label, fired_at) VALUES (?, ?, ?)`,
		event.AlarmID,
		event.Label,
		event.FiredAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListFired returns the most recent history entries, newest first.
// A non-positive limit returns every entry.
func (s *Store) ListFired(ctx context.Context, limit int) ([]model.AlarmEvent, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, alarm_id, label, fired_at
		FROM alarm_events
		ORDER BY fired_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var events []model.AlarmEvent
	for rows.Next() {
		var ev model.AlarmEvent
		var firedAt string
		if err := rows.Scan(&ev.ID, &ev.AlarmID, &ev.Label, &firedAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, firedAt)
		if err != nil {
			return nil, err
		}
		ev.FiredAt = parsed
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func expectRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("alarm %d: %w", id, ErrNotFound)
	}
	return nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
