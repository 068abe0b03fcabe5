package storage

import (
	"database/sql"
	"time"

	"tail/internal/tailerr"
)

// InsertWindowEvent inserts a new focus interval row and returns its id.
// C5 calls this when a window gains focus, with duration=0; the row is
// updated in place as the interval progresses and closes.
func (s *Store) InsertWindowEvent(ts time.Time, appName, windowTitle, workspace string, durationSecs float64, isAFK bool) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO window_events (timestamp, app_name, window_title, workspace, duration_secs, is_afk)
		VALUES (?, ?, ?, ?, ?, ?)`,
		ts.UTC(), appName, windowTitle, workspace, durationSecs, isAFK,
	)
	if err != nil {
		return 0, tailerr.Wrap(tailerr.KindStorage, "insert window event", err)
	}
	return result.LastInsertId()
}

// UpdateWindowEventDuration overwrites the duration of an in-progress or
// just-closed focus interval. Called on every heartbeat tick and once more
// when the interval closes.
func (s *Store) UpdateWindowEventDuration(id int64, durationSecs float64) error {
	result, err := s.db.Exec(`UPDATE window_events SET duration_secs = ? WHERE id = ?`, durationSecs, id)
	if err != nil {
		return tailerr.Wrap(tailerr.KindStorage, "update window event duration", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return tailerr.Wrap(tailerr.KindStorage, "read rows affected", err)
	}
	if n == 0 {
		return tailerr.NotFound("window_event")
	}
	return nil
}

// WindowEventRow is a persisted focus interval, as scanned from window_events.
type WindowEventRow struct {
	ID           int64
	Timestamp    time.Time
	AppName      string
	WindowTitle  string
	Workspace    string
	DurationSecs float64
	IsAFK        bool
}

// GetWindowEvents returns every event whose timestamp falls within
// [start,end], ordered by timestamp ascending. An event that starts before
// start is not returned, even if its duration reaches into the range.
func (s *Store) GetWindowEvents(start, end time.Time) ([]WindowEventRow, error) {
	rows, err := s.db.Query(`
		SELECT id, timestamp, app_name, window_title, workspace, duration_secs, is_afk
		FROM window_events
		WHERE timestamp >= ? AND timestamp <= ?
		ORDER BY timestamp ASC`, start.UTC(), end.UTC())
	if err != nil {
		return nil, tailerr.Wrap(tailerr.KindStorage, "query window events", err)
	}
	defer rows.Close()

	var events []WindowEventRow
	for rows.Next() {
		var e WindowEventRow
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.AppName, &e.WindowTitle, &e.Workspace, &e.DurationSecs, &e.IsAFK); err != nil {
			return nil, tailerr.Wrap(tailerr.KindStorage, "scan window event", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetAllAppNames returns every distinct app_name observed in window_events.
func (s *Store) GetAllAppNames() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT app_name FROM window_events ORDER BY app_name ASC`)
	if err != nil {
		return nil, tailerr.Wrap(tailerr.KindStorage, "query distinct app names", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, tailerr.Wrap(tailerr.KindStorage, "scan app name", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// CloseOrphanedFocus closes any window_events row left open (duration_secs
// still 0) by a process that crashed mid-interval, crediting it
// maxAgeSeconds of duration rather than leaving it at zero forever.
// Grounded on the teacher's Store.CloseOrphanedSessions
// (internal/storage/sessions.go), generalized from the session/
// end_time model to the flatter duration_secs-only window_events schema.
// Returns the number of rows closed.
func (s *Store) CloseOrphanedFocus(maxAgeSeconds int64) (int64, error) {
	cutoff := time.Now().UTC().Add(-time.Duration(maxAgeSeconds) * time.Second)
	result, err := s.db.Exec(`
		UPDATE window_events
		SET duration_secs = ?
		WHERE duration_secs = 0 AND timestamp < ?`,
		float64(maxAgeSeconds), cutoff,
	)
	if err != nil {
		return 0, tailerr.Wrap(tailerr.KindStorage, "close orphaned focus intervals", err)
	}
	return result.RowsAffected()
}

// GetTodayAppUsage sums non-AFK duration for appName since local midnight.
func (s *Store) GetTodayAppUsage(appName string) (float64, error) {
	midnight := time.Now().Local()
	midnight = time.Date(midnight.Year(), midnight.Month(), midnight.Day(), 0, 0, 0, 0, midnight.Location())

	var total sql.NullFloat64
	err := s.db.QueryRow(`
		SELECT SUM(duration_secs) FROM window_events
		WHERE app_name = ? AND is_afk = 0 AND timestamp >= ?`,
		appName, midnight.UTC(),
	).Scan(&total)
	if err != nil {
		return 0, tailerr.Wrap(tailerr.KindStorage, "query today app usage", err)
	}
	return total.Float64, nil
}
