package storage

import (
	"database/sql"
	"time"

	"tail/internal/tailerr"
)

// AFKEventRow is a persisted idle interval. EndTime is zero-valued while
// the interval is ongoing (recorded as NULL in the table).
type AFKEventRow struct {
	ID           int64
	StartTime    time.Time
	EndTime      time.Time
	HasEnd       bool
	DurationSecs float64
}

// InsertAFKEvent records idle entry with a null end_time and returns the new id.
func (s *Store) InsertAFKEvent(start time.Time) (int64, error) {
	result, err := s.db.Exec(`INSERT INTO afk_events (start_time, end_time, duration_secs) VALUES (?, NULL, 0)`, start.UTC())
	if err != nil {
		return 0, tailerr.Wrap(tailerr.KindStorage, "insert afk event", err)
	}
	return result.LastInsertId()
}

// UpdateAFKEventEnd closes an AFK interval on idle exit.
func (s *Store) UpdateAFKEventEnd(id int64, end time.Time, durationSecs float64) error {
	result, err := s.db.Exec(`UPDATE afk_events SET end_time = ?, duration_secs = ? WHERE id = ?`, end.UTC(), durationSecs, id)
	if err != nil {
		return tailerr.Wrap(tailerr.KindStorage, "update afk event end", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return tailerr.Wrap(tailerr.KindStorage, "read rows affected", err)
	}
	if n == 0 {
		return tailerr.NotFound("afk_event")
	}
	return nil
}

// GetAFKEvents returns AFK intervals overlapping [start,end], including any
// still-ongoing interval (end_time IS NULL).
func (s *Store) GetAFKEvents(start, end time.Time) ([]AFKEventRow, error) {
	rows, err := s.db.Query(`
		SELECT id, start_time, end_time, duration_secs FROM afk_events
		WHERE start_time <= ? AND (end_time IS NULL OR end_time > ?)
		ORDER BY start_time ASC`, end.UTC(), start.UTC())
	if err != nil {
		return nil, tailerr.Wrap(tailerr.KindStorage, "query afk events", err)
	}
	defer rows.Close()
	return scanAFKEventRows(rows)
}

// CloseOrphanedAFKEvents closes any AFK interval left open by an unclean
// shutdown, assuming the user effectively returned at endTime.
func (s *Store) CloseOrphanedAFKEvents(end time.Time) error {
	_, err := s.db.Exec(`UPDATE afk_events SET end_time = ? WHERE end_time IS NULL`, end.UTC())
	if err != nil {
		return tailerr.Wrap(tailerr.KindStorage, "close orphaned afk events", err)
	}
	return nil
}

func scanAFKEventRows(rows *sql.Rows) ([]AFKEventRow, error) {
	var events []AFKEventRow
	for rows.Next() {
		var e AFKEventRow
		var endTime sql.NullTime
		if err := rows.Scan(&e.ID, &e.StartTime, &endTime, &e.DurationSecs); err != nil {
			return nil, tailerr.Wrap(tailerr.KindStorage, "scan afk event", err)
		}
		if endTime.Valid {
			e.EndTime = endTime.Time
			e.HasEnd = true
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
