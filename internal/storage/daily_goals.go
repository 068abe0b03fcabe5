package storage

import (
	"tail/internal/tailerr"
)

// DailyGoalRow is a per-app usage budget.
type DailyGoalRow struct {
	ID            int64
	AppName       string
	MaxMinutes    int
	NotifyEnabled bool
}

// UpsertDailyGoal inserts or replaces the goal for an app in one statement.
func (s *Store) UpsertDailyGoal(appName string, maxMinutes int, notifyEnabled bool) error {
	_, err := s.db.Exec(`
		INSERT INTO daily_goals (app_name, max_minutes, notify_enabled)
		VALUES (?, ?, ?)
		ON CONFLICT(app_name) DO UPDATE SET
			max_minutes = excluded.max_minutes,
			notify_enabled = excluded.notify_enabled`,
		appName, maxMinutes, notifyEnabled)
	if err != nil {
		return tailerr.Wrap(tailerr.KindStorage, "upsert daily goal", err)
	}
	return nil
}

// GetDailyGoals returns every configured goal, ordered by app name.
func (s *Store) GetDailyGoals() ([]DailyGoalRow, error) {
	rows, err := s.db.Query(`SELECT id, app_name, max_minutes, notify_enabled FROM daily_goals ORDER BY app_name ASC`)
	if err != nil {
		return nil, tailerr.Wrap(tailerr.KindStorage, "query daily goals", err)
	}
	defer rows.Close()

	var goals []DailyGoalRow
	for rows.Next() {
		var g DailyGoalRow
		if err := rows.Scan(&g.ID, &g.AppName, &g.MaxMinutes, &g.NotifyEnabled); err != nil {
			return nil, tailerr.Wrap(tailerr.KindStorage, "scan daily goal", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// DeleteDailyGoal removes the goal for an app, if any.
func (s *Store) DeleteDailyGoal(appName string) error {
	result, err := s.db.Exec(`DELETE FROM daily_goals WHERE app_name = ?`, appName)
	if err != nil {
		return tailerr.Wrap(tailerr.KindStorage, "delete daily goal", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return tailerr.Wrap(tailerr.KindStorage, "read rows affected", err)
	}
	if n == 0 {
		return tailerr.NotFound("daily_goal")
	}
	return nil
}
