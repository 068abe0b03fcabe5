package storage

const schemaVersion = 1

const schemaSQL = `
CREATE TABLE IF NOT EXISTS window_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp TIMESTAMP NOT NULL,
	app_name TEXT NOT NULL,
	window_title TEXT NOT NULL DEFAULT '',
	workspace TEXT NOT NULL DEFAULT '',
	duration_secs REAL NOT NULL DEFAULT 0,
	is_afk BOOLEAN NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_window_events_timestamp ON window_events(timestamp);
CREATE INDEX IF NOT EXISTS idx_window_events_app_name ON window_events(app_name);

CREATE TABLE IF NOT EXISTS afk_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	start_time TIMESTAMP NOT NULL,
	end_time TIMESTAMP,
	duration_secs REAL NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_afk_events_start_time ON afk_events(start_time);

CREATE TABLE IF NOT EXISTS daily_goals (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	app_name TEXT NOT NULL UNIQUE,
	max_minutes INTEGER NOT NULL,
	notify_enabled BOOLEAN NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS categories (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	icon TEXT NOT NULL DEFAULT '',
	color TEXT
);

CREATE TABLE IF NOT EXISTS app_categories (
	app_name TEXT NOT NULL,
	category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
	UNIQUE(app_name, category_id)
);
CREATE INDEX IF NOT EXISTS idx_app_categories_app_name ON app_categories(app_name);

CREATE TABLE IF NOT EXISTS app_aliases (
	app_name TEXT NOT NULL UNIQUE,
	alias TEXT NOT NULL
);
`

// migrate runs the idempotent DDL for every table and index the core needs.
// There is a single schema generation today; schemaVersion exists so a
// future additive migration has somewhere to branch from.
func (s *Store) migrate() error {
	_, err := s.db.Exec(schemaSQL)
	return err
}
