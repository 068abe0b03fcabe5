// Package storage implements the embedded storage engine (C4): a pooled
// SQLite connection, idempotent schema migration, and a blocking-task
// offload so the interactive presentation thread never blocks on disk.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"tail/internal/tailerr"
)

// maxOpenConns bounds the connection pool; spec calls for "~10".
const maxOpenConns = 10

// Store manages the pooled SQLite connection and the blocking-task offload
// that keeps the async wrapper off the interactive thread.
type Store struct {
	db     *sql.DB
	dbPath string
	tasks  *errgroup.Group
	cron   *cron.Cron
}

// DefaultDBPath resolves the default database location: under
// $XDG_DATA_HOME/tail/tail.db, falling back to $HOME/.local/share.
func DefaultDBPath() string {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".local", "share")
	}
	return filepath.Join(base, "tail", "tail.db")
}

// NewStore opens dbPath (creating its parent directory if missing), enables
// WAL mode, a busy timeout, and foreign keys, then runs idempotent DDL.
func NewStore(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, tailerr.Wrap(tailerr.KindStorage, "create database directory", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON")
	if err != nil {
		return nil, tailerr.Wrap(tailerr.KindStorage, "open database", err)
	}
	db.SetMaxOpenConns(maxOpenConns)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, tailerr.Wrap(tailerr.KindStorage, "ping database", err)
	}

	store := &Store{db: db, dbPath: dbPath, tasks: &errgroup.Group{}}
	store.tasks.SetLimit(maxOpenConns)

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, tailerr.Wrap(tailerr.KindStorage, "run migrations", err)
	}

	return store, nil
}

// Close stops the maintenance scheduler, waits for in-flight offloaded
// tasks, and closes the pool.
func (s *Store) Close() error {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	_ = s.tasks.Wait()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// DB returns the underlying pool for advanced queries.
func (s *Store) DB() *sql.DB { return s.db }

// Path returns the database file path.
func (s *Store) Path() string { return s.dbPath }

// Transaction runs fn inside a single connection-scoped transaction,
// committing at the end or rolling back on error. Used by the logical
// batches the spec requires to be atomic (set_app_categories, batch saves).
func (s *Store) Transaction(fn func(*sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return tailerr.Wrap(tailerr.KindStorage, "begin transaction", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return tailerr.Wrap(tailerr.KindStorage, fmt.Sprintf("rollback failed: %v", rbErr), err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return tailerr.Wrap(tailerr.KindStorage, "commit transaction", err)
	}
	return nil
}

// Offload runs fn on the bounded blocking-task pool and returns its error
// once complete. A cancelled context maps to KindValidation per the spec's
// async-wrapper failure taxonomy; fn's own errors pass through unchanged.
func (s *Store) Offload(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	s.tasks.Go(func() error {
		done <- fn()
		return nil
	})
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return tailerr.Wrap(tailerr.KindValidation, "offloaded task cancelled", ctx.Err())
	}
}

// StartMaintenanceScheduler registers the periodic VACUUM/ANALYZE job and
// starts the cron runner. spec follows the standard 5-field cron grammar;
// a typical value is "0 3 * * *" (daily at 03:00).
func (s *Store) StartMaintenanceScheduler(spec string) error {
	s.cron = cron.New()
	_, err := s.cron.AddFunc(spec, func() {
		_, _ = s.Optimize()
	})
	if err != nil {
		return tailerr.Wrap(tailerr.KindStorage, "schedule maintenance job", err)
	}
	s.cron.Start()
	return nil
}

// Optimize runs VACUUM and ANALYZE, returning the byte reduction (positive
// if space was reclaimed).
func (s *Store) Optimize() (int64, error) {
	sizeBefore, err := s.getDatabaseSize()
	if err != nil {
		return 0, tailerr.Wrap(tailerr.KindStorage, "stat database before optimize", err)
	}

	if _, err := s.db.Exec("VACUUM"); err != nil {
		return 0, tailerr.Wrap(tailerr.KindStorage, "run VACUUM", err)
	}
	if _, err := s.db.Exec("ANALYZE"); err != nil {
		return 0, tailerr.Wrap(tailerr.KindStorage, "run ANALYZE", err)
	}

	sizeAfter, err := s.getDatabaseSize()
	if err != nil {
		return 0, tailerr.Wrap(tailerr.KindStorage, "stat database after optimize", err)
	}
	return sizeBefore - sizeAfter, nil
}

func (s *Store) getDatabaseSize() (int64, error) {
	info, err := os.Stat(s.dbPath)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
