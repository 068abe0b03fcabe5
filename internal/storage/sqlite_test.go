package storage

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

// newTestStore creates a temporary store for testing.
func newTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	dir, err := os.MkdirTemp("", "tail-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(dir, "test.db")
	store, err := NewStore(dbPath)
	if err != nil {
		os.RemoveAll(dir)
		t.Fatalf("failed to create store: %v", err)
	}

	cleanup := func() {
		store.Close()
		os.RemoveAll(dir)
	}

	return store, cleanup
}

func TestNewStore(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	if store == nil {
		t.Fatal("expected non-nil store")
	}
	if store.DB() == nil {
		t.Fatal("expected non-nil DB connection")
	}
}

func TestStorePath(t *testing.T) {
	dir, err := os.MkdirTemp("", "tail-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	dbPath := filepath.Join(dir, "test.db")
	store, err := NewStore(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	if store.Path() != dbPath {
		t.Errorf("got path %s, want %s", store.Path(), dbPath)
	}
}

func TestStoreClose(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	if err := store.Close(); err != nil {
		t.Errorf("unexpected error closing store: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("unexpected error on second close: %v", err)
	}
}

func TestNewStoreCreatesDirectory(t *testing.T) {
	dir, err := os.MkdirTemp("", "tail-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	nestedPath := filepath.Join(dir, "nested", "subdir", "test.db")
	store, err := NewStore(nestedPath)
	if err != nil {
		t.Fatalf("failed to create store with nested path: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Dir(nestedPath)); os.IsNotExist(err) {
		t.Error("expected nested directory to be created")
	}
}

func TestTransaction(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	var goalID int64
	err := store.Transaction(func(tx *sql.Tx) error {
		result, err := tx.Exec(`INSERT INTO daily_goals (app_name, max_minutes, notify_enabled) VALUES (?, ?, ?)`, "firefox", 60, true)
		if err != nil {
			return err
		}
		goalID, err = result.LastInsertId()
		return err
	})
	if err != nil {
		t.Fatalf("transaction failed: %v", err)
	}

	goals, err := store.GetDailyGoals()
	if err != nil {
		t.Fatalf("failed to get goals: %v", err)
	}
	if len(goals) != 1 || goals[0].ID != goalID {
		t.Fatalf("expected the committed goal to be visible, got %+v", goals)
	}
}

func TestTransactionRollback(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	if err := store.UpsertDailyGoal("firefox", 60, true); err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}

	err := store.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM daily_goals WHERE app_name = ?`, "firefox"); err != nil {
			return err
		}
		return &testError{msg: "intentional error"}
	})
	if err == nil {
		t.Fatal("expected transaction to fail")
	}

	goals, err := store.GetDailyGoals()
	if err != nil {
		t.Fatalf("failed to get goals: %v", err)
	}
	if len(goals) != 1 {
		t.Fatalf("expected goal to survive rollback, got %+v", goals)
	}
}

func TestOffload_PropagatesError(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	want := &testError{msg: "boom"}
	err := store.Offload(context.Background(), func() error { return want })
	if err != want {
		t.Errorf("got err=%v, want %v", err, want)
	}
}

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}
