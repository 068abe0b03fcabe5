package bridge

import (
	"context"
	"time"

	"tail/internal/storage"
)

// StorePort is the slice of *storage.Store the worker dispatches
// mutating/lookup commands to. Narrowed the same way tracker.EventRepositoryPort
// and query.StorePort narrow their stores, generalized here from
// nixlim-cc-top's per-concern provider interfaces (StatsProvider,
// SettingsWriter, ...) into one port since the bridge worker is the single
// place all of storage's write surface is actually exercised.
type StorePort interface {
	// Offload runs fn on the bounded blocking-task pool, per spec.md §4.4 —
	// every operation dispatch() hands off routes through this so the
	// interactive presentation thread never blocks on disk.
	Offload(ctx context.Context, fn func() error) error

	GetWindowEvents(start, end time.Time) ([]storage.WindowEventRow, error)

	UpsertDailyGoal(appName string, maxMinutes int, notifyEnabled bool) error
	DeleteDailyGoal(appName string) error

	UpsertAlias(appName, alias string) error
	DeleteAlias(appName string) error
	GetAliases() ([]storage.AliasRow, error)

	CreateCategory(name, icon, color string) (int64, error)
	UpdateCategory(id int64, name, icon, color string) error
	DeleteCategory(id int64) error
	GetCategories() ([]storage.CategoryRow, error)
	SetAppCategories(appName string, categoryIDs []int64) error
	RemoveAppFromCategory(appName string, categoryID int64) error
	GetAppCategories(appName string) ([]int64, error)

	GetAllAppNames() ([]string, error)
}
