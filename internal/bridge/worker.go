package bridge

import (
	"tail/internal/query"
	"tail/internal/storage"
	"tail/internal/tailerr"
)

// dispatch routes cmd to the query/storage operation it names and always
// returns a Response — success or Failed, never neither, per spec.md §4.8.
// Every branch's actual work runs inside b.store.Offload so the blocking
// SQL call is bounded by the same pool internal/storage uses for its own
// offloaded tasks (spec.md §4.4) instead of blocking this worker goroutine
// directly against the database.
func (b *Bridge) dispatch(cmd Command) Response {
	switch c := cmd.(type) {
	case RefreshDashboard:
		var view query.DashboardView
		err := b.store.Offload(b.ctx, func() error {
			var e error
			view, e = b.svc.GetDashboard()
			return e
		})
		if err != nil {
			return fail(cmd, err)
		}
		return DashboardData{View: view}

	case RefreshStats:
		var view query.StatsView
		err := b.store.Offload(b.ctx, func() error {
			var e error
			view, e = b.svc.GetStats(c.Nav)
			return e
		})
		if err != nil {
			return fail(cmd, err)
		}
		return StatsData{View: view}

	case RefreshDetails:
		var rows []storage.WindowEventRow
		err := b.store.Offload(b.ctx, func() error {
			var e error
			rows, e = b.store.GetWindowEvents(c.Start, c.End)
			return e
		})
		if err != nil {
			return fail(cmd, err)
		}
		return DetailsData{Rows: rows}

	case LoadCategoriesData:
		var rows []storage.CategoryRow
		err := b.store.Offload(b.ctx, func() error {
			var e error
			rows, e = b.store.GetCategories()
			return e
		})
		if err != nil {
			return fail(cmd, err)
		}
		return CategoriesData{Categories: rows}

	case AddDailyGoal:
		err := b.store.Offload(b.ctx, func() error {
			return b.store.UpsertDailyGoal(c.AppName, c.MaxMinutes, c.NotifyEnabled)
		})
		if err != nil {
			return fail(cmd, err)
		}
		return Done{}

	case DeleteDailyGoal:
		err := b.store.Offload(b.ctx, func() error { return b.store.DeleteDailyGoal(c.AppName) })
		if err != nil {
			return fail(cmd, err)
		}
		return Done{}

	case SetAppAlias:
		err := b.store.Offload(b.ctx, func() error { return b.store.UpsertAlias(c.AppName, c.Alias) })
		if err != nil {
			return fail(cmd, err)
		}
		return Done{}

	case DeleteAppAlias:
		err := b.store.Offload(b.ctx, func() error { return b.store.DeleteAlias(c.AppName) })
		if err != nil {
			return fail(cmd, err)
		}
		return Done{}

	case GetAllAliases:
		var rows []storage.AliasRow
		err := b.store.Offload(b.ctx, func() error {
			var e error
			rows, e = b.store.GetAliases()
			return e
		})
		if err != nil {
			return fail(cmd, err)
		}
		return Aliases{Rows: rows}

	case AddCategory:
		err := b.store.Offload(b.ctx, func() error {
			_, e := b.store.CreateCategory(c.Name, c.Icon, c.Color)
			return e
		})
		if err != nil {
			return fail(cmd, err)
		}
		return Done{}

	case UpdateCategory:
		err := b.store.Offload(b.ctx, func() error {
			return b.store.UpdateCategory(c.ID, c.Name, c.Icon, c.Color)
		})
		if err != nil {
			return fail(cmd, err)
		}
		return Done{}

	case DeleteCategory:
		err := b.store.Offload(b.ctx, func() error { return b.store.DeleteCategory(c.ID) })
		if err != nil {
			return fail(cmd, err)
		}
		return Done{}

	case SetAppCategories:
		err := b.store.Offload(b.ctx, func() error {
			return b.store.SetAppCategories(c.AppName, c.CategoryIDs)
		})
		if err != nil {
			return fail(cmd, err)
		}
		return Done{}

	case RemoveAppFromCategory:
		err := b.store.Offload(b.ctx, func() error {
			return b.store.RemoveAppFromCategory(c.AppName, c.CategoryID)
		})
		if err != nil {
			return fail(cmd, err)
		}
		return Done{}

	case GetAppCategories:
		var ids []int64
		err := b.store.Offload(b.ctx, func() error {
			var e error
			ids, e = b.store.GetAppCategories(c.AppName)
			return e
		})
		if err != nil {
			return fail(cmd, err)
		}
		return AppCategories{CategoryIDs: ids}

	case GetAllCategories:
		var rows []storage.CategoryRow
		err := b.store.Offload(b.ctx, func() error {
			var e error
			rows, e = b.store.GetCategories()
			return e
		})
		if err != nil {
			return fail(cmd, err)
		}
		return Categories{Rows: rows}

	case GetAllAppNames:
		var names []string
		err := b.store.Offload(b.ctx, func() error {
			var e error
			names, e = b.store.GetAllAppNames()
			return e
		})
		if err != nil {
			return fail(cmd, err)
		}
		return AppNames{Names: names}

	case Shutdown:
		return ShutdownAck{}

	default:
		return fail(cmd, tailerr.New(tailerr.KindInternal, "unrecognized command"))
	}
}

func fail(cmd Command, err error) Response {
	return Failed{Command: cmd, Err: err}
}
