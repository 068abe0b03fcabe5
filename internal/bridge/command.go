// Package bridge implements the async request/response boundary (C8)
// between the interactive presentation layer and the query/storage core.
// The presentation thread calls Bridge.Poll non-blockingly once per
// repaint; a small worker pool drains Commands and replies through the
// same channel. Grounded on nixlim-cc-top's Elm-architecture split between
// a view (Model) and the async Cmd/Msg it dispatches and receives,
// generalized here into an explicit command/response catalog rather than
// bubbletea's tea.Cmd/tea.Msg types.
package bridge

import (
	"time"

	"tail/internal/navigation"
)

// Command is the presentation→worker request catalog from spec.md §4.8.
type Command interface{ isCommand() }

type RefreshDashboard struct{}
type RefreshStats struct{ Nav *navigation.Path }
type RefreshDetails struct{ Start, End time.Time }
type LoadCategoriesData struct{ Start, End time.Time }
type AddDailyGoal struct {
	AppName       string
	MaxMinutes    int
	NotifyEnabled bool
}
type DeleteDailyGoal struct{ AppName string }
type SetAppAlias struct{ AppName, Alias string }
type DeleteAppAlias struct{ AppName string }
type GetAllAliases struct{}
type AddCategory struct{ Name, Icon, Color string }
type UpdateCategory struct {
	ID                int64
	Name, Icon, Color string
}
type DeleteCategory struct{ ID int64 }
type SetAppCategories struct {
	AppName     string
	CategoryIDs []int64
}
type RemoveAppFromCategory struct {
	AppName    string
	CategoryID int64
}
type GetAppCategories struct{ AppName string }
type GetAllCategories struct{}
type GetAllAppNames struct{}
type Shutdown struct{}

func (RefreshDashboard) isCommand()      {}
func (RefreshStats) isCommand()          {}
func (RefreshDetails) isCommand()        {}
func (LoadCategoriesData) isCommand()    {}
func (AddDailyGoal) isCommand()          {}
func (DeleteDailyGoal) isCommand()       {}
func (SetAppAlias) isCommand()           {}
func (DeleteAppAlias) isCommand()        {}
func (GetAllAliases) isCommand()         {}
func (AddCategory) isCommand()           {}
func (UpdateCategory) isCommand()        {}
func (DeleteCategory) isCommand()        {}
func (SetAppCategories) isCommand()      {}
func (RemoveAppFromCategory) isCommand() {}
func (GetAppCategories) isCommand()      {}
func (GetAllCategories) isCommand()      {}
func (GetAllAppNames) isCommand()        {}
func (Shutdown) isCommand()              {}
