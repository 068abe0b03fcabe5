package bridge

import (
	"tail/internal/query"
	"tail/internal/storage"
)

// Response is the worker→presentation reply catalog, one variant per
// Command. Every dispatched command yields exactly one Response, success
// or failure, per spec.md §4.8 ("the worker must respond to every
// command it accepts").
type Response interface{ isResponse() }

type DashboardData struct{ View query.DashboardView }
type StatsData struct{ View query.StatsView }
type DetailsData struct{ Rows []storage.WindowEventRow }
type CategoriesData struct{ Categories []storage.CategoryRow }
type Done struct{}
type Aliases struct{ Rows []storage.AliasRow }
type AppCategories struct{ CategoryIDs []int64 }
type Categories struct{ Rows []storage.CategoryRow }
type AppNames struct{ Names []string }
type ShutdownAck struct{}

// Failed carries an error for any command that could not be completed.
// It is a Response in its own right rather than an error field bolted
// onto every other variant, so presentation has one place to check.
type Failed struct {
	Command Command
	Err     error
}

func (DashboardData) isResponse()  {}
func (StatsData) isResponse()      {}
func (DetailsData) isResponse()    {}
func (CategoriesData) isResponse() {}
func (Done) isResponse()           {}
func (Aliases) isResponse()        {}
func (AppCategories) isResponse()  {}
func (Categories) isResponse()     {}
func (AppNames) isResponse()       {}
func (ShutdownAck) isResponse()    {}
func (Failed) isResponse()         {}
