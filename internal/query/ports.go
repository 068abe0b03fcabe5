// Package query implements the use-case layer (C7): it composes the
// aggregation engine (C3) over rows read from storage (C4) behind a narrow
// port, producing the view DTOs the bridge serves to presentation.
package query

import (
	"time"

	"tail/internal/storage"
)

// StorePort is the slice of the storage engine the query layer needs.
// Narrowed the way nixlim-cc-top's internal/tui/model.go narrows its
// StatsProvider/BurnRateProvider ports, so Service can be tested against a
// fake instead of a real SQLite-backed Store.
type StorePort interface {
	GetWindowEvents(start, end time.Time) ([]storage.WindowEventRow, error)
}
