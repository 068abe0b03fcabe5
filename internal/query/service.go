package query

import (
	"sort"

	"tail/internal/aggregation"
	"tail/internal/domain"
	"tail/internal/navigation"
	"tail/internal/tailerr"
)

// Service composes aggregation (C3) over storage (C4) behind the narrow
// port presentation actually needs. Grounded on the teacher's
// internal/service/timeline.go TimelineService — same shape (a thin struct
// wrapping the store, exposing query methods that return view structs) —
// generalized from session/screenshot views to the spec's Dashboard/Stats/
// Trend views.
type Service struct {
	store StorePort
}

// NewService builds a query service reading through store.
func NewService(store StorePort) *Service {
	return &Service{store: store}
}

// AppUsage is a single row of an app breakdown: a name, its total, its
// share of the period's grand total, and a pre-formatted short label.
type AppUsage struct {
	AppName        string
	Seconds        float64
	PercentOfTotal float64
	DurationLabel  string
}

// DashboardView is the landing view: this week's totals at Hour granularity.
type DashboardView struct {
	TimeRangeLabel     string
	TotalDurationLabel string
	TotalSeconds       float64
	TopApps            []AppUsage
	HourlyBreakdown    aggregation.AggregationResult
}

// GetDashboard uses the this-week range and Hour granularity, per
// spec.md §4.7.
func (s *Service) GetDashboard() (DashboardView, error) {
	rng := domain.ThisWeek()
	events, err := s.loadEvents(rng)
	if err != nil {
		return DashboardView{}, err
	}

	result := aggregation.Aggregate(events, aggregation.GranularityHour, &rng)
	return DashboardView{
		TimeRangeLabel:     "This Week",
		TotalDurationLabel: aggregation.FormatDuration(result.Total),
		TotalSeconds:       result.Total,
		TopApps:            appBreakdown(result, 20),
		HourlyBreakdown:    result,
	}, nil
}

// StatsView reports a navigation-scoped period breakdown.
type StatsView struct {
	Breadcrumb      string
	PeriodBreakdown aggregation.AggregationResult
	AppBreakdown    []AppUsage
	TimeRangeLabel  string
}

// GetStats uses nav's current range and granularity, per spec.md §4.7.
func (s *Service) GetStats(nav *navigation.Path) (StatsView, error) {
	rng := nav.CurrentRange()
	events, err := s.loadEvents(rng)
	if err != nil {
		return StatsView{}, err
	}

	result := aggregation.Aggregate(events, nav.CurrentGranularity(), &rng)
	return StatsView{
		Breadcrumb:      nav.Level().String(),
		PeriodBreakdown: result,
		AppBreakdown:    appBreakdown(result, 20),
		TimeRangeLabel:  nav.Level().String(),
	}, nil
}

// TrendView reports this week vs previous week at Day granularity.
type TrendView struct {
	Direction     aggregation.TrendDirection
	ChangePercent float64
	TopIncreasing []aggregation.AppDelta
	TopDecreasing []aggregation.AppDelta
}

// GetTrend compares this week against the previous week at Day
// granularity, per spec.md §4.7.
func (s *Service) GetTrend() (TrendView, error) {
	thisWeek := domain.ThisWeek()
	prevWeek, err := domain.NewTimeRange(thisWeek.Start.AddDate(0, 0, -7), thisWeek.End.AddDate(0, 0, -7))
	if err != nil {
		return TrendView{}, tailerr.Wrap(tailerr.KindInternal, "derive previous week range", err)
	}

	curEvents, err := s.loadEvents(thisWeek)
	if err != nil {
		return TrendView{}, err
	}
	prevEvents, err := s.loadEvents(prevWeek)
	if err != nil {
		return TrendView{}, err
	}

	current := aggregation.Aggregate(curEvents, aggregation.GranularityDay, &thisWeek)
	previous := aggregation.Aggregate(prevEvents, aggregation.GranularityDay, &prevWeek)
	trend := aggregation.CalculateTrend(current, previous)

	return TrendView{
		Direction:     trend.Direction,
		ChangePercent: trend.ChangePercent,
		TopIncreasing: trend.TopIncreasing,
		TopDecreasing: trend.TopDecreasing,
	}, nil
}

func (s *Service) loadEvents(rng domain.TimeRange) ([]domain.TimeEvent, error) {
	rows, err := s.store.GetWindowEvents(rng.Start, rng.End)
	if err != nil {
		return nil, tailerr.Wrap(tailerr.KindStorage, "load window events", err)
	}

	events := make([]domain.TimeEvent, 0, len(rows))
	for _, row := range rows {
		e, err := domain.NewTimeEvent(row.Timestamp, row.AppName, row.DurationSecs)
		if err != nil {
			continue // malformed persisted row; skip rather than fail the whole query
		}
		e = e.WithWindowTitle(row.WindowTitle).WithWorkspace(row.Workspace)
		e.IsAFK = row.IsAFK
		events = append(events, e)
	}
	return events, nil
}

// appBreakdown aggregates once, computes percentages of the grand total (0
// when total is 0), sorts descending, truncates to limit, and formats each
// row's duration with the short style — per spec.md §4.7.
func appBreakdown(result aggregation.AggregationResult, limit int) []AppUsage {
	totals := result.ByApp()
	rows := make([]AppUsage, 0, len(totals))
	for _, t := range totals {
		pct := 0.0
		if result.Total > 0 {
			pct = t.Seconds / result.Total * 100
		}
		rows = append(rows, AppUsage{
			AppName:        t.AppName,
			Seconds:        t.Seconds,
			PercentOfTotal: pct,
			DurationLabel:  aggregation.FormatDuration(t.Seconds),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Seconds > rows[j].Seconds })
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
