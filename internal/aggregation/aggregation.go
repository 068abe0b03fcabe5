// Package aggregation implements the pure time-series reducer (C3): it
// turns a slice of domain.TimeEvent into bucketed series and trend
// comparisons. Nothing in this package touches storage or the clock other
// than reading fields already computed on TimeEvent.
package aggregation

import (
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"

	"tail/internal/domain"
)

// Granularity names the time unit a bucket row represents.
type Granularity int

const (
	GranularityMinute Granularity = iota
	GranularityHour
	GranularityDay
	GranularityWeek
	GranularityMonth
	GranularityYear
)

// Bucket is a single cell of an aggregated time-series.
type Bucket struct {
	Label   string
	Index   int
	Total   float64 // seconds
	AppMap  map[string]float64
}

// AggregationResult is an ordered set of buckets plus the grand total,
// satisfying grand_total == Σ bucket totals (invariant I2 of the core).
type AggregationResult struct {
	Granularity Granularity
	Buckets     []Bucket
	Total       float64
}

var dayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Aggregate buckets events by granularity, optionally restricted to rng.
// AFK events are always dropped. Fixed granularities (Minute/Hour/Day/Month)
// pre-create every slot so empty buckets still appear; Week/Year buckets are
// created on demand from observed keys.
func Aggregate(events []domain.TimeEvent, granularity Granularity, rng *domain.TimeRange) AggregationResult {
	buckets := map[int]*Bucket{}
	order := fixedOrder(granularity)
	for _, idx := range order {
		buckets[idx] = &Bucket{Label: labelFor(granularity, idx), Index: idx, AppMap: map[string]float64{}}
	}

	for _, e := range events {
		if e.IsAFK {
			continue
		}
		if rng != nil && !rng.Contains(e.Timestamp) {
			continue
		}
		idx := bucketIndex(e, granularity)
		b, ok := buckets[idx]
		if !ok {
			b = &Bucket{Label: labelFor(granularity, idx), Index: idx, AppMap: map[string]float64{}}
			buckets[idx] = b
		}
		b.AppMap[e.AppName.String()] += e.Seconds()
	}

	keys := make([]int, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	result := AggregationResult{Granularity: granularity}
	for _, k := range keys {
		b := buckets[k]
		b.Total = sumValues(b.AppMap)
		result.Buckets = append(result.Buckets, *b)
	}
	result.Total = 0
	for _, b := range result.Buckets {
		result.Total += b.Total
	}
	return result
}

func sumValues(m map[string]float64) float64 {
	total := 0.0
	for _, v := range m {
		total += v
	}
	return total
}

func fixedOrder(g Granularity) []int {
	switch g {
	case GranularityMinute:
		return lo.Range(60)
	case GranularityHour:
		return lo.Range(24)
	case GranularityDay:
		return lo.Range(7)
	case GranularityMonth:
		return lo.RangeFrom(1, 12)
	default:
		return nil // Week/Year: dynamic
	}
}

func labelFor(g Granularity, idx int) string {
	switch g {
	case GranularityDay:
		if idx >= 0 && idx < 7 {
			return dayLabels[idx]
		}
	case GranularityMonth:
		if idx >= 1 && idx <= 12 {
			return monthLabels[idx-1]
		}
	case GranularityWeek:
		return "Week"
	case GranularityYear:
		return "Year"
	}
	return ""
}

func bucketIndex(e domain.TimeEvent, g Granularity) int {
	switch g {
	case GranularityMinute:
		return e.Minute()
	case GranularityHour:
		return e.Hour()
	case GranularityDay:
		return e.Weekday()
	case GranularityMonth:
		return e.Month()
	case GranularityWeek:
		return domain.WeekOfMonth(e.Year(), time.Month(e.Month()), e.Day())
	case GranularityYear:
		return e.Year()
	default:
		return 0
	}
}

// TopApps flattens every bucket's app map, sums per app across the whole
// result, sorts descending by total seconds, and truncates to limit.
func (r AggregationResult) TopApps(limit int) []AppTotal {
	totals := r.ByApp()
	sort.Slice(totals, func(i, j int) bool { return totals[i].Seconds > totals[j].Seconds })
	if limit > 0 && len(totals) > limit {
		totals = totals[:limit]
	}
	return totals
}

// AppTotal pairs an app name with a summed duration in seconds.
type AppTotal struct {
	AppName string
	Seconds float64
}

// ByApp returns the same per-app sums as TopApps but unordered.
func (r AggregationResult) ByApp() []AppTotal {
	sums := map[string]float64{}
	for _, b := range r.Buckets {
		for app, secs := range b.AppMap {
			sums[app] += secs
		}
	}
	return lo.MapToSlice(sums, func(app string, secs float64) AppTotal {
		return AppTotal{AppName: app, Seconds: secs}
	})
}

// MaxBucketValue returns the largest single bucket total, used by the chart
// layer to normalize axes. Returns 0 for an empty result.
func (r AggregationResult) MaxBucketValue() float64 {
	max := 0.0
	for _, b := range r.Buckets {
		if b.Total > max {
			max = b.Total
		}
	}
	return max
}

// TrendDirection classifies a period-over-period change.
type TrendDirection int

const (
	TrendStable TrendDirection = iota
	TrendIncreasing
	TrendDecreasing
)

// Trend is the result of comparing two periods' aggregations.
type Trend struct {
	Direction      TrendDirection
	ChangePercent  float64
	TopIncreasing  []AppDelta
	TopDecreasing  []AppDelta
}

// AppDelta is a single app's period-over-period change.
type AppDelta struct {
	AppName       string
	PreviousSecs  float64
	CurrentSecs   float64
	ChangePercent float64
}

// CalculateTrend compares current against previous, computing an overall
// direction/percent plus the top 5 apps moving in each direction. Per-app
// deltas are computed over the union of app keys seen in either period.
func CalculateTrend(current, previous AggregationResult) Trend {
	changePercent := percentChange(current.Total, previous.Total)
	direction := TrendStable
	if changePercent > 10 {
		direction = TrendIncreasing
	} else if changePercent < -10 {
		direction = TrendDecreasing
	}

	curByApp := toMap(current.ByApp())
	prevByApp := toMap(previous.ByApp())
	keys := lo.Uniq(append(lo.Keys(curByApp), lo.Keys(prevByApp)...))

	deltas := make([]AppDelta, 0, len(keys))
	for _, app := range keys {
		cur := curByApp[app]
		prev := prevByApp[app]
		deltas = append(deltas, AppDelta{
			AppName:       app,
			PreviousSecs:  prev,
			CurrentSecs:   cur,
			ChangePercent: percentChange(cur, prev),
		})
	}

	increasing := lo.Filter(deltas, func(d AppDelta, _ int) bool { return d.ChangePercent > 0 })
	sort.Slice(increasing, func(i, j int) bool { return increasing[i].ChangePercent > increasing[j].ChangePercent })
	decreasing := lo.Filter(deltas, func(d AppDelta, _ int) bool { return d.ChangePercent < 0 })
	sort.Slice(decreasing, func(i, j int) bool { return decreasing[i].ChangePercent < decreasing[j].ChangePercent })

	return Trend{
		Direction:     direction,
		ChangePercent: changePercent,
		TopIncreasing: truncate(increasing, 5),
		TopDecreasing: truncate(decreasing, 5),
	}
}

func percentChange(cur, prev float64) float64 {
	if prev == 0 {
		return 0
	}
	return (cur - prev) / prev * 100
}

func toMap(totals []AppTotal) map[string]float64 {
	m := make(map[string]float64, len(totals))
	for _, t := range totals {
		m[t.AppName] = t.Seconds
	}
	return m
}

func truncate(d []AppDelta, n int) []AppDelta {
	if len(d) > n {
		return d[:n]
	}
	return d
}

// FormatDuration renders seconds in the short style used throughout the
// presentation layer: "1h 2m", "5m 10s", "30s".
func FormatDuration(seconds float64) string {
	total := int(seconds)
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
