package aggregation

import (
	"testing"
	"time"

	"tail/internal/domain"
)

func mustEvent(t *testing.T, ts time.Time, app string, secs float64) domain.TimeEvent {
	t.Helper()
	e, err := domain.NewTimeEvent(ts, app, secs)
	if err != nil {
		t.Fatalf("unexpected error building event: %v", err)
	}
	return e
}

func TestAggregate_MassConservation(t *testing.T) {
	base := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local)
	events := []domain.TimeEvent{
		mustEvent(t, base, "firefox", 100),
		mustEvent(t, base.Add(time.Hour), "vscode", 200),
		mustEvent(t, base.Add(2*time.Hour), "firefox", 50),
		domain.AFKEvent(base, 9999), // must be excluded entirely
	}

	result := Aggregate(events, GranularityHour, nil)

	wantTotal := 100.0 + 200.0 + 50.0
	if result.Total != wantTotal {
		t.Errorf("grand total = %v, want %v", result.Total, wantTotal)
	}

	var sum float64
	for _, b := range result.Buckets {
		var bucketSum float64
		for _, v := range b.AppMap {
			bucketSum += v
		}
		if bucketSum != b.Total {
			t.Errorf("bucket %d: total=%v, sum(app_map)=%v", b.Index, b.Total, bucketSum)
		}
		sum += b.Total
	}
	if sum != wantTotal {
		t.Errorf("sum of bucket totals = %v, want %v", sum, wantTotal)
	}
}

func TestAggregate_HourHasFixed24Buckets(t *testing.T) {
	result := Aggregate(nil, GranularityHour, nil)
	if len(result.Buckets) != 24 {
		t.Fatalf("got %d hour buckets, want 24", len(result.Buckets))
	}
	for i, b := range result.Buckets {
		if b.Index != i {
			t.Errorf("bucket %d has index %d", i, b.Index)
		}
	}
}

func TestAggregate_RangeFilter(t *testing.T) {
	in := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local)
	out := time.Date(2024, time.March, 20, 10, 0, 0, 0, time.Local)
	events := []domain.TimeEvent{
		mustEvent(t, in, "firefox", 10),
		mustEvent(t, out, "firefox", 20),
	}
	rng := domain.DayRange(2024, 3, 15)
	result := Aggregate(events, GranularityHour, &rng)
	if result.Total != 10 {
		t.Errorf("expected only in-range event counted, got total=%v", result.Total)
	}
}

func TestTopApps_SortedDescendingAndTruncated(t *testing.T) {
	base := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local)
	events := []domain.TimeEvent{
		mustEvent(t, base, "a", 10),
		mustEvent(t, base, "b", 30),
		mustEvent(t, base, "c", 20),
	}
	result := Aggregate(events, GranularityHour, nil)
	top := result.TopApps(2)
	if len(top) != 2 {
		t.Fatalf("got %d entries, want 2", len(top))
	}
	if top[0].AppName != "b" || top[1].AppName != "c" {
		t.Errorf("got order %+v, want b then c", top)
	}
}

func TestCalculateTrend_Directions(t *testing.T) {
	base := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local)
	up := Aggregate([]domain.TimeEvent{mustEvent(t, base, "a", 200)}, GranularityHour, nil)
	down := Aggregate([]domain.TimeEvent{mustEvent(t, base, "a", 100)}, GranularityHour, nil)

	trend := CalculateTrend(up, down)
	if trend.Direction != TrendIncreasing {
		t.Errorf("got direction %v, want Increasing", trend.Direction)
	}
	if trend.ChangePercent != 100 {
		t.Errorf("got change %v, want 100", trend.ChangePercent)
	}
}

func TestCalculateTrend_ZeroPreviousNoDivideByZero(t *testing.T) {
	base := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local)
	current := Aggregate([]domain.TimeEvent{mustEvent(t, base, "a", 50)}, GranularityHour, nil)
	previous := Aggregate(nil, GranularityHour, nil)

	trend := CalculateTrend(current, previous)
	if trend.ChangePercent != 0 {
		t.Errorf("got change %v, want 0 when previous total is 0", trend.ChangePercent)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[float64]string{
		30:   "30s",
		310:  "5m 10s",
		3720: "1h 2m",
	}
	for secs, want := range cases {
		if got := FormatDuration(secs); got != want {
			t.Errorf("FormatDuration(%v) = %q, want %q", secs, got, want)
		}
	}
}
