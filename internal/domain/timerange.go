package domain

import "time"

// TimeRange is an inclusive closed interval [Start,End] of UTC instants.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange validates start <= end and stores both in UTC.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if end.Before(start) {
		return TimeRange{}, ErrInvalidRange
	}
	return TimeRange{Start: start.UTC(), End: end.UTC()}, nil
}

// Contains reports whether t falls within [Start,End] inclusive.
func (r TimeRange) Contains(t time.Time) bool {
	u := t.UTC()
	return !u.Before(r.Start) && !u.After(r.End)
}

// Today returns the local-day range [00:00:00, 23:59:59] converted to UTC.
func Today() TimeRange { return dayRange(time.Now()) }

// Yesterday returns yesterday's local-day range.
func Yesterday() TimeRange { return dayRange(time.Now().AddDate(0, 0, -1)) }

// DayOf returns the local-day range containing t.
func DayOf(t time.Time) TimeRange { return dayRange(t) }

func dayRange(t time.Time) TimeRange {
	local := t.Local()
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
	end := start.Add(24*time.Hour - time.Second)
	r, _ := NewTimeRange(start, end)
	return r
}

// ThisWeek returns the range from Monday 00:00:00 through Sunday 23:59:59
// of the current local week.
//
// The original Rust source's this_week() returned the *previous* week
// (start = today - weekday - 7 days). That offset is not reproduced here:
// this implementation always returns the current Monday-through-Sunday
// week (see SPEC_FULL.md §13, Open Question 1).
func ThisWeek() TimeRange { return weekRange(time.Now()) }

func weekRange(t time.Time) TimeRange {
	local := t.Local()
	monday := local.AddDate(0, 0, -mondayIndex(local.Weekday()))
	start := time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, local.Location())
	end := start.AddDate(0, 0, 7).Add(-time.Second)
	r, _ := NewTimeRange(start, end)
	return r
}

// ThisMonth returns the range spanning the current local month.
func ThisMonth() TimeRange {
	now := time.Now().Local()
	return MonthRange(now.Year(), int(now.Month()))
}

// YearRange returns Jan 1 00:00:00 through Dec 31 23:59:59 of year, local time.
func YearRange(year int) TimeRange {
	loc := time.Local
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, loc)
	r, _ := NewTimeRange(start, end)
	return r
}

// MonthRange returns the full local range of the given year/month (1-12).
func MonthRange(year, month int) TimeRange {
	loc := time.Local
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	r, _ := NewTimeRange(start, end)
	return r
}

// DayRange returns the local range for a specific year/month/day.
func DayRange(year, month, day int) TimeRange {
	loc := time.Local
	start := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	end := start.Add(24*time.Hour - time.Second)
	r, _ := NewTimeRange(start, end)
	return r
}

// WeekOfMonth returns the 1-based week-of-month index for the given local
// calendar date, using the rule:
//
//	((day-1 + first_weekday_offset) / 7) + 1
//
// where first_weekday_offset is the Monday-indexed weekday (Monday=0) of
// day 1 of that month. This is the single shared implementation; C2
// (navigation), C3 (aggregation), and C4 (storage) must all call this
// function rather than reimplementing the rule.
func WeekOfMonth(year int, month time.Month, day int) int {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	offset := mondayIndex(firstOfMonth.Weekday())
	return ((day - 1 + offset) / 7) + 1
}

// WeekInMonthRange returns the local date range for the given 1-based week
// number within year/month, clamped so it never extends past the last day
// of the month (spec.md §8: "end-of-month week ... clamped to ≤ Dec 31").
func WeekInMonthRange(year, month, week int) TimeRange {
	loc := time.Local
	firstOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	offset := mondayIndex(firstOfMonth.Weekday())

	// First day of this week-of-month: the smallest day whose WeekOfMonth == week.
	startDay := (week-1)*7 - offset + 1
	if startDay < 1 {
		startDay = 1
	}
	start := time.Date(year, time.Month(month), startDay, 0, 0, 0, 0, loc)
	monthEnd := firstOfMonth.AddDate(0, 1, 0).Add(-time.Second)

	end := start.AddDate(0, 0, 7).Add(-time.Second)
	if end.After(monthEnd) {
		end = monthEnd
	}
	r, _ := NewTimeRange(start, end)
	return r
}
