// Package navigation implements the hierarchical time-cursor (C2): a
// single owned struct with drill-down/drill-up transitions that derives
// the current query range and granularity, grounded on the teacher's
// ConfigService pattern of a small struct holding current view state.
package navigation

import (
	"time"

	"tail/internal/aggregation"
	"tail/internal/domain"
	"tail/internal/tailerr"
)

// Level identifies which rung of the hierarchy the cursor currently sits at.
type Level int

const (
	LevelYear Level = iota
	LevelMonth
	LevelWeek
	LevelDay
	LevelHour
)

func (l Level) String() string {
	switch l {
	case LevelYear:
		return "year"
	case LevelMonth:
		return "month"
	case LevelWeek:
		return "week"
	case LevelDay:
		return "day"
	case LevelHour:
		return "hour"
	default:
		return "unknown"
	}
}

// Selector names what drill_down is being asked to descend into.
type Selector struct {
	Level Level
	Value int // month 1-12, week 1-6, day 1-31; ignored for Hour
}

// Path is the hierarchical time-cursor. Exactly one Level is active at a
// time; the year/month/week/day fields hold only as much context as the
// current level needs, but SwitchLevel preserves what it can when jumping.
type Path struct {
	level Level
	year  int
	month int // 1-12, valid from LevelMonth down
	week  int // 1-6, valid from LevelWeek down
	day   int // 1-31, valid from LevelDay down
}

// New returns a cursor at Year for the current local year.
func New() *Path {
	return &Path{level: LevelYear, year: time.Now().Local().Year()}
}

// Level returns the current level.
func (p *Path) Level() Level { return p.level }

var (
	ErrAlreadyAtTop      = tailerr.New(tailerr.KindNavigation, "already at top")
	ErrAlreadyAtBottom   = tailerr.New(tailerr.KindNavigation, "already at bottom")
	ErrInvalidTransition = tailerr.New(tailerr.KindNavigation, "invalid transition")
	ErrInvalidSelector   = tailerr.New(tailerr.KindNavigation, "selector out of range")
)

// DrillDown descends one level using sel, validating sel targets the level
// immediately below the current one and that its Value is in range.
func (p *Path) DrillDown(sel Selector) error {
	switch p.level {
	case LevelYear:
		if sel.Level != LevelMonth {
			return ErrInvalidTransition
		}
		if sel.Value < 1 || sel.Value > 12 {
			return ErrInvalidSelector
		}
		p.month = sel.Value
		p.level = LevelMonth
	case LevelMonth:
		if sel.Level != LevelWeek {
			return ErrInvalidTransition
		}
		if sel.Value < 1 || sel.Value > 6 {
			return ErrInvalidSelector
		}
		p.week = sel.Value
		p.level = LevelWeek
	case LevelWeek:
		if sel.Level != LevelDay {
			return ErrInvalidTransition
		}
		if sel.Value < 1 || sel.Value > 31 {
			return ErrInvalidSelector
		}
		p.day = sel.Value
		p.level = LevelDay
	case LevelDay:
		if sel.Level != LevelHour {
			return ErrInvalidTransition
		}
		p.level = LevelHour
	case LevelHour:
		return ErrAlreadyAtBottom
	default:
		return ErrInvalidTransition
	}
	return nil
}

// DrillUp ascends one level and returns the level just left (not entered),
// so the presentation layer can restore the prior selection.
func (p *Path) DrillUp() (Level, error) {
	switch p.level {
	case LevelYear:
		return 0, ErrAlreadyAtTop
	case LevelMonth:
		left := p.level
		p.level = LevelYear
		return left, nil
	case LevelWeek:
		left := p.level
		p.level = LevelMonth
		return left, nil
	case LevelDay:
		left := p.level
		p.level = LevelWeek
		return left, nil
	case LevelHour:
		left := p.level
		p.level = LevelDay
		return left, nil
	default:
		return 0, ErrInvalidTransition
	}
}

// SwitchLevel jumps directly to level L, preserving as much context as
// possible from the current state; fields the new level needs but the
// cursor hasn't set yet default to the current local date.
func (p *Path) SwitchLevel(level Level) {
	now := time.Now().Local()
	if p.month == 0 {
		p.month = int(now.Month())
	}
	if p.week == 0 {
		p.week = domain.WeekOfMonth(p.year, time.Month(p.month), now.Day())
	}
	if p.day == 0 {
		p.day = now.Day()
	}
	p.level = level
}

// GoToToday jumps to Hour level at today's local date.
func (p *Path) GoToToday() {
	now := time.Now().Local()
	p.year, p.month, p.day = now.Year(), int(now.Month()), now.Day()
	p.week = domain.WeekOfMonth(p.year, now.Month(), p.day)
	p.level = LevelHour
}

// GoToYesterday jumps to Day level at yesterday's local date.
func (p *Path) GoToYesterday() {
	y := time.Now().Local().AddDate(0, 0, -1)
	p.year, p.month, p.day = y.Year(), int(y.Month()), y.Day()
	p.week = domain.WeekOfMonth(p.year, y.Month(), p.day)
	p.level = LevelDay
}

// GoToThisWeek jumps to Week level at the current local week.
func (p *Path) GoToThisWeek() {
	now := time.Now().Local()
	p.year, p.month = now.Year(), int(now.Month())
	p.week = domain.WeekOfMonth(p.year, now.Month(), now.Day())
	p.level = LevelWeek
}

// GoToThisMonth jumps to Month level at the current local month.
func (p *Path) GoToThisMonth() {
	now := time.Now().Local()
	p.year, p.month = now.Year(), int(now.Month())
	p.level = LevelMonth
}

// CurrentRange derives the query time range for the current state.
func (p *Path) CurrentRange() domain.TimeRange {
	switch p.level {
	case LevelYear:
		return domain.YearRange(p.year)
	case LevelMonth:
		return domain.MonthRange(p.year, p.month)
	case LevelWeek:
		return domain.WeekInMonthRange(p.year, p.month, p.week)
	case LevelDay:
		// Day view still plots the 7 days of its containing week.
		return domain.WeekInMonthRange(p.year, p.month, p.weekOrDefault())
	case LevelHour:
		return domain.DayRange(p.year, p.month, p.dayOrDefault())
	default:
		return domain.YearRange(p.year)
	}
}

func (p *Path) weekOrDefault() int {
	if p.week != 0 {
		return p.week
	}
	now := time.Now().Local()
	return domain.WeekOfMonth(p.year, time.Month(p.month), now.Day())
}

func (p *Path) dayOrDefault() int {
	if p.day != 0 {
		return p.day
	}
	return time.Now().Local().Day()
}

// CurrentGranularity derives the aggregation granularity for the current state.
func (p *Path) CurrentGranularity() aggregation.Granularity {
	switch p.level {
	case LevelYear, LevelMonth:
		return aggregation.GranularityMonth
	case LevelWeek, LevelDay:
		return aggregation.GranularityDay
	case LevelHour:
		return aggregation.GranularityHour
	default:
		return aggregation.GranularityMonth
	}
}
