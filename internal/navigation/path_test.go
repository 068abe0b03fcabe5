package navigation

import (
	"testing"

	"tail/internal/aggregation"
)

func TestPath_InitialStateIsYear(t *testing.T) {
	p := New()
	if p.Level() != LevelYear {
		t.Fatalf("got level %v, want Year", p.Level())
	}
	if p.CurrentGranularity() != aggregation.GranularityMonth {
		t.Errorf("got granularity %v, want Month", p.CurrentGranularity())
	}
}

func TestPath_DrillDownFullDescent(t *testing.T) {
	p := New()
	if err := p.DrillDown(Selector{Level: LevelMonth, Value: 3}); err != nil {
		t.Fatalf("Year->Month: %v", err)
	}
	if err := p.DrillDown(Selector{Level: LevelWeek, Value: 2}); err != nil {
		t.Fatalf("Month->Week: %v", err)
	}
	if err := p.DrillDown(Selector{Level: LevelDay, Value: 10}); err != nil {
		t.Fatalf("Week->Day: %v", err)
	}
	if err := p.DrillDown(Selector{Level: LevelHour}); err != nil {
		t.Fatalf("Day->Hour: %v", err)
	}
	if p.Level() != LevelHour {
		t.Fatalf("got level %v, want Hour", p.Level())
	}
	if err := p.DrillDown(Selector{Level: LevelHour}); err != ErrAlreadyAtBottom {
		t.Errorf("got err=%v, want ErrAlreadyAtBottom", err)
	}
}

func TestPath_DrillDownRejectsOutOfRangeSelector(t *testing.T) {
	p := New()
	if err := p.DrillDown(Selector{Level: LevelMonth, Value: 13}); err != ErrInvalidSelector {
		t.Errorf("got err=%v, want ErrInvalidSelector", err)
	}
	if err := p.DrillDown(Selector{Level: LevelWeek, Value: 1}); err != ErrInvalidTransition {
		t.Errorf("got err=%v, want ErrInvalidTransition for wrong-level selector", err)
	}
}

func TestPath_DrillUpReturnsLevelLeftAndRejectsAtTop(t *testing.T) {
	p := New()
	if _, err := p.DrillUp(); err != ErrAlreadyAtTop {
		t.Fatalf("got err=%v, want ErrAlreadyAtTop", err)
	}
	_ = p.DrillDown(Selector{Level: LevelMonth, Value: 5})
	left, err := p.DrillUp()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if left != LevelMonth {
		t.Errorf("got left=%v, want Month", left)
	}
	if p.Level() != LevelYear {
		t.Errorf("got level %v after drill up, want Year", p.Level())
	}
}

func TestPath_RoundTripDrillDownThenUpRestoresLevel(t *testing.T) {
	p := New()
	start := p.Level()
	_ = p.DrillDown(Selector{Level: LevelMonth, Value: 6})
	_ = p.DrillDown(Selector{Level: LevelWeek, Value: 1})
	_, _ = p.DrillUp()
	_, _ = p.DrillUp()
	if p.Level() != start {
		t.Errorf("got level %v after round trip, want %v", p.Level(), start)
	}
}

func TestPath_GoToTodayJumpsToHour(t *testing.T) {
	p := New()
	p.GoToToday()
	if p.Level() != LevelHour {
		t.Errorf("got level %v, want Hour", p.Level())
	}
	r := p.CurrentRange()
	dur := r.End.Sub(r.Start)
	if dur.Hours() < 23 || dur.Hours() >= 24 {
		t.Errorf("got day range duration %v, want ~24h", dur)
	}
}

func TestPath_GoToThisWeekJumpsToWeek(t *testing.T) {
	p := New()
	p.GoToThisWeek()
	if p.Level() != LevelWeek {
		t.Errorf("got level %v, want Week", p.Level())
	}
	if p.CurrentGranularity() != aggregation.GranularityDay {
		t.Errorf("got granularity %v, want Day", p.CurrentGranularity())
	}
}

func TestPath_GranularityPerLevel(t *testing.T) {
	p := New()
	cases := []struct {
		level Level
		want  aggregation.Granularity
	}{
		{LevelYear, aggregation.GranularityMonth},
		{LevelMonth, aggregation.GranularityMonth},
		{LevelWeek, aggregation.GranularityDay},
		{LevelDay, aggregation.GranularityDay},
		{LevelHour, aggregation.GranularityHour},
	}
	for _, c := range cases {
		p.SwitchLevel(c.level)
		if got := p.CurrentGranularity(); got != c.want {
			t.Errorf("level %v: got granularity %v, want %v", c.level, got, c.want)
		}
	}
}
