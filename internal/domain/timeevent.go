package domain

import "time"

// TimeEvent is an immutable closed focus interval (or, for the single
// currently-open interval tracked by the session reconstructor, one whose
// Duration is still being extended in place by the caller).
type TimeEvent struct {
	Timestamp   time.Time
	AppName     AppName
	WindowTitle string
	Workspace   string
	Duration    time.Duration
	IsAFK       bool
}

// NewTimeEvent builds a TimeEvent for app with the given duration in
// seconds. Fails with ErrInvalidDuration when secs < 0 and with
// ErrEmptyAppName when name is blank after trimming.
func NewTimeEvent(ts time.Time, name string, secs float64) (TimeEvent, error) {
	if secs < 0 {
		return TimeEvent{}, ErrInvalidDuration
	}
	app, err := NewAppName(name)
	if err != nil {
		return TimeEvent{}, err
	}
	return TimeEvent{
		Timestamp: ts,
		AppName:   app,
		Duration:  durationFromSeconds(secs),
	}, nil
}

// AFKEvent builds a TimeEvent representing an away-from-keyboard interval
// using the AFK sentinel app name; it is exempt from the non-empty name rule.
func AFKEvent(start time.Time, secs float64) TimeEvent {
	return TimeEvent{
		Timestamp: start,
		AppName:   AFKAppName(),
		Duration:  durationFromSeconds(secs),
		IsAFK:     true,
	}
}

func durationFromSeconds(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}

// Seconds returns the duration as a float number of seconds.
func (e TimeEvent) Seconds() float64 {
	return e.Duration.Seconds()
}

// WithWindowTitle returns a copy of e with WindowTitle set.
func (e TimeEvent) WithWindowTitle(title string) TimeEvent {
	e.WindowTitle = title
	return e
}

// WithWorkspace returns a copy of e with Workspace set.
func (e TimeEvent) WithWorkspace(workspace string) TimeEvent {
	e.Workspace = workspace
	return e
}

// Hour returns the local-time hour of day, 0-23.
func (e TimeEvent) Hour() int { return e.Timestamp.Local().Hour() }

// Minute returns the local-time minute of hour, 0-59.
func (e TimeEvent) Minute() int { return e.Timestamp.Local().Minute() }

// Weekday returns the local-time weekday index, Monday=0..Sunday=6.
func (e TimeEvent) Weekday() int { return mondayIndex(e.Timestamp.Local().Weekday()) }

// Month returns the local-time month, 1-12.
func (e TimeEvent) Month() int { return int(e.Timestamp.Local().Month()) }

// Day returns the local-time day of month, 1-31.
func (e TimeEvent) Day() int { return e.Timestamp.Local().Day() }

// Year returns the local-time year.
func (e TimeEvent) Year() int { return e.Timestamp.Local().Year() }

// WeekOfMonth returns the shared week-of-month index for this event's
// local timestamp (see WeekOfMonth in this package for the rule).
func (e TimeEvent) WeekOfMonth() int {
	local := e.Timestamp.Local()
	return WeekOfMonth(local.Year(), local.Month(), local.Day())
}

func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
