package tracker

import (
	"time"

	"tail/internal/compositor"
)

// EventRepositoryPort is the narrow slice of the storage engine the session
// reconstructor needs, so it can be driven by a fake in tests instead of a
// real SQLite store. Grounded on the teacher's WindowTracker dependency on
// *storage.Store, narrowed the way nixlim-cc-top's internal/tui/model.go
// narrows its StateProvider/EventProvider ports.
type EventRepositoryPort interface {
	InsertWindowEvent(ts time.Time, appName, windowTitle, workspace string, durationSecs float64, isAFK bool) (int64, error)
	UpdateWindowEventDuration(id int64, durationSecs float64) error
}

// activeWindow is the single currently-open focus interval.
type activeWindow struct {
	appName   string
	title     string
	workspace string
	started   time.Time
	eventID   int64
}

// SessionTracker reconstructs a continuous timeline of focus intervals (C5)
// from a compositor event stream plus an AFK state reader. Grounded on the
// teacher's internal/tracker/window.go WindowTracker, generalized from
// poll-driven window detection to compositor-event-driven reconstruction.
type SessionTracker struct {
	repo      EventRepositoryPort
	afk       *AFKDetector
	current   *activeWindow
	workspace string
}

// NewSessionTracker builds a tracker writing through repo and reading AFK
// state from afk.
func NewSessionTracker(repo EventRepositoryPort, afk *AFKDetector) *SessionTracker {
	return &SessionTracker{repo: repo, afk: afk, workspace: "unknown"}
}

// HandleEvent dispatches one parsed compositor event per the processing
// rules of spec.md §4.5. Storage errors are returned to the caller, which
// logs them and keeps the session loop running — losing one interval's
// write is preferable to killing the session loop, per SPEC_FULL.md §7.
func (s *SessionTracker) HandleEvent(ev compositor.Event) error {
	switch ev.Kind {
	case compositor.EventActiveWindow:
		return s.onActiveWindow(ev.Class, ev.Title)
	case compositor.EventWindowTitle:
		s.onWindowTitle(ev.Title)
		return nil
	case compositor.EventWorkspace:
		s.workspace = ev.Workspace
		return nil
	case compositor.EventOpenWindow, compositor.EventCloseWindow:
		// No direct action; the next ACTIVE_WINDOW absorbs any change.
		return nil
	default:
		return nil
	}
}

func (s *SessionTracker) onActiveWindow(class, title string) error {
	now := time.Now()
	if s.current != nil {
		elapsed := now.Sub(s.current.started).Seconds()
		if elapsed > 0 {
			if err := s.repo.UpdateWindowEventDuration(s.current.eventID, elapsed); err != nil {
				return err
			}
		}
	}

	ws := s.workspace
	if ws == "" {
		ws = "unknown"
	}

	id, err := s.repo.InsertWindowEvent(now, class, title, ws, 0, s.afk.IsAFK())
	if err != nil {
		return err
	}

	s.current = &activeWindow{appName: class, title: title, workspace: ws, started: now, eventID: id}
	return nil
}

// onWindowTitle mutates the in-memory title of the current window only;
// per spec.md §4.5 rule 2, this never writes to storage.
func (s *SessionTracker) onWindowTitle(title string) {
	if s.current != nil {
		s.current.title = title
	}
}

// Tick is the heartbeat handler: while a window is focused, it recomputes
// elapsed duration and persists it, bounding data loss on crash to at most
// one heartbeat interval.
func (s *SessionTracker) Tick() error {
	if s.current == nil {
		return nil
	}
	elapsed := time.Since(s.current.started).Seconds()
	return s.repo.UpdateWindowEventDuration(s.current.eventID, elapsed)
}

// Flush persists the current window's final duration on graceful shutdown
// or when AFK entry closes the interval, then clears current state.
func (s *SessionTracker) Flush() error {
	if s.current == nil {
		return nil
	}
	elapsed := time.Since(s.current.started).Seconds()
	err := s.repo.UpdateWindowEventDuration(s.current.eventID, elapsed)
	s.current = nil
	return err
}

// CurrentAppName returns the app name of the in-progress interval, or ""
// if no window is currently focused.
func (s *SessionTracker) CurrentAppName() string {
	if s.current == nil {
		return ""
	}
	return s.current.appName
}
