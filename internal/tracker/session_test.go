package tracker

import (
	"testing"
	"time"

	"tail/internal/compositor"
)

type fakeRepo struct {
	nextID    int64
	inserted  []string
	durations map[int64]float64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{durations: map[int64]float64{}}
}

func (f *fakeRepo) InsertWindowEvent(ts time.Time, appName, windowTitle, workspace string, durationSecs float64, isAFK bool) (int64, error) {
	f.nextID++
	f.inserted = append(f.inserted, appName)
	f.durations[f.nextID] = durationSecs
	return f.nextID, nil
}

func (f *fakeRepo) UpdateWindowEventDuration(id int64, durationSecs float64) error {
	f.durations[id] = durationSecs
	return nil
}

func TestSessionTracker_ActiveWindowOpensAndClosesInterval(t *testing.T) {
	repo := newFakeRepo()
	tr := NewSessionTracker(repo, NewAFKDetector(time.Hour))

	if err := tr.HandleEvent(compositor.Event{Kind: compositor.EventActiveWindow, Class: "firefox", Title: "Mozilla"}); err != nil {
		t.Fatalf("first active window: %v", err)
	}
	if len(repo.inserted) != 1 || repo.inserted[0] != "firefox" {
		t.Fatalf("expected one inserted window for firefox, got %v", repo.inserted)
	}

	time.Sleep(5 * time.Millisecond)
	if err := tr.HandleEvent(compositor.Event{Kind: compositor.EventActiveWindow, Class: "vscode", Title: "main.go"}); err != nil {
		t.Fatalf("second active window: %v", err)
	}
	if len(repo.inserted) != 2 || repo.inserted[1] != "vscode" {
		t.Fatalf("expected second insert for vscode, got %v", repo.inserted)
	}
	if repo.durations[1] <= 0 {
		t.Error("expected prior interval's duration to be closed out with a positive value")
	}
}

func TestSessionTracker_WindowTitleDoesNotWrite(t *testing.T) {
	repo := newFakeRepo()
	tr := NewSessionTracker(repo, NewAFKDetector(time.Hour))
	_ = tr.HandleEvent(compositor.Event{Kind: compositor.EventActiveWindow, Class: "firefox", Title: "old"})

	if err := tr.HandleEvent(compositor.Event{Kind: compositor.EventWindowTitle, Title: "new title"}); err != nil {
		t.Fatalf("window title event: %v", err)
	}
	if tr.current.title != "new title" {
		t.Errorf("expected in-memory title updated, got %q", tr.current.title)
	}
	if len(repo.inserted) != 1 {
		t.Errorf("expected no new storage write from a title-only event, got %d inserts", len(repo.inserted))
	}
}

func TestSessionTracker_WorkspaceAbsorbedByNextActiveWindow(t *testing.T) {
	repo := newFakeRepo()
	tr := NewSessionTracker(repo, NewAFKDetector(time.Hour))

	_ = tr.HandleEvent(compositor.Event{Kind: compositor.EventWorkspace, Workspace: "3"})
	_ = tr.HandleEvent(compositor.Event{Kind: compositor.EventActiveWindow, Class: "firefox", Title: "t"})

	if tr.current.workspace != "3" {
		t.Errorf("expected workspace 3 absorbed into new window, got %q", tr.current.workspace)
	}
}

func TestSessionTracker_FlushClosesCurrentWindow(t *testing.T) {
	repo := newFakeRepo()
	tr := NewSessionTracker(repo, NewAFKDetector(time.Hour))
	_ = tr.HandleEvent(compositor.Event{Kind: compositor.EventActiveWindow, Class: "firefox", Title: "t"})

	if err := tr.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if tr.current != nil {
		t.Error("expected current window cleared after flush")
	}
	if tr.CurrentAppName() != "" {
		t.Error("expected CurrentAppName empty after flush")
	}
}

func TestSessionTracker_TickUpdatesDurationWithoutClosing(t *testing.T) {
	repo := newFakeRepo()
	tr := NewSessionTracker(repo, NewAFKDetector(time.Hour))
	_ = tr.HandleEvent(compositor.Event{Kind: compositor.EventActiveWindow, Class: "firefox", Title: "t"})

	time.Sleep(5 * time.Millisecond)
	if err := tr.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if tr.current == nil {
		t.Fatal("expected current window to remain open after a heartbeat tick")
	}
	if repo.durations[1] <= 0 {
		t.Error("expected tick to persist a positive elapsed duration")
	}
}
