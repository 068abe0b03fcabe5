package storage

import (
	"testing"
	"time"
)

func TestAFKEvents_InsertAndClose(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	start := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	id, err := store.InsertAFKEvent(start)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	end := start.Add(5 * time.Minute)
	if err := store.UpdateAFKEventEnd(id, end, 300); err != nil {
		t.Fatalf("close: %v", err)
	}

	events, err := store.GetAFKEvents(start.Add(-time.Hour), start.Add(time.Hour))
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 || !events[0].HasEnd {
		t.Fatalf("expected one closed event, got %+v", events)
	}
}

func TestAFKEvents_OngoingIncludedInRange(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	start := time.Now().Add(-time.Minute)
	if _, err := store.InsertAFKEvent(start); err != nil {
		t.Fatalf("insert: %v", err)
	}

	events, err := store.GetAFKEvents(start.Add(-time.Hour), start.Add(time.Hour))
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 || events[0].HasEnd {
		t.Fatalf("expected one ongoing (no end) event, got %+v", events)
	}
}

func TestCloseOrphanedAFKEvents(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	start := time.Now().Add(-time.Hour)
	if _, err := store.InsertAFKEvent(start); err != nil {
		t.Fatalf("insert: %v", err)
	}

	recovery := time.Now()
	if err := store.CloseOrphanedAFKEvents(recovery); err != nil {
		t.Fatalf("close orphaned: %v", err)
	}

	events, err := store.GetAFKEvents(start.Add(-time.Hour), recovery.Add(time.Hour))
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 || !events[0].HasEnd {
		t.Fatalf("expected orphaned event to be closed, got %+v", events)
	}
}
