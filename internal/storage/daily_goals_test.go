package storage

import "testing"

func TestDailyGoals_UpsertListDelete(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	if err := store.UpsertDailyGoal("firefox", 60, true); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := store.UpsertDailyGoal("firefox", 90, false); err != nil {
		t.Fatalf("upsert replace: %v", err)
	}

	goals, err := store.GetDailyGoals()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(goals) != 1 || goals[0].MaxMinutes != 90 || goals[0].NotifyEnabled {
		t.Fatalf("got %+v, want single updated goal", goals)
	}

	if err := store.DeleteDailyGoal("firefox"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	goals, err = store.GetDailyGoals()
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(goals) != 0 {
		t.Fatalf("expected no goals after delete, got %+v", goals)
	}
}
