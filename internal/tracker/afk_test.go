package tracker

import (
	"testing"
	"time"
)

func TestAFKDetector_TransitionsToAfkAfterTimeout(t *testing.T) {
	d := NewAFKDetector(10 * time.Millisecond)
	var afkFired bool
	d.SetCallbacks(func(time.Time) { afkFired = true }, nil)

	d.CheckState()
	if d.IsAFK() {
		t.Fatal("expected Active immediately after construction")
	}

	time.Sleep(15 * time.Millisecond)
	d.CheckState()
	if !d.IsAFK() {
		t.Fatal("expected Afk after timeout elapsed")
	}
	if !afkFired {
		t.Error("expected onAFK callback to fire")
	}
}

func TestAFKDetector_RecordActivityReturnsToActive(t *testing.T) {
	d := NewAFKDetector(5 * time.Millisecond)
	var returned bool
	d.SetCallbacks(nil, func() { returned = true })

	time.Sleep(10 * time.Millisecond)
	d.CheckState()
	if !d.IsAFK() {
		t.Fatal("expected Afk after timeout")
	}

	d.RecordActivity()
	if d.IsAFK() {
		t.Error("expected immediate return to Active on RecordActivity")
	}
	if !returned {
		t.Error("expected onReturn callback to fire")
	}
}

func TestAFKDetector_AFKSinceZeroWhenActive(t *testing.T) {
	d := NewAFKDetector(time.Hour)
	if !d.AFKSince().IsZero() {
		t.Error("expected zero AFKSince while Active")
	}
}
