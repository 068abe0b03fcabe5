package tracker

import "time"

// AFKDetector is the two-state activity→idle→activity machine (C6). It is
// advisory: callers feed it activity signals and read its state, but it
// never itself writes AFK rows — that belongs to an external collaborator
// that observes input devices. Grounded on the teacher's
// internal/tracker/afk.go state shape, stripped of its platform.Platform
// polling dependency per spec.md §4.6 ("specified here only as a consumer
// of the state enum").
type AFKDetector struct {
	timeout      time.Duration
	isAFK        bool
	lastActivity time.Time
	afkSince     time.Time
	onAFK        func(since time.Time)
	onReturn     func()
}

// NewAFKDetector creates a detector that transitions to Afk after timeout
// has elapsed since the last recorded activity.
func NewAFKDetector(timeout time.Duration) *AFKDetector {
	return &AFKDetector{timeout: timeout, lastActivity: time.Now()}
}

// SetCallbacks registers state-transition hooks. onAFK receives the instant
// activity last occurred (the point AFK effectively began).
func (d *AFKDetector) SetCallbacks(onAFK func(since time.Time), onReturn func()) {
	d.onAFK = onAFK
	d.onReturn = onReturn
}

// RecordActivity sets last_activity to now; if currently Afk, transitions
// immediately to Active.
func (d *AFKDetector) RecordActivity() {
	d.lastActivity = time.Now()
	if d.isAFK {
		d.isAFK = false
		d.afkSince = time.Time{}
		if d.onReturn != nil {
			d.onReturn()
		}
	}
}

// CheckState re-evaluates elapsed idle time against the timeout and fires
// the matching transition, if any.
func (d *AFKDetector) CheckState() {
	elapsed := time.Since(d.lastActivity)
	if !d.isAFK && elapsed >= d.timeout {
		d.isAFK = true
		d.afkSince = d.lastActivity
		if d.onAFK != nil {
			d.onAFK(d.afkSince)
		}
		return
	}
	if d.isAFK && elapsed < d.timeout {
		d.isAFK = false
		d.afkSince = time.Time{}
		if d.onReturn != nil {
			d.onReturn()
		}
	}
}

// IsAFK reports whether the current state is anything other than Active.
func (d *AFKDetector) IsAFK() bool { return d.isAFK }

// AFKSince returns the instant the current AFK period began, or the zero
// value when not currently AFK.
func (d *AFKDetector) AFKSince() time.Time { return d.afkSince }
