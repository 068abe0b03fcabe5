// Package lock implements the single-instance PID lock file that keeps
// two taild daemons from writing to the same database concurrently.
package lock

import (
	"os"
	"path/filepath"
	"strconv"
	"syscall"

	"tail/internal/tailerr"
)

const lockFileName = "tail.lock"

// InstanceLock manages a PID-based lock file to prevent multiple instances
// of taild writing to the same data directory.
type InstanceLock struct {
	path string
}

// New creates a new InstanceLock rooted at dataDir — the same directory
// config.Config.DataDir points the SQLite file at, so a stale lock and a
// stale database always live side by side.
func New(dataDir string) *InstanceLock {
	return &InstanceLock{
		path: filepath.Join(dataDir, lockFileName),
	}
}

// Acquire attempts to take the instance lock. recoveredStale reports
// whether a lock file from a dead process had to be cleared first — the
// daemon's startup logging folds this into the same crash-recovery report
// as the orphaned focus/AFK cleanup, since both stem from the same unclean
// shutdown. err carries tailerr.KindInstance when a live process already
// holds the lock, so callers can print a clean exit message instead of
// treating it as an internal fault.
func (l *InstanceLock) Acquire() (recoveredStale bool, err error) {
	if data, readErr := os.ReadFile(l.path); readErr == nil {
		pid, parseErr := strconv.Atoi(string(data))
		if parseErr == nil && pid > 0 {
			if isProcessRunning(pid) {
				return false, tailerr.New(tailerr.KindInstance, "another instance of tail is already running (PID: "+strconv.Itoa(pid)+")")
			}
		}
		if removeErr := os.Remove(l.path); removeErr != nil && !os.IsNotExist(removeErr) {
			return false, tailerr.Wrap(tailerr.KindInternal, "remove stale lock file", removeErr)
		}
		recoveredStale = true
	}

	pid := os.Getpid()
	if err := os.WriteFile(l.path, []byte(strconv.Itoa(pid)), 0644); err != nil {
		return false, tailerr.Wrap(tailerr.KindInternal, "create lock file", err)
	}

	return recoveredStale, nil
}

// Release removes the lock file. Safe to call even if Acquire never
// succeeded — a missing file is a no-op, and a lock file holding another
// process's PID is left in place.
func (l *InstanceLock) Release() {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return
	}
	if pid, err := strconv.Atoi(string(data)); err == nil && pid != os.Getpid() {
		return
	}
	os.Remove(l.path)
}

// isProcessRunning reports whether pid names a live process, by sending it
// signal 0 rather than anything that could disturb it.
func isProcessRunning(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
