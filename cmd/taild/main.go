// Command taild is the background collector daemon: it holds the
// single-instance lock, owns the storage engine, drains the compositor's
// event socket into a SessionTracker, polls for AFK transitions, and
// hosts the command/response bridge a presentation process talks to.
// Modeled on the teacher's main.go Sentry setup and
// internal/tracker/daemon.go's recover-and-report run loop.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"tail/internal/bridge"
	"tail/internal/compositor"
	"tail/internal/config"
	"tail/internal/lock"
	"tail/internal/query"
	"tail/internal/storage"
	"tail/internal/tailerr"
	"tail/internal/tracker"
)

// maintenanceSchedule is the cron spec for the storage VACUUM/ANALYZE job.
// sentry.Init below leaves Dsn unset, so taild only reports crashes when a
// deployment supplies one via the SENTRY_DSN environment variable (sentry-go
// reads it automatically when Dsn is unset in ClientOptions).
const maintenanceSchedule = "0 3 * * 0" // weekly, Sunday 03:00

func main() {
	cfg := config.Load()

	if err := sentry.Init(sentry.ClientOptions{
		AttachStacktrace: true,
		Environment:      "production",
	}); err != nil {
		log.Printf("sentry init failed: %v", err)
	}
	defer sentry.Flush(2 * time.Second)

	instanceLock := lock.New(cfg.DataDir)
	recoveredStaleLock, err := instanceLock.Acquire()
	if err != nil {
		if tailerr.Is(err, tailerr.KindInstance) {
			log.Fatalf("%v", err)
		}
		log.Fatalf("acquire instance lock: %v", err)
	}
	defer instanceLock.Release()

	store, err := storage.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer store.Close()

	if err := store.StartMaintenanceScheduler(maintenanceSchedule); err != nil {
		log.Printf("warning: maintenance scheduler not started: %v", err)
	}

	recoverCrashState(store, cfg, recoveredStaleLock)

	svc := query.NewService(store)
	b := bridge.New(store, svc)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	b.Start(ctx)
	defer b.Close()

	run(ctx, store, cfg)
}

// recoverCrashState closes focus and AFK intervals an unclean shutdown
// left open, per SPEC_FULL.md §12. recoveredStaleLock is reported here too:
// a lock file surviving its owning process is the same symptom (the prior
// taild never reached its clean-shutdown path) as the orphaned focus/AFK
// rows below, so all three are logged as one crash-recovery report.
func recoverCrashState(store *storage.Store, cfg config.Config, recoveredStaleLock bool) {
	const maxOrphanAge = 12 * 60 * 60 // 12 hours, mirrors the teacher's session orphan window

	if recoveredStaleLock {
		log.Printf("cleared a stale instance lock left by a previous run that did not shut down cleanly")
	}

	if n, err := store.CloseOrphanedFocus(maxOrphanAge); err != nil {
		log.Printf("warning: failed to close orphaned focus intervals: %v", err)
	} else if n > 0 {
		log.Printf("closed %d orphaned focus interval(s) from a previous run", n)
	}

	if err := store.CloseOrphanedAFKEvents(time.Now()); err != nil {
		log.Printf("warning: failed to close orphaned AFK events: %v", err)
	}
}

// run drains the compositor socket and ticks the AFK detector until ctx
// is cancelled. A panic is recovered and reported to Sentry the way the
// teacher's Daemon.run does; recovery wraps the whole loop, not each event,
// so after a panic run returns and the daemon shuts down.
func run(ctx context.Context, store *storage.Store, cfg config.Config) {
	defer func() {
		if r := recover(); r != nil {
			sentry.CurrentHub().Recover(r)
			sentry.Flush(2 * time.Second)
		}
	}()

	afk := tracker.NewAFKDetector(cfg.AFKTimeout)
	session := tracker.NewSessionTracker(store, afk)
	afk.SetCallbacks(
		func(since time.Time) {
			if err := session.Flush(); err != nil {
				log.Printf("flush on AFK entry: %v", err)
			}
		},
		func() {},
	)

	socketPath, err := compositor.SocketPath()
	if err != nil {
		log.Fatalf("locate compositor socket: %v", err)
	}
	reader, err := compositor.Dial(socketPath)
	if err != nil {
		log.Fatalf("dial compositor socket: %v", err)
	}
	defer reader.Close()

	events := make(chan compositor.Event)
	errs := make(chan error, 1)
	go func() {
		for {
			ev, ok, err := reader.Next()
			if err != nil {
				errs <- err
				return
			}
			if ok {
				events <- ev
			}
		}
	}()

	ticker := time.NewTicker(cfg.IdleCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := session.Flush(); err != nil {
				log.Printf("flush on shutdown: %v", err)
			}
			return
		case ev := <-events:
			afk.RecordActivity()
			if err := session.HandleEvent(ev); err != nil {
				log.Printf("handle compositor event: %v", err)
			}
		case <-ticker.C:
			afk.CheckState()
			if err := session.Tick(); err != nil {
				log.Printf("session tick: %v", err)
			}
		case err := <-errs:
			log.Printf("compositor socket closed: %v", err)
			return
		}
	}
}
