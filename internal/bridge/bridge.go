package bridge

import (
	"context"

	"golang.org/x/sync/errgroup"

	"tail/internal/query"
)

// queueDepth bounds the command/response channels. Genuinely unbounded Go
// channels don't exist; this is sized well past anything a single
// interactive session produces per repaint, so in practice Send never
// blocks and commands are never silently dropped, per spec.md §4.8.
const queueDepth = 256

// workerCount is the small dispatch pool per spec.md §5.
const workerCount = 2

// Bridge is the async command/response boundary (C8) between presentation
// and the query/storage core. Presentation calls Send to enqueue a
// Command and Poll (non-blocking) once per repaint to drain Responses.
type Bridge struct {
	store StorePort
	svc   *query.Service

	cmdCh  chan Command
	respCh chan Response

	ctx    context.Context
	group  *errgroup.Group
	cancel context.CancelFunc
}

// New builds a bridge dispatching against store and svc. Start must be
// called before commands are sent.
func New(store StorePort, svc *query.Service) *Bridge {
	return &Bridge{
		store:  store,
		svc:    svc,
		cmdCh:  make(chan Command, queueDepth),
		respCh: make(chan Response, queueDepth),
	}
}

// Start spawns the worker pool. Each worker drains cmdCh until it is
// closed, dispatches every command to exactly one Response, and pushes
// it onto respCh.
func (b *Bridge) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	b.ctx = ctx
	b.cancel = cancel
	group, _ := errgroup.WithContext(ctx)
	b.group = group

	for i := 0; i < workerCount; i++ {
		group.Go(func() error {
			for cmd := range b.cmdCh {
				b.respCh <- b.dispatch(cmd)
			}
			return nil
		})
	}
}

// Send enqueues cmd for the worker pool. It blocks only if queueDepth
// in-flight commands are already pending, which in practice never
// happens for an interactive session.
func (b *Bridge) Send(cmd Command) {
	b.cmdCh <- cmd
}

// Poll returns the next ready Response without blocking. Presentation
// calls this once per repaint tick; a false ok means nothing is ready
// yet, not that nothing was ever sent.
func (b *Bridge) Poll() (Response, bool) {
	select {
	case resp := <-b.respCh:
		return resp, true
	default:
		return nil, false
	}
}

// Close drains any in-flight work, stops the workers, and releases the
// channels. It blocks until every worker has returned, satisfying
// spec.md §4.8's "Shutdown drains in-flight work before exiting".
func (b *Bridge) Close() {
	close(b.cmdCh)
	_ = b.group.Wait()
	if b.cancel != nil {
		b.cancel()
	}
	close(b.respCh)
}
