package feed

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bramapp/bram/internal/logging"
)

// tickTimeout bounds a single poll invocation so a stalled backend
// cannot pile up goroutines behind the ticker.
const tickTimeout = 10 * time.Second

// PollingScheduler invokes a callback on a fixed interval until stopped.
// A tick is skipped while the previous invocation is still in flight, so
// a slow backend never accumulates concurrent fetches. Errors from the
// callback are logged, never surfaced; passive polling shows stale data
// instead of interrupting the user.
type PollingScheduler struct {
	log logging.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	busy    atomic.Bool
	skipped atomic.Int64
}

func NewPollingScheduler(log logging.Logger) *PollingScheduler {
	return &PollingScheduler{log: log}
}

// Start begins invoking fn every interval. It is a no-op if the
// scheduler is already running. The loop stops when ctx is cancelled or
// Stop is called.
func (p *PollingScheduler) Start(ctx context.Context, interval time.Duration, fn func(ctx context.Context) error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	go p.run(ctx, p.done, interval, fn)
}

// Stop halts the ticker and waits for the loop goroutine to exit.
// In-flight invocations are cancelled via their context.
func (p *PollingScheduler) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Skipped reports how many ticks were dropped because the previous
// invocation had not settled. Exposed for tests and diagnostics.
func (p *PollingScheduler) Skipped() int64 {
	return p.skipped.Load()
}

func (p *PollingScheduler) run(ctx context.Context, done chan struct{}, interval time.Duration, fn func(ctx context.Context) error) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !p.busy.CompareAndSwap(false, true) {
				p.skipped.Add(1)
				continue
			}
			go func() {
				defer p.busy.Store(false)

				tctx, cancel := context.WithTimeout(ctx, tickTimeout)
				defer cancel()
				if err := fn(tctx); err != nil {
					p.log.Warn(tctx, "background refresh failed", "error", err)
				}
			}()

		case <-ctx.Done():
			return
		}
	}
}
