package feed

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bramapp/bram/internal/logging"
)

func TestPollingScheduler_InvokesCallback(t *testing.T) {
	p := NewPollingScheduler(logging.NewDefault())

	var calls atomic.Int64
	p.Start(context.Background(), 5*time.Millisecond, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})
	defer p.Stop()

	require.Eventually(t, func() bool {
		return calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestPollingScheduler_StopHaltsTicks(t *testing.T) {
	p := NewPollingScheduler(logging.NewDefault())

	var calls atomic.Int64
	p.Start(context.Background(), 5*time.Millisecond, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	require.Eventually(t, func() bool {
		return calls.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	p.Stop()

	// let any invocation spawned just before Stop settle
	time.Sleep(20 * time.Millisecond)
	after := calls.Load()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestPollingScheduler_SkipsWhileInFlight(t *testing.T) {
	p := NewPollingScheduler(logging.NewDefault())

	release := make(chan struct{})
	var started atomic.Int64
	p.Start(context.Background(), 5*time.Millisecond, func(ctx context.Context) error {
		started.Add(1)
		<-release
		return nil
	})
	defer p.Stop()

	require.Eventually(t, func() bool {
		return p.Skipped() >= 2
	}, time.Second, 5*time.Millisecond)

	// only the first invocation ever ran
	assert.Equal(t, int64(1), started.Load())
	close(release)
}

func TestPollingScheduler_StartIsIdempotent(t *testing.T) {
	p := NewPollingScheduler(logging.NewDefault())

	var calls atomic.Int64
	fn := func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}

	p.Start(context.Background(), 5*time.Millisecond, fn)
	p.Start(context.Background(), 5*time.Millisecond, fn)
	p.Stop()

	// second Start was a no-op, so one Stop fully halts the scheduler
	p.Stop()
}

func TestPollingScheduler_ContextCancelStops(t *testing.T) {
	p := NewPollingScheduler(logging.NewDefault())
	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int64
	p.Start(ctx, 5*time.Millisecond, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	require.Eventually(t, func() bool {
		return calls.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	time.Sleep(20 * time.Millisecond)
	after := calls.Load()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, calls.Load())

	p.Stop()
}
