package poller

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestPollerRunsUntilStopped(t *testing.T) {
	t.Parallel()

	var runs atomic.Int64
	p, err := New(5*time.Millisecond, func(_ context.Context) {
		runs.Add(1)
	})
	if err != nil {
		t.Fatalf("new poller: %v", err)
	}

	p.Start(context.Background())

	deadline := time.After(2 * time.Second)
	for runs.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("poller did not tick in time: runs=%d", runs.Load())
		case <-time.After(time.Millisecond):
		}
	}

	p.Stop()
	settled := runs.Load()
	time.Sleep(20 * time.Millisecond)
	if got := runs.Load(); got != settled {
		t.Fatalf("poller kept running after stop: got=%d want=%d", got, settled)
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	t.Parallel()

	p, err := New(time.Millisecond, func(_ context.Context) {})
	if err != nil {
		t.Fatalf("new poller: %v", err)
	}

	p.Stop()
	p.Start(context.Background())
	p.Stop()
	p.Stop()
}

func TestPollerRejectsBadConfig(t *testing.T) {
	t.Parallel()

	if _, err := New(0, func(_ context.Context) {}); err == nil {
		t.Fatalf("expected error for zero interval")
	}
	if _, err := New(time.Second, nil); err == nil {
		t.Fatalf("expected error for nil task")
	}
}
