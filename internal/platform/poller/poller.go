package poller

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Task runs once per tick. Errors are the task's own to report; the poller
// keeps ticking regardless.
type Task func(ctx context.Context)

// Poller runs a task on a fixed interval between Start and Stop. A poller
// is tied to its consumer's lifetime: stopping it halts the ticker and
// waits for an in-flight run to return.
type Poller struct {
	interval time.Duration
	task     Task

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(interval time.Duration, task Task) (*Poller, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("poll interval must be > 0, got %s", interval)
	}
	if task == nil {
		return nil, fmt.Errorf("poll task is required")
	}

	return &Poller{interval: interval, task: task}, nil
}

// Start launches the tick loop. The first run happens after one interval,
// not immediately. Starting an already running poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	go p.run(runCtx, p.done)
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.task(ctx)
		}
	}
}

// Stop halts the ticker and blocks until the loop has exited. Stopping a
// poller that never started is a no-op.
func (p *Poller) Stop() {
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
