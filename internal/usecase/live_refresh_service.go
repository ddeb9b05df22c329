package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/radityasurya/cricket-arena/internal/platform/logging"
	"github.com/radityasurya/cricket-arena/internal/platform/poller"
)

type RefreshState string

const (
	RefreshStateIdle    RefreshState = "idle"
	RefreshStatePolling RefreshState = "polling"
)

// SnapshotSource produces a complete snapshot for the refresh loop.
type SnapshotSource func(ctx context.Context) (*Snapshot, error)

// LiveRefreshService keeps the snapshot store current. Every tick rebuilds
// the snapshot and replaces the store's pointer wholesale; nothing in an
// installed snapshot is ever mutated. The service is Idle while no live
// matches are known and Polling while at least one is; transitions happen
// only when an applied refresh crosses zero live matches. A failed refresh
// is logged and swallowed, and the next tick retries with no backoff.
type LiveRefreshService struct {
	source    SnapshotSource
	store     *SnapshotStore
	interval  time.Duration
	logger    *logging.Logger
	onReplace func(*Snapshot)

	mu    sync.Mutex
	state RefreshState
	poll  *poller.Poller
}

func NewLiveRefreshService(
	source SnapshotSource,
	store *SnapshotStore,
	interval time.Duration,
	logger *logging.Logger,
	onReplace func(*Snapshot),
) (*LiveRefreshService, error) {
	if source == nil {
		return nil, fmt.Errorf("snapshot source is required")
	}
	if store == nil {
		return nil, fmt.Errorf("snapshot store is required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	s := &LiveRefreshService{
		source:    source,
		store:     store,
		interval:  interval,
		logger:    logger,
		onReplace: onReplace,
		state:     RefreshStateIdle,
	}

	poll, err := poller.New(interval, s.Refresh)
	if err != nil {
		return nil, fmt.Errorf("create refresh poller: %w", err)
	}
	s.poll = poll

	return s, nil
}

// Start performs one immediate refresh and then launches the tick loop.
func (s *LiveRefreshService) Start(ctx context.Context) {
	s.Refresh(ctx)
	s.poll.Start(ctx)
}

// Stop clears the timer. An in-flight refresh finishes and its result is
// still applied; it is just the last one.
func (s *LiveRefreshService) Stop() {
	s.poll.Stop()
}

func (s *LiveRefreshService) State() RefreshState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Refresh performs one fetch-and-replace cycle. Failures leave the
// current snapshot and state untouched.
func (s *LiveRefreshService) Refresh(ctx context.Context) {
	snap, err := s.source(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "live refresh failed, keeping previous snapshot", "error", err)
		return
	}
	if snap == nil {
		s.logger.WarnContext(ctx, "live refresh returned no snapshot, keeping previous")
		return
	}

	s.store.Replace(snap)
	s.applyState(ctx, snap.LiveCount())

	if s.onReplace != nil {
		s.onReplace(snap)
	}
}

func (s *LiveRefreshService) applyState(ctx context.Context, liveCount int) {
	next := RefreshStateIdle
	if liveCount > 0 {
		next = RefreshStatePolling
	}

	s.mu.Lock()
	previous := s.state
	s.state = next
	s.mu.Unlock()

	if previous != next {
		s.logger.InfoContext(ctx, "live refresh state changed",
			"from", string(previous),
			"to", string(next),
			"live_matches", liveCount,
		)
	}
}
