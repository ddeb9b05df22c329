package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/radityasurya/cricket-arena/internal/domain/match"
	"github.com/radityasurya/cricket-arena/internal/domain/tournament"
	"github.com/radityasurya/cricket-arena/internal/platform/logging"
)

func snapshotWithLiveCount(liveCount int) *Snapshot {
	bundle := TournamentBundle{Tournament: tournament.Tournament{ID: "t-1"}}
	for i := 0; i < liveCount; i++ {
		bundle.Matches = append(bundle.Matches, match.Match{ID: "live", Status: match.StatusLive})
	}
	bundle.Matches = append(bundle.Matches, match.Match{ID: "done", Status: match.StatusCompleted})
	return NewSnapshot(bundle, time.Now())
}

func TestLiveRefreshStateTransitions(t *testing.T) {
	// Scripted live counts per refresh. Transitions must land exactly
	// where the count crosses zero.
	script := []int{0, 2, 1, 0, 0, 3}
	wantStates := []RefreshState{
		RefreshStateIdle,
		RefreshStatePolling,
		RefreshStatePolling,
		RefreshStateIdle,
		RefreshStateIdle,
		RefreshStatePolling,
	}

	step := 0
	source := func(context.Context) (*Snapshot, error) {
		snap := snapshotWithLiveCount(script[step])
		step++
		return snap, nil
	}

	store := NewSnapshotStore()
	service, err := NewLiveRefreshService(source, store, time.Hour, logging.NewNop(), nil)
	if err != nil {
		t.Fatalf("new service: unexpected error: %v", err)
	}

	for i := range script {
		service.Refresh(context.Background())
		if got := service.State(); got != wantStates[i] {
			t.Fatalf("refresh %d: state got=%q want=%q", i, got, wantStates[i])
		}
	}
}

func TestLiveRefreshSwallowsFailures(t *testing.T) {
	healthy := snapshotWithLiveCount(1)
	calls := 0
	source := func(context.Context) (*Snapshot, error) {
		calls++
		if calls == 1 {
			return healthy, nil
		}
		return nil, errors.New("feed down")
	}

	store := NewSnapshotStore()
	service, err := NewLiveRefreshService(source, store, time.Hour, logging.NewNop(), nil)
	if err != nil {
		t.Fatalf("new service: unexpected error: %v", err)
	}

	service.Refresh(context.Background())
	service.Refresh(context.Background())

	if got := service.State(); got != RefreshStatePolling {
		t.Fatalf("state after failure: got=%q want=%q", got, RefreshStatePolling)
	}
	current, ok := store.Current()
	if !ok || current != healthy {
		t.Fatal("failed refresh must keep the previous snapshot installed")
	}
}

func TestLiveRefreshReplacesWholesale(t *testing.T) {
	first := snapshotWithLiveCount(1)
	second := snapshotWithLiveCount(1)
	snaps := []*Snapshot{first, second}
	step := 0
	source := func(context.Context) (*Snapshot, error) {
		snap := snaps[step]
		step++
		return snap, nil
	}

	var replaced []*Snapshot
	store := NewSnapshotStore()
	service, err := NewLiveRefreshService(source, store, time.Hour, logging.NewNop(), func(snap *Snapshot) {
		replaced = append(replaced, snap)
	})
	if err != nil {
		t.Fatalf("new service: unexpected error: %v", err)
	}

	service.Refresh(context.Background())
	held, _ := store.Current()
	service.Refresh(context.Background())

	if held != first {
		t.Fatal("reader's snapshot pointer changed under it")
	}
	current, _ := store.Current()
	if current != second {
		t.Fatal("store must hold the newest snapshot")
	}
	if len(replaced) != 2 {
		t.Fatalf("replace notifications: got=%d want=2", len(replaced))
	}
}

func TestLiveRefreshRejectsBadConfig(t *testing.T) {
	store := NewSnapshotStore()
	source := func(context.Context) (*Snapshot, error) { return nil, nil }

	if _, err := NewLiveRefreshService(nil, store, time.Second, logging.NewNop(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
	if _, err := NewLiveRefreshService(source, nil, time.Second, logging.NewNop(), nil); err == nil {
		t.Fatal("expected error for nil store")
	}
	if _, err := NewLiveRefreshService(source, store, 0, logging.NewNop(), nil); err == nil {
		t.Fatal("expected error for zero interval")
	}
}
