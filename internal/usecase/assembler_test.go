package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestAssemblerBuildSnapshot(t *testing.T) {
	fixture := newTestFixture()
	assembler := fixture.assembler()

	snap, err := assembler.BuildSnapshot(t.Context(), "t-1")
	if err != nil {
		t.Fatalf("build snapshot: unexpected error: %v", err)
	}

	if snap.Tournament.ID != "t-1" {
		t.Fatalf("tournament: got=%q want=%q", snap.Tournament.ID, "t-1")
	}
	if got := len(snap.Teams); got != 2 {
		t.Fatalf("teams: got=%d want=2", got)
	}
	if got := len(snap.Players); got != 4 {
		t.Fatalf("players: got=%d want=4", got)
	}
	if got := len(snap.Matches); got != 2 {
		t.Fatalf("matches: got=%d want=2", got)
	}

	t.Run("live match carries hydrated innings", func(t *testing.T) {
		live, ok := snap.MatchByID("m-1")
		if !ok {
			t.Fatal("live match missing from snapshot")
		}
		if got := len(live.Innings); got != 2 {
			t.Fatalf("innings: got=%d want=2", got)
		}
	})

	t.Run("indexes resolve", func(t *testing.T) {
		if _, ok := snap.TeamByID("team-2"); !ok {
			t.Fatal("team index missing team-2")
		}
		if _, ok := snap.PlayerByID("p-4"); !ok {
			t.Fatal("player index missing p-4")
		}
		if _, ok := snap.MatchByID("m-404"); ok {
			t.Fatal("match index returned an unknown id")
		}
	})

	t.Run("live count and status views", func(t *testing.T) {
		if got := snap.LiveCount(); got != 1 {
			t.Fatalf("live count: got=%d want=1", got)
		}
		upcoming := snap.UpcomingMatches()
		if len(upcoming) != 1 || upcoming[0].ID != "m-2" {
			t.Fatalf("upcoming: got=%+v", upcoming)
		}
	})
}

func TestAssemblerBuildSnapshotUnknownTournament(t *testing.T) {
	fixture := newTestFixture()
	assembler := fixture.assembler()

	_, err := assembler.BuildSnapshot(context.Background(), "t-404")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAssemblerBuildSnapshotRequiresID(t *testing.T) {
	fixture := newTestFixture()
	assembler := fixture.assembler()

	_, err := assembler.BuildSnapshot(context.Background(), "  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
