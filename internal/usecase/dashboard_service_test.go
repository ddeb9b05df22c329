package usecase

import (
	"testing"
)

func TestDashboardServiceSummary(t *testing.T) {
	fixture := newTestFixture()
	store := NewSnapshotStore()
	service := NewDashboardService(fixture.assembler(), store)

	summary, err := service.Summary(t.Context(), "t-1")
	if err != nil {
		t.Fatalf("summary: unexpected error: %v", err)
	}

	if summary.TeamCount != 2 || summary.PlayerCount != 4 || summary.MatchCount != 2 {
		t.Fatalf("counts: teams=%d players=%d matches=%d", summary.TeamCount, summary.PlayerCount, summary.MatchCount)
	}
	if summary.LiveCount != 1 || summary.UpcomingCount != 1 || summary.CompletedCount != 0 {
		t.Fatalf("status counts: live=%d upcoming=%d completed=%d", summary.LiveCount, summary.UpcomingCount, summary.CompletedCount)
	}

	if len(summary.LiveMatches) != 1 {
		t.Fatalf("live matches: got=%d want=1", len(summary.LiveMatches))
	}
	if summary.LiveMatches[0].ChaseSummary != "Need 51 runs from 45 balls" {
		t.Fatalf("live chase: got=%q", summary.LiveMatches[0].ChaseSummary)
	}

	if len(summary.TopBatsmen) == 0 || summary.TopBatsmen[0].ID != "p-1" {
		t.Fatalf("top batsmen: got=%+v", summary.TopBatsmen)
	}
	if len(summary.TopBowlers) != 2 || summary.TopBowlers[0].ID != "p-2" {
		t.Fatalf("top bowlers: got=%+v", summary.TopBowlers)
	}

	t.Run("summary installs a snapshot", func(t *testing.T) {
		if _, ok := store.Current(); !ok {
			t.Fatal("expected snapshot in store after summary")
		}
	})

	t.Run("second call reuses the installed snapshot", func(t *testing.T) {
		installed, _ := store.Current()
		if _, err := service.Summary(t.Context(), "t-1"); err != nil {
			t.Fatalf("second summary: unexpected error: %v", err)
		}
		current, _ := store.Current()
		if current != installed {
			t.Fatal("second summary rebuilt the snapshot unnecessarily")
		}
	})
}
