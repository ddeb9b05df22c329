package usecase

import (
	"errors"
	"testing"

	"github.com/radityasurya/cricket-arena/internal/domain/player"
)

func TestRankBatsmen(t *testing.T) {
	items := []player.Player{
		{ID: "p-1", Stats: statsWith(120, 0)},
		{ID: "p-2", Stats: statsWith(300, 0)},
		{ID: "p-3"},
		{ID: "p-4", Stats: statsWith(300, 0)},
		{ID: "p-5", Stats: statsWith(10, 0)},
		{ID: "p-6", Stats: statsWith(90, 0)},
	}

	ranked := RankBatsmen(items, 0)
	if got := len(ranked); got != 5 {
		t.Fatalf("default limit: got=%d want=5", got)
	}

	t.Run("ties keep input order", func(t *testing.T) {
		if ranked[0].ID != "p-2" || ranked[1].ID != "p-4" {
			t.Fatalf("tie order: got=%s,%s want=p-2,p-4", ranked[0].ID, ranked[1].ID)
		}
	})

	t.Run("missing stats count as zero", func(t *testing.T) {
		last := ranked[len(ranked)-1]
		if last.ID != "p-3" && last.ID != "p-5" {
			t.Fatalf("bottom entry: got=%s", last.ID)
		}
	})

	t.Run("input slice is not reordered", func(t *testing.T) {
		if items[0].ID != "p-1" {
			t.Fatalf("input mutated: got=%s want=p-1", items[0].ID)
		}
	})
}

func TestRankBowlers(t *testing.T) {
	items := []player.Player{
		{ID: "p-1", Stats: statsWith(0, 0)},
		{ID: "p-2", Stats: statsWith(0, 14)},
		{ID: "p-3"},
		{ID: "p-4", Stats: statsWith(0, 20)},
	}

	ranked := RankBowlers(items, 10)
	if got := len(ranked); got != 2 {
		t.Fatalf("wicketless players charted: got=%d want=2", got)
	}
	if ranked[0].ID != "p-4" || ranked[1].ID != "p-2" {
		t.Fatalf("order: got=%s,%s want=p-4,p-2", ranked[0].ID, ranked[1].ID)
	}
}

func TestLeaderboardServiceTopBatsmen(t *testing.T) {
	fixture := newTestFixture()
	service := NewLeaderboardService(fixture.tournamentRepo, fixture.playerRepo)

	ranked, err := service.TopBatsmen(t.Context(), "t-1", 2)
	if err != nil {
		t.Fatalf("top batsmen: unexpected error: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("limit: got=%d want=2", len(ranked))
	}
	// p-1 and p-3 both have 400 runs; the stable sort keeps p-1 first.
	if ranked[0].ID != "p-1" || ranked[1].ID != "p-3" {
		t.Fatalf("order: got=%s,%s want=p-1,p-3", ranked[0].ID, ranked[1].ID)
	}
}

func TestLeaderboardServiceUnknownTournament(t *testing.T) {
	fixture := newTestFixture()
	service := NewLeaderboardService(fixture.tournamentRepo, fixture.playerRepo)

	if _, err := service.TopBowlers(t.Context(), "t-404", 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
