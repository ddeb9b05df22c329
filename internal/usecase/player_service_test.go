package usecase

import (
	"errors"
	"testing"
)

func TestPlayerServiceListByTournament(t *testing.T) {
	fixture := newTestFixture()
	service := NewPlayerService(fixture.tournamentRepo, fixture.playerRepo)

	items, err := service.ListByTournament(t.Context(), "t-1", "")
	if err != nil {
		t.Fatalf("list: unexpected error: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("players: got=%d want=4", len(items))
	}

	t.Run("team filter narrows the list", func(t *testing.T) {
		items, err := service.ListByTournament(t.Context(), "t-1", "team-2")
		if err != nil {
			t.Fatalf("list by team: unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("players: got=%d want=2", len(items))
		}
		for _, item := range items {
			if item.TeamID != "team-2" {
				t.Fatalf("player %s leaked from team %s", item.ID, item.TeamID)
			}
		}
	})

	t.Run("unknown tournament", func(t *testing.T) {
		if _, err := service.ListByTournament(t.Context(), "t-404", ""); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestPlayerServiceGetByID(t *testing.T) {
	fixture := newTestFixture()
	service := NewPlayerService(fixture.tournamentRepo, fixture.playerRepo)

	item, err := service.GetByID(t.Context(), "p-3")
	if err != nil {
		t.Fatalf("get: unexpected error: %v", err)
	}
	if item.Name != "Player Three" {
		t.Fatalf("player: got=%q", item.Name)
	}

	if _, err := service.GetByID(t.Context(), "p-404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.GetByID(t.Context(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
