package usecase

import (
	"errors"
	"testing"

	"github.com/radityasurya/cricket-arena/internal/domain/match"
)

func TestMatchServiceScorecard(t *testing.T) {
	fixture := newTestFixture()
	service := NewMatchService(fixture.tournamentRepo, fixture.teamRepo, fixture.matchRepo, fixture.inningsRepo)

	card, err := service.Scorecard(t.Context(), "m-1")
	if err != nil {
		t.Fatalf("scorecard: unexpected error: %v", err)
	}

	if card.Team1Score != "150/7" {
		t.Fatalf("team1 score: got=%q want=%q", card.Team1Score, "150/7")
	}
	if card.Team2Score != "100/3" {
		t.Fatalf("team2 score: got=%q want=%q", card.Team2Score, "100/3")
	}
	if !card.ChaseActive {
		t.Fatal("expected chase to be active")
	}
	if card.ChaseSummary != "Need 51 runs from 45 balls" {
		t.Fatalf("chase summary: got=%q", card.ChaseSummary)
	}
	if card.RequiredRunRate != "6.62" {
		t.Fatalf("required run rate: got=%q want=%q", card.RequiredRunRate, "6.62")
	}

	if len(card.Innings) != 2 {
		t.Fatalf("innings summaries: got=%d want=2", len(card.Innings))
	}
	first := card.Innings[0]
	if first.Overs != "(20 ov)" || first.RunRate != "7.50" {
		t.Fatalf("first innings: overs=%q rate=%q", first.Overs, first.RunRate)
	}
	second := card.Innings[1]
	if second.Overs != "(12.3 ov)" {
		t.Fatalf("second innings overs: got=%q", second.Overs)
	}
}

func TestBuildScorecardWithoutInnings(t *testing.T) {
	card := BuildScorecard(match.Match{ID: "m-9", Team1ID: "team-1", Team2ID: "team-2", Status: match.StatusScheduled})
	if card.Team1Score != "-" || card.Team2Score != "-" {
		t.Fatalf("scores: got=%q,%q want dashes", card.Team1Score, card.Team2Score)
	}
	if card.ChaseActive {
		t.Fatal("chase must not be active without innings")
	}
	if card.RequiredRunRate != "" {
		t.Fatalf("required run rate: got=%q want empty", card.RequiredRunRate)
	}
}

func TestMatchServiceListLive(t *testing.T) {
	fixture := newTestFixture()
	service := NewMatchService(fixture.tournamentRepo, fixture.teamRepo, fixture.matchRepo, fixture.inningsRepo)

	cards, err := service.ListLive(t.Context())
	if err != nil {
		t.Fatalf("list live: unexpected error: %v", err)
	}
	if len(cards) != 1 || cards[0].Match.ID != "m-1" {
		t.Fatalf("live cards: got=%+v", cards)
	}
	if len(cards[0].Match.Innings) != 2 {
		t.Fatalf("live innings hydration: got=%d want=2", len(cards[0].Match.Innings))
	}
}

func TestMatchServiceListCompletedSkipsInningsHydration(t *testing.T) {
	matchRepo := &fakeMatchRepo{byTournament: map[string][]match.Match{
		"t-1": {
			{ID: "m-1", TournamentID: "t-1", Team1ID: "team-1", Team2ID: "team-2", Status: match.StatusCompleted},
			{ID: "m-2", TournamentID: "t-1", Team1ID: "team-2", Team2ID: "team-1", Status: match.StatusLive},
		},
	}}
	inningsRepo := &fakeInningsRepo{}
	service := NewMatchService(newFakeTournamentRepo(), &fakeTeamRepo{}, matchRepo, inningsRepo)

	items, err := service.ListCompleted(t.Context())
	if err != nil {
		t.Fatalf("list completed: unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ID != "m-1" {
		t.Fatalf("completed matches: got=%+v", items)
	}
	if inningsRepo.listByMatchCalls != 0 {
		t.Fatalf("innings lookups: got=%d want=0", inningsRepo.listByMatchCalls)
	}
}

func TestMatchServiceBallEvents(t *testing.T) {
	fixture := newTestFixture()
	service := NewMatchService(fixture.tournamentRepo, fixture.teamRepo, fixture.matchRepo, fixture.inningsRepo)

	events, err := service.ListBallEvents(t.Context(), "m-1", "inn-2")
	if err != nil {
		t.Fatalf("ball events: unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].Runs != 4 {
		t.Fatalf("events: got=%+v", events)
	}

	t.Run("innings must belong to the match", func(t *testing.T) {
		if _, err := service.ListBallEvents(t.Context(), "m-1", "inn-404"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestMatchServiceGetUnknown(t *testing.T) {
	fixture := newTestFixture()
	service := NewMatchService(fixture.tournamentRepo, fixture.teamRepo, fixture.matchRepo, fixture.inningsRepo)

	if _, err := service.Get(t.Context(), "m-404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
