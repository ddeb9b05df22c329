package usecase

import (
	"context"
	"time"

	"github.com/radityasurya/cricket-arena/internal/domain/innings"
	"github.com/radityasurya/cricket-arena/internal/domain/match"
	"github.com/radityasurya/cricket-arena/internal/domain/player"
	"github.com/radityasurya/cricket-arena/internal/domain/team"
	"github.com/radityasurya/cricket-arena/internal/domain/tournament"
)

type fakeTournamentRepo struct {
	items map[string]tournament.Tournament
	order []string
}

func newFakeTournamentRepo(items ...tournament.Tournament) *fakeTournamentRepo {
	repo := &fakeTournamentRepo{items: make(map[string]tournament.Tournament)}
	for _, item := range items {
		repo.items[item.ID] = item
		repo.order = append(repo.order, item.ID)
	}
	return repo
}

func (r *fakeTournamentRepo) List(context.Context) ([]tournament.Tournament, error) {
	out := make([]tournament.Tournament, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *fakeTournamentRepo) GetByID(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	item, ok := r.items[tournamentID]
	return item, ok, nil
}

func (r *fakeTournamentRepo) Create(_ context.Context, item tournament.Tournament) error {
	r.items[item.ID] = item
	r.order = append(r.order, item.ID)
	return nil
}

func (r *fakeTournamentRepo) Delete(_ context.Context, tournamentID string) error {
	delete(r.items, tournamentID)
	for i, id := range r.order {
		if id == tournamentID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeTeamRepo struct {
	byTournament map[string][]team.Team
}

func (r *fakeTeamRepo) ListByTournament(_ context.Context, tournamentID string) ([]team.Team, error) {
	return r.byTournament[tournamentID], nil
}

func (r *fakeTeamRepo) GetByID(_ context.Context, tournamentID, teamID string) (team.Team, bool, error) {
	for _, item := range r.byTournament[tournamentID] {
		if item.ID == teamID {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

type fakePlayerRepo struct {
	byTournament map[string][]player.Player
}

func (r *fakePlayerRepo) ListByTournament(_ context.Context, tournamentID string) ([]player.Player, error) {
	return r.byTournament[tournamentID], nil
}

func (r *fakePlayerRepo) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	out := make([]player.Player, 0)
	for _, items := range r.byTournament {
		for _, item := range items {
			if item.TeamID == teamID {
				out = append(out, item)
			}
		}
	}
	return out, nil
}

func (r *fakePlayerRepo) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	for _, items := range r.byTournament {
		for _, item := range items {
			if item.ID == playerID {
				return item, true, nil
			}
		}
	}
	return player.Player{}, false, nil
}

type fakeMatchRepo struct {
	byTournament map[string][]match.Match
}

func (r *fakeMatchRepo) ListByTournament(_ context.Context, tournamentID string) ([]match.Match, error) {
	return r.byTournament[tournamentID], nil
}

func (r *fakeMatchRepo) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	for _, items := range r.byTournament {
		for _, item := range items {
			if item.ID == matchID {
				return item, true, nil
			}
		}
	}
	return match.Match{}, false, nil
}

func (r *fakeMatchRepo) ListByStatus(_ context.Context, status match.Status) ([]match.Match, error) {
	out := make([]match.Match, 0)
	for _, items := range r.byTournament {
		for _, item := range items {
			if item.Status == status {
				out = append(out, item)
			}
		}
	}
	return out, nil
}

type fakeInningsRepo struct {
	byMatch          map[string][]innings.Innings
	byInning         map[string][]innings.BallEvent
	listByMatchCalls int
}

func (r *fakeInningsRepo) ListByMatch(_ context.Context, matchID string) ([]innings.Innings, error) {
	r.listByMatchCalls++
	return r.byMatch[matchID], nil
}

func (r *fakeInningsRepo) ListBallEvents(_ context.Context, inningsID string) ([]innings.BallEvent, error) {
	return r.byInning[inningsID], nil
}

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

// testFixture is a small two-team tournament with one live chase and one
// scheduled match.
type testFixture struct {
	tournamentRepo *fakeTournamentRepo
	teamRepo       *fakeTeamRepo
	playerRepo     *fakePlayerRepo
	matchRepo      *fakeMatchRepo
	inningsRepo    *fakeInningsRepo
}

func statsWith(runs, wickets int) *player.Stats {
	return &player.Stats{Matches: 5, Runs: runs, Wickets: wickets}
}

func newTestFixture() testFixture {
	tournamentItem := tournament.Tournament{
		ID:        "t-1",
		Name:      "Cricket Premier League 2025",
		Format:    tournament.FormatT20,
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC),
		Status:    tournament.StatusOngoing,
	}

	teams := []team.Team{
		{ID: "team-1", TournamentID: "t-1", Name: "Royal Challengers", ShortName: "RCB"},
		{ID: "team-2", TournamentID: "t-1", Name: "Super Kings", ShortName: "CSK"},
	}

	players := []player.Player{
		{ID: "p-1", TeamID: "team-1", Name: "Player One", Role: player.RoleBatsman, BattingStyle: player.BattingRightHanded, Stats: statsWith(400, 0)},
		{ID: "p-2", TeamID: "team-1", Name: "Player Two", Role: player.RoleBowler, BattingStyle: player.BattingRightHanded, Stats: statsWith(50, 12)},
		{ID: "p-3", TeamID: "team-2", Name: "Player Three", Role: player.RoleAllRounder, BattingStyle: player.BattingLeftHanded, Stats: statsWith(400, 8)},
		{ID: "p-4", TeamID: "team-2", Name: "Player Four", Role: player.RoleBatsman, BattingStyle: player.BattingRightHanded},
	}

	liveInnings := []innings.Innings{
		{ID: "inn-1", MatchID: "m-1", TeamID: "team-1", Number: 1, TotalRuns: 150, TotalWickets: 7, TotalOvers: 20, Status: innings.StatusCompleted},
		{ID: "inn-2", MatchID: "m-1", TeamID: "team-2", Number: 2, TotalRuns: 100, TotalWickets: 3, TotalOvers: 12.3, Status: innings.StatusOngoing},
	}

	matches := []match.Match{
		{ID: "m-1", TournamentID: "t-1", Team1ID: "team-1", Team2ID: "team-2", Status: match.StatusLive, Date: time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)},
		{ID: "m-2", TournamentID: "t-1", Team1ID: "team-2", Team2ID: "team-1", Status: match.StatusScheduled, Date: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	return testFixture{
		tournamentRepo: newFakeTournamentRepo(tournamentItem),
		teamRepo:       &fakeTeamRepo{byTournament: map[string][]team.Team{"t-1": teams}},
		playerRepo:     &fakePlayerRepo{byTournament: map[string][]player.Player{"t-1": players}},
		matchRepo:      &fakeMatchRepo{byTournament: map[string][]match.Match{"t-1": matches}},
		inningsRepo: &fakeInningsRepo{
			byMatch: map[string][]innings.Innings{"m-1": liveInnings},
			byInning: map[string][]innings.BallEvent{
				"inn-2": {{ID: "be-1", MatchID: "m-1", InningsID: "inn-2", Over: 12, Ball: 3, BatsmanID: "p-3", BowlerID: "p-2", Runs: 4}},
			},
		},
	}
}

func (f testFixture) assembler() *Assembler {
	return NewAssembler(f.tournamentRepo, f.teamRepo, f.playerRepo, f.matchRepo, f.inningsRepo, 2)
}
