package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/radityasurya/cricket-arena/internal/domain/match"
	"github.com/radityasurya/cricket-arena/internal/domain/player"
	"github.com/radityasurya/cricket-arena/internal/domain/team"
	"github.com/radityasurya/cricket-arena/internal/domain/tournament"
)

// TournamentBundle is one complete tournament read model, either assembled
// from repositories or fetched from the upstream score feed.
type TournamentBundle struct {
	Tournament tournament.Tournament
	Teams      []team.Team
	Players    []player.Player
	Matches    []match.Match
}

// ScoreFeed fetches complete tournament bundles from an upstream backend.
type ScoreFeed interface {
	FetchTournamentBundle(ctx context.Context, tournamentID string) (TournamentBundle, error)
}

// Snapshot is an immutable view of one tournament. Readers hold a snapshot
// pointer for the duration of a request; refreshes install a new snapshot
// instead of mutating this one.
type Snapshot struct {
	GeneratedAt time.Time
	Tournament  tournament.Tournament
	Teams       []team.Team
	Players     []player.Player
	Matches     []match.Match

	teamsByID   map[string]team.Team
	playersByID map[string]player.Player
	matchesByID map[string]match.Match
}

func NewSnapshot(bundle TournamentBundle, generatedAt time.Time) *Snapshot {
	snap := &Snapshot{
		GeneratedAt: generatedAt,
		Tournament:  bundle.Tournament,
		Teams:       bundle.Teams,
		Players:     bundle.Players,
		Matches:     bundle.Matches,
		teamsByID:   make(map[string]team.Team, len(bundle.Teams)),
		playersByID: make(map[string]player.Player, len(bundle.Players)),
		matchesByID: make(map[string]match.Match, len(bundle.Matches)),
	}

	for _, item := range bundle.Teams {
		snap.teamsByID[item.ID] = item
	}
	for _, item := range bundle.Players {
		snap.playersByID[item.ID] = item
	}
	for _, item := range bundle.Matches {
		snap.matchesByID[item.ID] = item
	}

	return snap
}

func (s *Snapshot) TeamByID(teamID string) (team.Team, bool) {
	item, ok := s.teamsByID[teamID]
	return item, ok
}

func (s *Snapshot) PlayerByID(playerID string) (player.Player, bool) {
	item, ok := s.playersByID[playerID]
	return item, ok
}

func (s *Snapshot) MatchByID(matchID string) (match.Match, bool) {
	item, ok := s.matchesByID[matchID]
	return item, ok
}

func (s *Snapshot) MatchesByStatus(status match.Status) []match.Match {
	out := make([]match.Match, 0, len(s.Matches))
	for _, item := range s.Matches {
		if item.Status == status {
			out = append(out, item)
		}
	}
	return out
}

func (s *Snapshot) LiveMatches() []match.Match {
	return s.MatchesByStatus(match.StatusLive)
}

func (s *Snapshot) LiveCount() int {
	count := 0
	for _, item := range s.Matches {
		if item.Status == match.StatusLive {
			count++
		}
	}
	return count
}

// UpcomingMatches returns scheduled matches ordered by date then id.
func (s *Snapshot) UpcomingMatches() []match.Match {
	out := s.MatchesByStatus(match.StatusScheduled)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Snapshot) CompletedMatches() []match.Match {
	return s.MatchesByStatus(match.StatusCompleted)
}
