package usecase

import (
	"context"
	"fmt"

	"github.com/radityasurya/cricket-arena/internal/domain/match"
	"github.com/radityasurya/cricket-arena/internal/domain/player"
	"github.com/radityasurya/cricket-arena/internal/domain/tournament"
)

// DashboardSummary is the single payload behind the dashboard landing view.
type DashboardSummary struct {
	Tournament     tournament.Tournament
	TeamCount      int
	PlayerCount    int
	MatchCount     int
	LiveCount      int
	UpcomingCount  int
	CompletedCount int
	LiveMatches    []MatchScorecard
	NextMatches    []match.Match
	TopBatsmen     []player.Player
	TopBowlers     []player.Player
	GeneratedAtUTC string
}

const dashboardNextMatchCount = 3

type DashboardService struct {
	assembler *Assembler
	store     *SnapshotStore
}

func NewDashboardService(assembler *Assembler, store *SnapshotStore) *DashboardService {
	return &DashboardService{
		assembler: assembler,
		store:     store,
	}
}

// Summary builds the dashboard from the current snapshot, falling back to
// a fresh assembly when no snapshot has been installed yet.
func (s *DashboardService) Summary(ctx context.Context, tournamentID string) (DashboardSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "DashboardService.Summary")
	defer span.End()

	snap, ok := s.store.Current()
	if !ok || snap.Tournament.ID != tournamentID {
		fresh, err := s.assembler.BuildSnapshot(ctx, tournamentID)
		if err != nil {
			return DashboardSummary{}, fmt.Errorf("assemble dashboard snapshot: %w", err)
		}
		s.store.Replace(fresh)
		snap = fresh
	}

	out := DashboardSummary{
		Tournament:     snap.Tournament,
		TeamCount:      len(snap.Teams),
		PlayerCount:    len(snap.Players),
		MatchCount:     len(snap.Matches),
		LiveCount:      snap.LiveCount(),
		TopBatsmen:     RankBatsmen(snap.Players, defaultLeaderboardLimit),
		TopBowlers:     RankBowlers(snap.Players, defaultLeaderboardLimit),
		GeneratedAtUTC: snap.GeneratedAt.Format("2006-01-02T15:04:05Z"),
	}

	for _, item := range snap.LiveMatches() {
		out.LiveMatches = append(out.LiveMatches, BuildScorecard(item))
	}

	upcoming := snap.UpcomingMatches()
	out.UpcomingCount = len(upcoming)
	if len(upcoming) > dashboardNextMatchCount {
		upcoming = upcoming[:dashboardNextMatchCount]
	}
	out.NextMatches = upcoming

	out.CompletedCount = len(snap.CompletedMatches())

	return out, nil
}
