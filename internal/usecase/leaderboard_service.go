package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/radityasurya/cricket-arena/internal/domain/player"
	"github.com/radityasurya/cricket-arena/internal/domain/tournament"
)

const defaultLeaderboardLimit = 5

type LeaderboardService struct {
	tournamentRepo tournament.Repository
	playerRepo     player.Repository
}

func NewLeaderboardService(tournamentRepo tournament.Repository, playerRepo player.Repository) *LeaderboardService {
	return &LeaderboardService{
		tournamentRepo: tournamentRepo,
		playerRepo:     playerRepo,
	}
}

func (s *LeaderboardService) TopBatsmen(ctx context.Context, tournamentID string, limit int) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "LeaderboardService.TopBatsmen")
	defer span.End()

	items, err := s.listPlayers(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	return RankBatsmen(items, limit), nil
}

func (s *LeaderboardService) TopBowlers(ctx context.Context, tournamentID string, limit int) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "LeaderboardService.TopBowlers")
	defer span.End()

	items, err := s.listPlayers(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	return RankBowlers(items, limit), nil
}

func (s *LeaderboardService) listPlayers(ctx context.Context, tournamentID string) ([]player.Player, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	_, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	items, err := s.playerRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return items, nil
}

// RankBatsmen orders players by career runs, most first. The sort is
// stable, so players tied on runs keep their input order.
func RankBatsmen(items []player.Player, limit int) []player.Player {
	ranked := append([]player.Player(nil), items...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RunsScored() > ranked[j].RunsScored()
	})

	return clampLeaderboard(ranked, limit)
}

// RankBowlers orders wicket-taking players by career wickets, most first.
// Players with zero wickets never chart.
func RankBowlers(items []player.Player, limit int) []player.Player {
	ranked := make([]player.Player, 0, len(items))
	for _, item := range items {
		if item.WicketsTaken() > 0 {
			ranked = append(ranked, item)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].WicketsTaken() > ranked[j].WicketsTaken()
	})

	return clampLeaderboard(ranked, limit)
}

func clampLeaderboard(items []player.Player, limit int) []player.Player {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > len(items) {
		limit = len(items)
	}
	return items[:limit]
}
