package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/radityasurya/cricket-arena/internal/domain/player"
	"github.com/radityasurya/cricket-arena/internal/domain/tournament"
)

type PlayerService struct {
	tournamentRepo tournament.Repository
	playerRepo     player.Repository
}

func NewPlayerService(tournamentRepo tournament.Repository, playerRepo player.Repository) *PlayerService {
	return &PlayerService{
		tournamentRepo: tournamentRepo,
		playerRepo:     playerRepo,
	}
}

// ListByTournament returns the tournament's players, narrowed to one team
// when teamID is non-empty.
func (s *PlayerService) ListByTournament(ctx context.Context, tournamentID, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.ListByTournament")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	teamID = strings.TrimSpace(teamID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	if err := s.ensureTournament(ctx, tournamentID); err != nil {
		return nil, err
	}

	if teamID != "" {
		items, err := s.playerRepo.ListByTeam(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("list players by team: %w", err)
		}
		return items, nil
	}

	items, err := s.playerRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list players by tournament: %w", err)
	}

	return items, nil
}

func (s *PlayerService) GetByID(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.GetByID")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}

func (s *PlayerService) ensureTournament(ctx context.Context, tournamentID string) error {
	_, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}
	return nil
}
