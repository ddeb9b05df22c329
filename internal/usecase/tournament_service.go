package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/radityasurya/cricket-arena/internal/domain/team"
	"github.com/radityasurya/cricket-arena/internal/domain/tournament"
	idgen "github.com/radityasurya/cricket-arena/internal/platform/id"
)

const tournamentDateLayout = "2006-01-02"

type CreateTournamentInput struct {
	Name        string
	Format      string
	StartDate   string
	EndDate     string
	Location    string
	Description string
	LogoURL     string
	CreatedBy   string
}

type TournamentService struct {
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	idGen          idgen.Generator
	now            func() time.Time
}

func NewTournamentService(
	tournamentRepo tournament.Repository,
	teamRepo team.Repository,
	idGen idgen.Generator,
) *TournamentService {
	return &TournamentService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		idGen:          idGen,
		now:            time.Now,
	}
}

func (s *TournamentService) List(ctx context.Context) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "TournamentService.List")
	defer span.End()

	items, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}

	return items, nil
}

func (s *TournamentService) Get(ctx context.Context, tournamentID string) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "TournamentService.Get")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	item, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	return item, nil
}

func (s *TournamentService) ListTeams(ctx context.Context, tournamentID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TournamentService.ListTeams")
	defer span.End()

	if _, err := s.Get(ctx, tournamentID); err != nil {
		return nil, err
	}

	items, err := s.teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}

func (s *TournamentService) GetTeam(ctx context.Context, tournamentID, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TournamentService.GetTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if _, err := s.Get(ctx, tournamentID); err != nil {
		return team.Team{}, err
	}

	item, exists, err := s.teamRepo.GetByID(ctx, tournamentID, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s tournament=%s", ErrNotFound, teamID, tournamentID)
	}

	return item, nil
}

func (s *TournamentService) Create(ctx context.Context, input CreateTournamentInput) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "TournamentService.Create")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament name is required", ErrInvalidInput)
	}

	format, err := tournament.ParseFormat(strings.TrimSpace(input.Format))
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	startDate, err := time.Parse(tournamentDateLayout, strings.TrimSpace(input.StartDate))
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("%w: invalid start date %q", ErrInvalidInput, input.StartDate)
	}
	endDate, err := time.Parse(tournamentDateLayout, strings.TrimSpace(input.EndDate))
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("%w: invalid end date %q", ErrInvalidInput, input.EndDate)
	}
	if endDate.Before(startDate) {
		return tournament.Tournament{}, fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	tournamentID, err := s.idGen.NewID()
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("generate tournament id: %w", err)
	}

	item := tournament.Tournament{
		ID:          tournamentID,
		Name:        input.Name,
		Format:      format,
		StartDate:   startDate,
		EndDate:     endDate,
		Location:    strings.TrimSpace(input.Location),
		Description: strings.TrimSpace(input.Description),
		Status:      tournament.StatusUpcoming,
		LogoURL:     strings.TrimSpace(input.LogoURL),
		CreatedBy:   strings.TrimSpace(input.CreatedBy),
	}
	if s.now().UTC().After(startDate) {
		item.Status = tournament.StatusOngoing
	}
	if err := item.Validate(); err != nil {
		return tournament.Tournament{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.tournamentRepo.Create(ctx, item); err != nil {
		return tournament.Tournament{}, fmt.Errorf("create tournament: %w", err)
	}

	return item, nil
}

func (s *TournamentService) Delete(ctx context.Context, tournamentID string) error {
	ctx, span := startUsecaseSpan(ctx, "TournamentService.Delete")
	defer span.End()

	if _, err := s.Get(ctx, tournamentID); err != nil {
		return err
	}

	if err := s.tournamentRepo.Delete(ctx, tournamentID); err != nil {
		return fmt.Errorf("delete tournament: %w", err)
	}

	return nil
}
