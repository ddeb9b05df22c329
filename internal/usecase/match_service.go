package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/radityasurya/cricket-arena/internal/domain/innings"
	"github.com/radityasurya/cricket-arena/internal/domain/match"
	"github.com/radityasurya/cricket-arena/internal/domain/scorecard"
	"github.com/radityasurya/cricket-arena/internal/domain/team"
	"github.com/radityasurya/cricket-arena/internal/domain/tournament"
)

// InningsSummary is one innings with its display strings resolved.
type InningsSummary struct {
	Innings innings.Innings
	Score   string
	Overs   string
	RunRate string
}

// MatchScorecard is a match with its innings hydrated and every display
// statistic the dashboard needs precomputed.
type MatchScorecard struct {
	Match           match.Match
	Team1Score      string
	Team2Score      string
	Innings         []InningsSummary
	RequiredRunRate string
	ChaseSummary    string
	ChaseActive     bool
}

type MatchService struct {
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	matchRepo      match.Repository
	inningsRepo    innings.Repository
}

func NewMatchService(
	tournamentRepo tournament.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	inningsRepo innings.Repository,
) *MatchService {
	return &MatchService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		inningsRepo:    inningsRepo,
	}
}

func (s *MatchService) ListByTournament(ctx context.Context, tournamentID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.ListByTournament")
	defer span.End()

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

	items, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return items, nil
}

func (s *MatchService) Get(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Get")
	defer span.End()

	return s.getWithInnings(ctx, matchID)
}

// Scorecard resolves the match plus the derived display statistics.
func (s *MatchService) Scorecard(ctx context.Context, matchID string) (MatchScorecard, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Scorecard")
	defer span.End()

	item, err := s.getWithInnings(ctx, matchID)
	if err != nil {
		return MatchScorecard{}, err
	}

	return BuildScorecard(item), nil
}

func (s *MatchService) ListLive(ctx context.Context) ([]MatchScorecard, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.ListLive")
	defer span.End()

	items, err := s.listByStatusWithInnings(ctx, match.StatusLive)
	if err != nil {
		return nil, err
	}

	out := make([]MatchScorecard, 0, len(items))
	for _, item := range items {
		out = append(out, BuildScorecard(item))
	}

	return out, nil
}

func (s *MatchService) ListUpcoming(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.ListUpcoming")
	defer span.End()

	items, err := s.matchRepo.ListByStatus(ctx, match.StatusScheduled)
	if err != nil {
		return nil, fmt.Errorf("list scheduled matches: %w", err)
	}

	return items, nil
}

func (s *MatchService) ListCompleted(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.ListCompleted")
	defer span.End()

	// Completed listings render without innings detail, so no hydration.
	items, err := s.matchRepo.ListByStatus(ctx, match.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("list completed matches: %w", err)
	}

	return items, nil
}

func (s *MatchService) ListBallEvents(ctx context.Context, matchID, inningsID string) ([]innings.BallEvent, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.ListBallEvents")
	defer span.End()

	inningsID = strings.TrimSpace(inningsID)
	if inningsID == "" {
		return nil, fmt.Errorf("%w: innings id is required", ErrInvalidInput)
	}

	item, err := s.getWithInnings(ctx, matchID)
	if err != nil {
		return nil, err
	}

	found := false
	for _, inn := range item.Innings {
		if inn.ID == inningsID {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: innings=%s match=%s", ErrNotFound, inningsID, matchID)
	}

	events, err := s.inningsRepo.ListBallEvents(ctx, inningsID)
	if err != nil {
		return nil, fmt.Errorf("list ball events: %w", err)
	}

	return events, nil
}

func (s *MatchService) getWithInnings(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	item.Innings, err = s.inningsRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("hydrate innings: %w", err)
	}

	return item, nil
}

func (s *MatchService) listByStatusWithInnings(ctx context.Context, status match.Status) ([]match.Match, error) {
	items, err := s.matchRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list matches status=%s: %w", status, err)
	}

	for i := range items {
		items[i].Innings, err = s.inningsRepo.ListByMatch(ctx, items[i].ID)
		if err != nil {
			return nil, fmt.Errorf("hydrate innings match=%s: %w", items[i].ID, err)
		}
	}

	return items, nil
}

// BuildScorecard derives the display statistics for a match. It never
// fails: missing innings degrade to the documented placeholder strings.
func BuildScorecard(item match.Match) MatchScorecard {
	out := MatchScorecard{
		Match:      item,
		Team1Score: scorecard.TeamScore(item, item.Team1ID),
		Team2Score: scorecard.TeamScore(item, item.Team2ID),
	}

	out.Innings = make([]InningsSummary, 0, len(item.Innings))
	for _, inn := range item.Innings {
		out.Innings = append(out.Innings, InningsSummary{
			Innings: inn,
			Score:   fmt.Sprintf("%d/%d", inn.TotalRuns, inn.TotalWickets),
			Overs:   scorecard.OversDisplay(inn.TotalOvers),
			RunRate: scorecard.RunRate(inn.TotalRuns, inn.TotalOvers),
		})
	}

	first, hasFirst := item.InningsByNumber(1)
	second, hasSecond := item.InningsByNumber(2)
	if hasFirst && hasSecond && second.Status == innings.StatusOngoing {
		out.RequiredRunRate = scorecard.RequiredRunRate(
			first.TotalRuns+1,
			second.TotalRuns,
			matchOversAllotment(item),
			second.TotalOvers,
		)
	}
	if summary, ok := scorecard.ChaseRequirement(item); ok {
		out.ChaseSummary = summary
		out.ChaseActive = true
	}

	return out
}

// matchOversAllotment is fixed at the T20 length the dashboard covers.
func matchOversAllotment(match.Match) float64 {
	return 20
}
