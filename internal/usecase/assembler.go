package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/radityasurya/cricket-arena/internal/domain/innings"
	"github.com/radityasurya/cricket-arena/internal/domain/match"
	"github.com/radityasurya/cricket-arena/internal/domain/player"
	"github.com/radityasurya/cricket-arena/internal/domain/team"
	"github.com/radityasurya/cricket-arena/internal/domain/tournament"
	"github.com/sourcegraph/conc"
)

const defaultHydrationWorkers = 8

// Assembler builds tournament snapshots from the repositories. Teams,
// players, and matches load in parallel; innings hydration fans out over a
// bounded worker pool because it is one round trip per match.
type Assembler struct {
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	playerRepo     player.Repository
	matchRepo      match.Repository
	inningsRepo    innings.Repository
	workers        int
	now            func() time.Time
}

func NewAssembler(
	tournamentRepo tournament.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	inningsRepo innings.Repository,
	workers int,
) *Assembler {
	if workers < 1 {
		workers = defaultHydrationWorkers
	}

	return &Assembler{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		matchRepo:      matchRepo,
		inningsRepo:    inningsRepo,
		workers:        workers,
		now:            time.Now,
	}
}

func (a *Assembler) BuildSnapshot(ctx context.Context, tournamentID string) (*Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "Assembler.BuildSnapshot")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	tournamentItem, exists, err := a.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	bundle := TournamentBundle{Tournament: tournamentItem}

	var teamsErr, playersErr, matchesErr error
	var wg conc.WaitGroup
	wg.Go(func() {
		bundle.Teams, teamsErr = a.teamRepo.ListByTournament(ctx, tournamentID)
	})
	wg.Go(func() {
		bundle.Players, playersErr = a.playerRepo.ListByTournament(ctx, tournamentID)
	})
	wg.Go(func() {
		bundle.Matches, matchesErr = a.matchRepo.ListByTournament(ctx, tournamentID)
	})
	wg.Wait()

	if teamsErr != nil {
		return nil, fmt.Errorf("list teams: %w", teamsErr)
	}
	if playersErr != nil {
		return nil, fmt.Errorf("list players: %w", playersErr)
	}
	if matchesErr != nil {
		return nil, fmt.Errorf("list matches: %w", matchesErr)
	}

	if err := a.hydrateInnings(ctx, bundle.Matches); err != nil {
		return nil, err
	}

	return NewSnapshot(bundle, a.now().UTC()), nil
}

// LiveMatchesWithInnings runs the live-match query and hydrates innings so
// refresh consumers get complete scorecards.
func (a *Assembler) LiveMatchesWithInnings(ctx context.Context) ([]match.Match, error) {
	items, err := a.matchRepo.ListByStatus(ctx, match.StatusLive)
	if err != nil {
		return nil, fmt.Errorf("list live matches: %w", err)
	}
	if err := a.hydrateInnings(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (a *Assembler) hydrateInnings(ctx context.Context, matches []match.Match) error {
	if len(matches) == 0 {
		return nil
	}

	workerCount := a.workers
	if workerCount > len(matches) {
		workerCount = len(matches)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return fmt.Errorf("create hydration pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i := range matches {
		i := i
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			items, hydrateErr := a.inningsRepo.ListByMatch(ctx, matches[i].ID)
			if hydrateErr != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("hydrate innings match=%s: %w", matches[i].ID, hydrateErr)
				}
				mu.Unlock()
				return
			}
			matches[i].Innings = items
		}); err != nil {
			workers.Done()
			return fmt.Errorf("submit hydration task: %w", err)
		}
	}

	workers.Wait()
	return firstErr
}
