package memory

import (
	"context"

	"github.com/radityasurya/cricket-arena/internal/domain/match"
)

type MatchRepository struct {
	store *Store
}

func NewMatchRepository(store *Store) *MatchRepository {
	return &MatchRepository{store: store}
}

func (r *MatchRepository) ListByTournament(_ context.Context, tournamentID string) ([]match.Match, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matches := r.store.matchesByTournament[tournamentID]
	out := make([]match.Match, 0, len(matches))
	out = append(out, matches...)

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.matchesByID[matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	return item, true, nil
}

func (r *MatchRepository) ListByStatus(_ context.Context, status match.Status) ([]match.Match, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []match.Match
	for _, id := range r.store.tournamentOrder {
		for _, item := range r.store.matchesByTournament[id] {
			if item.Status == status {
				out = append(out, item)
			}
		}
	}

	return out, nil
}
