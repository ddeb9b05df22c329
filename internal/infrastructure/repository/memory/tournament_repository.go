package memory

import (
	"context"

	"github.com/radityasurya/cricket-arena/internal/domain/tournament"
)

type TournamentRepository struct {
	store *Store
}

func NewTournamentRepository(store *Store) *TournamentRepository {
	return &TournamentRepository{store: store}
}

func (r *TournamentRepository) List(_ context.Context) ([]tournament.Tournament, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]tournament.Tournament, 0, len(r.store.tournamentOrder))
	for _, id := range r.store.tournamentOrder {
		out = append(out, r.store.tournaments[id])
	}

	return out, nil
}

func (r *TournamentRepository) GetByID(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.tournaments[tournamentID]
	if !ok {
		return tournament.Tournament{}, false, nil
	}

	return item, true, nil
}

func (r *TournamentRepository) Create(_ context.Context, item tournament.Tournament) error {
	return r.store.createTournament(item)
}

func (r *TournamentRepository) Delete(_ context.Context, tournamentID string) error {
	r.store.deleteTournament(tournamentID)
	return nil
}
