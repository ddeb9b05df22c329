package memory

import (
	"context"

	"github.com/radityasurya/cricket-arena/internal/domain/player"
)

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) ListByTournament(_ context.Context, tournamentID string) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []player.Player
	for _, t := range r.store.teamsByTournament[tournamentID] {
		out = append(out, r.store.playersByTeam[t.ID]...)
	}

	return out, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	players := r.store.playersByTeam[teamID]
	out := make([]player.Player, 0, len(players))
	out = append(out, players...)

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.playersByID[playerID]
	if !ok {
		return player.Player{}, false, nil
	}

	return item, true, nil
}
