package memory

import (
	"context"

	"github.com/radityasurya/cricket-arena/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) ListByTournament(_ context.Context, tournamentID string) ([]team.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	teams := r.store.teamsByTournament[tournamentID]
	out := make([]team.Team, 0, len(teams))
	out = append(out, teams...)

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, tournamentID, teamID string) (team.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.teamsByTournament[tournamentID] {
		if item.ID == teamID {
			return item, true, nil
		}
	}

	return team.Team{}, false, nil
}
