package memory

import (
	"context"

	"github.com/radityasurya/cricket-arena/internal/domain/innings"
)

type InningsRepository struct {
	store *Store
}

func NewInningsRepository(store *Store) *InningsRepository {
	return &InningsRepository{store: store}
}

func (r *InningsRepository) ListByMatch(_ context.Context, matchID string) ([]innings.Innings, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := r.store.inningsByMatch[matchID]
	out := make([]innings.Innings, 0, len(items))
	out = append(out, items...)

	return out, nil
}

func (r *InningsRepository) ListBallEvents(_ context.Context, inningsID string) ([]innings.BallEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := r.store.ballsByInnings[inningsID]
	out := make([]innings.BallEvent, 0, len(items))
	out = append(out, items...)

	return out, nil
}
