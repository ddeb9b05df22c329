package match

import "context"

// Repository describes match persistence needs from use cases. Matches come
// back without innings; the innings repository hydrates them.
type Repository interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	ListByStatus(ctx context.Context, status Status) ([]Match, error)
}
