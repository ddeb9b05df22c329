package tournament

import "context"

// Repository describes tournament persistence needs from use cases.
// Delete cascades to the teams, players, and matches the tournament owns.
type Repository interface {
	List(ctx context.Context) ([]Tournament, error)
	GetByID(ctx context.Context, tournamentID string) (Tournament, bool, error)
	Create(ctx context.Context, item Tournament) error
	Delete(ctx context.Context, tournamentID string) error
}
