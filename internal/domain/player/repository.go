package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]Player, error)
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
}
