package innings

import "context"

// Repository describes innings persistence needs from use cases. Match rows
// arrive without innings; callers hydrate them through ListByMatch.
type Repository interface {
	ListByMatch(ctx context.Context, matchID string) ([]Innings, error)
	ListBallEvents(ctx context.Context, inningsID string) ([]BallEvent, error)
}
