package cache

import (
	"context"

	"github.com/radityasurya/cricket-arena/internal/domain/innings"
	"github.com/radityasurya/cricket-arena/internal/domain/match"
	"github.com/radityasurya/cricket-arena/internal/domain/player"
	"github.com/radityasurya/cricket-arena/internal/domain/team"
	"github.com/radityasurya/cricket-arena/internal/domain/tournament"
	basecache "github.com/radityasurya/cricket-arena/internal/platform/cache"
)

// The wrappers below front the persistence repositories with a TTL cache.
// Reads go through GetOrLoad so concurrent misses on one key collapse into
// a single repository call. Writes invalidate the affected keys.

type TournamentRepository struct {
	next  tournament.Repository
	cache *basecache.Store
}

func NewTournamentRepository(next tournament.Repository, cache *basecache.Store) *TournamentRepository {
	return &TournamentRepository{next: next, cache: cache}
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	v, err := r.cache.GetOrLoad(ctx, "tournament:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]tournament.Tournament(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]tournament.Tournament)
	return append([]tournament.Tournament(nil), items...), nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	key := "tournament:id:" + tournamentID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		return cachedTournamentByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return tournament.Tournament{}, false, err
	}

	cached, _ := v.(cachedTournamentByID)
	return cached.value, cached.exists, nil
}

func (r *TournamentRepository) Create(ctx context.Context, item tournament.Tournament) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}

	r.cache.Delete(ctx, "tournament:list")
	r.cache.Delete(ctx, "tournament:id:"+item.ID)
	return nil
}

func (r *TournamentRepository) Delete(ctx context.Context, tournamentID string) error {
	if err := r.next.Delete(ctx, tournamentID); err != nil {
		return err
	}

	// Cascade removes teams, players, and matches too, so clear everything
	// keyed under this tournament.
	r.cache.Delete(ctx, "tournament:list")
	r.cache.Delete(ctx, "tournament:id:"+tournamentID)
	r.cache.DeletePrefix(ctx, "team:")
	r.cache.DeletePrefix(ctx, "player:")
	r.cache.DeletePrefix(ctx, "match:")
	r.cache.DeletePrefix(ctx, "innings:")
	return nil
}

type cachedTournamentByID struct {
	value  tournament.Tournament
	exists bool
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByTournament(ctx context.Context, tournamentID string) ([]team.Team, error) {
	key := "team:list:" + tournamentID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTournament(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, tournamentID, teamID string) (team.Team, bool, error) {
	key := "team:id:" + tournamentID + ":" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, tournamentID, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) ListByTournament(ctx context.Context, tournamentID string) ([]player.Player, error) {
	key := "player:list:" + tournamentID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTournament(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	key := "player:team:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTeam(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	key := "player:id:" + playerID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByID)
	return cached.value, cached.exists, nil
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) ListByTournament(ctx context.Context, tournamentID string) ([]match.Match, error) {
	key := "match:list:" + tournamentID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTournament(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		return append([]match.Match(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return append([]match.Match(nil), items...), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	key := "match:id:" + matchID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return cachedMatchByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return match.Match{}, false, err
	}

	cached, _ := v.(cachedMatchByID)
	return cached.value, cached.exists, nil
}

// ListByStatus is left uncached: live status flips between refresh ticks
// and a stale answer here would freeze the polling state machine.
func (r *MatchRepository) ListByStatus(ctx context.Context, status match.Status) ([]match.Match, error) {
	return r.next.ListByStatus(ctx, status)
}

type cachedMatchByID struct {
	value  match.Match
	exists bool
}

type InningsRepository struct {
	next  innings.Repository
	cache *basecache.Store
}

func NewInningsRepository(next innings.Repository, cache *basecache.Store) *InningsRepository {
	return &InningsRepository{next: next, cache: cache}
}

// ListByMatch is uncached for the same reason as ListByStatus: innings
// totals move ball by ball while a match is live.
func (r *InningsRepository) ListByMatch(ctx context.Context, matchID string) ([]innings.Innings, error) {
	return r.next.ListByMatch(ctx, matchID)
}

func (r *InningsRepository) ListBallEvents(ctx context.Context, inningsID string) ([]innings.BallEvent, error) {
	key := "innings:balls:" + inningsID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListBallEvents(ctx, inningsID)
		if err != nil {
			return nil, err
		}
		return append([]innings.BallEvent(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]innings.BallEvent)
	return append([]innings.BallEvent(nil), items...), nil
}
