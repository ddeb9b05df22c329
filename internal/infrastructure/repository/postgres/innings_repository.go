package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/radityasurya/cricket-arena/internal/domain/innings"
	qb "github.com/radityasurya/cricket-arena/internal/platform/querybuilder"
)

type InningsRepository struct {
	db *sqlx.DB
}

func NewInningsRepository(db *sqlx.DB) *InningsRepository {
	return &InningsRepository{db: db}
}

// ListByMatch returns the match's innings with batting, bowling, and fall
// of wickets hydrated through targeted follow-up selects.
func (r *InningsRepository) ListByMatch(ctx context.Context, matchID string) ([]innings.Innings, error) {
	query, args, err := qb.Select("*").From("innings").
		Where(
			qb.Eq("match_public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select innings by match query: %w", err)
	}

	var rows []inningsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select innings by match: %w", err)
	}

	out := make([]innings.Innings, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("map innings row: %w", err)
		}

		item.Batting, err = r.listBatting(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		item.Bowling, err = r.listBowling(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		item.FallOfWickets, err = r.listFallOfWickets(ctx, item.ID)
		if err != nil {
			return nil, err
		}

		out = append(out, item)
	}

	return out, nil
}

func (r *InningsRepository) listBatting(ctx context.Context, inningsID string) ([]innings.BattingPerformance, error) {
	query, args, err := qb.Select("*").From("batting_performances").
		Where(
			qb.Eq("innings_public_id", inningsID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("batting_order").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select batting query: %w", err)
	}

	var rows []battingRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select batting performances: %w", err)
	}

	out := make([]innings.BattingPerformance, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("map batting row: %w", err)
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *InningsRepository) listBowling(ctx context.Context, inningsID string) ([]innings.BowlingPerformance, error) {
	query, args, err := qb.Select("*").From("bowling_performances").
		Where(
			qb.Eq("innings_public_id", inningsID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("bowling_order").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select bowling query: %w", err)
	}

	var rows []bowlingRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select bowling performances: %w", err)
	}

	out := make([]innings.BowlingPerformance, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *InningsRepository) listFallOfWickets(ctx context.Context, inningsID string) ([]innings.FallOfWicket, error) {
	query, args, err := qb.Select("*").From("fall_of_wickets").
		Where(
			qb.Eq("innings_public_id", inningsID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("wicket_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fall of wickets query: %w", err)
	}

	var rows []fallOfWicketRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fall of wickets: %w", err)
	}

	out := make([]innings.FallOfWicket, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *InningsRepository) ListBallEvents(ctx context.Context, inningsID string) ([]innings.BallEvent, error) {
	query, args, err := qb.Select("*").From("ball_events").
		Where(
			qb.Eq("innings_public_id", inningsID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("over_number", "ball_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select ball events query: %w", err)
	}

	var rows []ballEventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select ball events: %w", err)
	}

	out := make([]innings.BallEvent, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("map ball event row: %w", err)
		}
		out = append(out, item)
	}

	return out, nil
}
