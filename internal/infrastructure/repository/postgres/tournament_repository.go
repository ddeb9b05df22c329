package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/radityasurya/cricket-arena/internal/domain/tournament"
	qb "github.com/radityasurya/cricket-arena/internal/platform/querybuilder"
)

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	query, args, err := qb.Select("*").From("tournaments").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select tournaments query: %w", err)
	}

	var rows []tournamentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tournaments: %w", err)
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("map tournament row: %w", err)
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	query, args, err := qb.Select("*").From("tournaments").
		Where(
			qb.Eq("public_id", tournamentID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("build select tournament query: %w", err)
	}

	var row tournamentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("select tournament: %w", err)
	}

	item, err := row.toDomain()
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("map tournament row: %w", err)
	}

	return item, true, nil
}

func (r *TournamentRepository) Create(ctx context.Context, item tournament.Tournament) error {
	query, args, err := qb.InsertModel("tournaments", tournamentToInsertModel(item), "")
	if err != nil {
		return fmt.Errorf("build create tournament query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create tournament: %w", err)
	}

	return nil
}

// Delete soft-deletes the tournament and everything it owns in one
// transaction, so readers never see a half-removed tournament.
func (r *TournamentRepository) Delete(ctx context.Context, tournamentID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx delete tournament: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.Update("tournaments").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", tournamentID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete tournament query: %w", err)
	}
	result, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...)
	if err != nil {
		return fmt.Errorf("delete tournament: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected delete tournament: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete tournament: not found")
	}

	cascades := []struct {
		table string
		where qb.Condition
	}{
		{table: "players", where: qb.Expr("team_public_id IN (SELECT public_id FROM teams WHERE tournament_public_id = ?)", tournamentID)},
		{table: "teams", where: qb.Eq("tournament_public_id", tournamentID)},
		{table: "batting_performances", where: qb.Expr("innings_public_id IN (SELECT public_id FROM innings WHERE match_public_id IN (SELECT public_id FROM matches WHERE tournament_public_id = ?))", tournamentID)},
		{table: "bowling_performances", where: qb.Expr("innings_public_id IN (SELECT public_id FROM innings WHERE match_public_id IN (SELECT public_id FROM matches WHERE tournament_public_id = ?))", tournamentID)},
		{table: "fall_of_wickets", where: qb.Expr("innings_public_id IN (SELECT public_id FROM innings WHERE match_public_id IN (SELECT public_id FROM matches WHERE tournament_public_id = ?))", tournamentID)},
		{table: "ball_events", where: qb.Expr("match_public_id IN (SELECT public_id FROM matches WHERE tournament_public_id = ?)", tournamentID)},
		{table: "innings", where: qb.Expr("match_public_id IN (SELECT public_id FROM matches WHERE tournament_public_id = ?)", tournamentID)},
		{table: "matches", where: qb.Eq("tournament_public_id", tournamentID)},
	}
	for _, cascade := range cascades {
		query, args, err := qb.Update(cascade.table).
			SetExpr("deleted_at", "NOW()").
			Where(cascade.where, qb.IsNull("deleted_at")).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build cascade delete %s query: %w", cascade.table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("cascade delete %s: %w", cascade.table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete tournament tx: %w", err)
	}

	return nil
}
