package postgres

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/radityasurya/cricket-arena/internal/domain/innings"
	"github.com/radityasurya/cricket-arena/internal/infrastructure/repository/memory"
	"github.com/radityasurya/cricket-arena/internal/platform/logging"
	qb "github.com/radityasurya/cricket-arena/internal/platform/querybuilder"
)

// bootstrapSeedRandomSource keeps the generated fixture identical across
// restarts so that public ids stay stable for anything that bookmarked them.
const bootstrapSeedRandomSource = 20250301

// BootstrapSeed populates an empty database with a generated tournament.
// It is a no-op when any tournament row already exists, deleted or not.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, logger *logging.Logger) error {
	var count int
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM tournaments"); err != nil {
		return fmt.Errorf("count tournaments: %w", err)
	}
	if count > 0 {
		logger.InfoContext(ctx, "bootstrap seed skipped, tournaments already present")
		return nil
	}

	dataset, err := memory.GenerateTournament(rand.New(rand.NewSource(bootstrapSeedRandomSource)), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("generate seed dataset: %w", err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := seedInsertModel(ctx, tx, "tournaments", tournamentToInsertModel(dataset.Tournament)); err != nil {
		return err
	}
	for _, item := range dataset.Teams {
		if err := seedInsertModel(ctx, tx, "teams", teamToInsertModel(item)); err != nil {
			return err
		}
	}
	for _, item := range dataset.Players {
		if err := seedInsertModel(ctx, tx, "players", playerToInsertModel(item)); err != nil {
			return err
		}
	}
	for _, item := range dataset.Matches {
		if err := seedInsertModel(ctx, tx, "matches", matchToInsertModel(item)); err != nil {
			return err
		}
	}
	for _, item := range dataset.Innings {
		if err := seedInsertModel(ctx, tx, "innings", inningsToInsertModel(item)); err != nil {
			return err
		}
		if err := seedInsertInningsRows(ctx, tx, item); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	logger.InfoContext(ctx, "bootstrap seed complete",
		"teams", len(dataset.Teams),
		"players", len(dataset.Players),
		"matches", len(dataset.Matches),
	)

	return nil
}

func seedInsertModel(ctx context.Context, tx *sqlx.Tx, table string, model any) error {
	query, args, err := qb.InsertModel(table, model, "ON CONFLICT DO NOTHING")
	if err != nil {
		return fmt.Errorf("build seed insert %s query: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("seed insert %s: %w", table, err)
	}

	return nil
}

const seedInsertBattingQuery = `
	INSERT INTO batting_performances
		(innings_public_id, player_public_id, runs, balls, fours, sixes, strike_rate, dismissal_type, bowler_public_id, fielder_public_id, batting_order)
	VALUES
		(:innings_public_id, :player_public_id, :runs, :balls, :fours, :sixes, :strike_rate, :dismissal_type, :bowler_public_id, :fielder_public_id, :batting_order)
	ON CONFLICT DO NOTHING`

const seedInsertBowlingQuery = `
	INSERT INTO bowling_performances
		(innings_public_id, player_public_id, overs, maidens, runs, wickets, economy, wides, no_balls, bowling_order)
	VALUES
		(:innings_public_id, :player_public_id, :overs, :maidens, :runs, :wickets, :economy, :wides, :no_balls, :bowling_order)
	ON CONFLICT DO NOTHING`

const seedInsertFallOfWicketQuery = `
	INSERT INTO fall_of_wickets
		(innings_public_id, wicket_number, score, overs, player_public_id)
	VALUES
		(:innings_public_id, :wicket_number, :score, :overs, :player_public_id)
	ON CONFLICT DO NOTHING`

func seedInsertInningsRows(ctx context.Context, tx *sqlx.Tx, item innings.Innings) error {
	for order, batting := range item.Batting {
		args := map[string]any{
			"innings_public_id": item.ID,
			"player_public_id":  batting.PlayerID,
			"runs":              batting.Runs,
			"balls":             batting.Balls,
			"fours":             batting.Fours,
			"sixes":             batting.Sixes,
			"strike_rate":       batting.StrikeRate,
			"dismissal_type":    nullableString(string(batting.DismissalType)),
			"bowler_public_id":  nullableString(batting.BowlerID),
			"fielder_public_id": nullableString(batting.FielderID),
			"batting_order":     order,
		}
		if err := seedInsertNamed(ctx, tx, "batting_performances", seedInsertBattingQuery, args); err != nil {
			return err
		}
	}
	for order, bowling := range item.Bowling {
		args := map[string]any{
			"innings_public_id": item.ID,
			"player_public_id":  bowling.PlayerID,
			"overs":             bowling.Overs,
			"maidens":           bowling.Maidens,
			"runs":              bowling.Runs,
			"wickets":           bowling.Wickets,
			"economy":           bowling.Economy,
			"wides":             bowling.Wides,
			"no_balls":          bowling.NoBalls,
			"bowling_order":     order,
		}
		if err := seedInsertNamed(ctx, tx, "bowling_performances", seedInsertBowlingQuery, args); err != nil {
			return err
		}
	}
	for _, fall := range item.FallOfWickets {
		args := map[string]any{
			"innings_public_id": item.ID,
			"wicket_number":     fall.WicketNumber,
			"score":             fall.Score,
			"overs":             fall.Overs,
			"player_public_id":  fall.PlayerID,
		}
		if err := seedInsertNamed(ctx, tx, "fall_of_wickets", seedInsertFallOfWicketQuery, args); err != nil {
			return err
		}
	}

	return nil
}

func seedInsertNamed(ctx context.Context, tx *sqlx.Tx, table, query string, args map[string]any) error {
	bound, boundArgs, err := sqlx.Named(query, args)
	if err != nil {
		return fmt.Errorf("bind seed insert %s query: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(bound), boundArgs...); err != nil {
		return fmt.Errorf("seed insert %s: %w", table, err)
	}

	return nil
}
