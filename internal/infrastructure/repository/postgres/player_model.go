package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/radityasurya/cricket-arena/internal/domain/player"
)

type playerTableModel struct {
	ID             int64           `db:"id"`
	PublicID       string          `db:"public_id"`
	TeamID         string          `db:"team_public_id"`
	Name           string          `db:"name"`
	JerseyNumber   int             `db:"jersey_number"`
	Role           string          `db:"role"`
	BattingStyle   string          `db:"batting_style"`
	BowlingStyle   sql.NullString  `db:"bowling_style"`
	DateOfBirth    sql.NullString  `db:"date_of_birth"`
	AvatarURL      string          `db:"avatar_url"`
	StatMatches    sql.NullInt64   `db:"stat_matches"`
	StatRuns       sql.NullInt64   `db:"stat_runs"`
	StatHighest    sql.NullInt64   `db:"stat_highest_score"`
	StatAverage    sql.NullFloat64 `db:"stat_average"`
	StatStrikeRate sql.NullFloat64 `db:"stat_strike_rate"`
	StatFifties    sql.NullInt64   `db:"stat_fifties"`
	StatHundreds   sql.NullInt64   `db:"stat_hundreds"`
	StatWickets    sql.NullInt64   `db:"stat_wickets"`
	StatBest       sql.NullString  `db:"stat_best_bowling"`
	StatBowlingAvg sql.NullFloat64 `db:"stat_bowling_average"`
	StatEconomy    sql.NullFloat64 `db:"stat_economy"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
	DeletedAt      *time.Time      `db:"deleted_at"`
}

func (m playerTableModel) toDomain() (player.Player, error) {
	role, err := player.ParseRole(m.Role)
	if err != nil {
		return player.Player{}, fmt.Errorf("player %s: %w", m.PublicID, err)
	}
	battingStyle, err := player.ParseBattingStyle(m.BattingStyle)
	if err != nil {
		return player.Player{}, fmt.Errorf("player %s: %w", m.PublicID, err)
	}

	var bowlingStyle player.BowlingStyle
	if m.BowlingStyle.Valid && m.BowlingStyle.String != "" {
		bowlingStyle, err = player.ParseBowlingStyle(m.BowlingStyle.String)
		if err != nil {
			return player.Player{}, fmt.Errorf("player %s: %w", m.PublicID, err)
		}
	}

	out := player.Player{
		ID:           m.PublicID,
		TeamID:       m.TeamID,
		Name:         m.Name,
		JerseyNumber: m.JerseyNumber,
		Role:         role,
		BattingStyle: battingStyle,
		BowlingStyle: bowlingStyle,
		DateOfBirth:  m.DateOfBirth.String,
		AvatarURL:    m.AvatarURL,
	}

	// A player with no recorded matches has no stats block at all.
	if m.StatMatches.Valid {
		out.Stats = &player.Stats{
			Matches:        int(m.StatMatches.Int64),
			Runs:           int(m.StatRuns.Int64),
			HighestScore:   int(m.StatHighest.Int64),
			Average:        m.StatAverage.Float64,
			StrikeRate:     m.StatStrikeRate.Float64,
			Fifties:        int(m.StatFifties.Int64),
			Hundreds:       int(m.StatHundreds.Int64),
			Wickets:        int(m.StatWickets.Int64),
			BestBowling:    m.StatBest.String,
			BowlingAverage: m.StatBowlingAvg.Float64,
			Economy:        m.StatEconomy.Float64,
		}
	}

	return out, nil
}

type playerInsertModel struct {
	PublicID       string   `db:"public_id"`
	TeamID         string   `db:"team_public_id"`
	Name           string   `db:"name"`
	JerseyNumber   int      `db:"jersey_number"`
	Role           string   `db:"role"`
	BattingStyle   string   `db:"batting_style"`
	BowlingStyle   *string  `db:"bowling_style"`
	DateOfBirth    *string  `db:"date_of_birth"`
	AvatarURL      string   `db:"avatar_url"`
	StatMatches    *int64   `db:"stat_matches"`
	StatRuns       *int64   `db:"stat_runs"`
	StatHighest    *int64   `db:"stat_highest_score"`
	StatAverage    *float64 `db:"stat_average"`
	StatStrikeRate *float64 `db:"stat_strike_rate"`
	StatFifties    *int64   `db:"stat_fifties"`
	StatHundreds   *int64   `db:"stat_hundreds"`
	StatWickets    *int64   `db:"stat_wickets"`
	StatBest       *string  `db:"stat_best_bowling"`
	StatBowlingAvg *float64 `db:"stat_bowling_average"`
	StatEconomy    *float64 `db:"stat_economy"`
}

func playerToInsertModel(item player.Player) playerInsertModel {
	out := playerInsertModel{
		PublicID:     item.ID,
		TeamID:       item.TeamID,
		Name:         item.Name,
		JerseyNumber: item.JerseyNumber,
		Role:         string(item.Role),
		BattingStyle: string(item.BattingStyle),
		BowlingStyle: nullableString(string(item.BowlingStyle)),
		DateOfBirth:  nullableString(item.DateOfBirth),
		AvatarURL:    item.AvatarURL,
	}

	if item.Stats != nil {
		stats := *item.Stats
		out.StatMatches = int64Ptr(stats.Matches)
		out.StatRuns = int64Ptr(stats.Runs)
		out.StatHighest = int64Ptr(stats.HighestScore)
		out.StatAverage = &stats.Average
		out.StatStrikeRate = &stats.StrikeRate
		out.StatFifties = int64Ptr(stats.Fifties)
		out.StatHundreds = int64Ptr(stats.Hundreds)
		out.StatWickets = int64Ptr(stats.Wickets)
		out.StatBest = &stats.BestBowling
		out.StatBowlingAvg = &stats.BowlingAverage
		out.StatEconomy = &stats.Economy
	}

	return out
}

func int64Ptr(v int) *int64 {
	out := int64(v)
	return &out
}
