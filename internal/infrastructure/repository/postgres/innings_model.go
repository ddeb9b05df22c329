package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/radityasurya/cricket-arena/internal/domain/innings"
)

type inningsTableModel struct {
	ID            int64      `db:"id"`
	PublicID      string     `db:"public_id"`
	MatchID       string     `db:"match_public_id"`
	TeamID        string     `db:"team_public_id"`
	Number        int        `db:"number"`
	TotalRuns     int        `db:"total_runs"`
	TotalWickets  int        `db:"total_wickets"`
	TotalOvers    float64    `db:"total_overs"`
	ExtrasWides   int        `db:"extras_wides"`
	ExtrasNoBalls int        `db:"extras_no_balls"`
	ExtrasByes    int        `db:"extras_byes"`
	ExtrasLegByes int        `db:"extras_leg_byes"`
	ExtrasPenalty int        `db:"extras_penalty"`
	Status        string     `db:"status"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

func (m inningsTableModel) toDomain() (innings.Innings, error) {
	status, err := innings.ParseStatus(m.Status)
	if err != nil {
		return innings.Innings{}, fmt.Errorf("innings %s: %w", m.PublicID, err)
	}

	return innings.Innings{
		ID:           m.PublicID,
		MatchID:      m.MatchID,
		TeamID:       m.TeamID,
		Number:       m.Number,
		TotalRuns:    m.TotalRuns,
		TotalWickets: m.TotalWickets,
		TotalOvers:   m.TotalOvers,
		Extras: innings.Extras{
			Wides:   m.ExtrasWides,
			NoBalls: m.ExtrasNoBalls,
			Byes:    m.ExtrasByes,
			LegByes: m.ExtrasLegByes,
			Penalty: m.ExtrasPenalty,
		},
		Status: status,
	}, nil
}

type inningsInsertModel struct {
	PublicID      string  `db:"public_id"`
	MatchID       string  `db:"match_public_id"`
	TeamID        string  `db:"team_public_id"`
	Number        int     `db:"number"`
	TotalRuns     int     `db:"total_runs"`
	TotalWickets  int     `db:"total_wickets"`
	TotalOvers    float64 `db:"total_overs"`
	ExtrasWides   int     `db:"extras_wides"`
	ExtrasNoBalls int     `db:"extras_no_balls"`
	ExtrasByes    int     `db:"extras_byes"`
	ExtrasLegByes int     `db:"extras_leg_byes"`
	ExtrasPenalty int     `db:"extras_penalty"`
	Status        string  `db:"status"`
}

func inningsToInsertModel(item innings.Innings) inningsInsertModel {
	return inningsInsertModel{
		PublicID:      item.ID,
		MatchID:       item.MatchID,
		TeamID:        item.TeamID,
		Number:        item.Number,
		TotalRuns:     item.TotalRuns,
		TotalWickets:  item.TotalWickets,
		TotalOvers:    item.TotalOvers,
		ExtrasWides:   item.Extras.Wides,
		ExtrasNoBalls: item.Extras.NoBalls,
		ExtrasByes:    item.Extras.Byes,
		ExtrasLegByes: item.Extras.LegByes,
		ExtrasPenalty: item.Extras.Penalty,
		Status:        string(item.Status),
	}
}

type battingRowModel struct {
	ID            int64           `db:"id"`
	InningsID     string          `db:"innings_public_id"`
	PlayerID      string          `db:"player_public_id"`
	Runs          int             `db:"runs"`
	Balls         int             `db:"balls"`
	Fours         int             `db:"fours"`
	Sixes         int             `db:"sixes"`
	StrikeRate    float64         `db:"strike_rate"`
	DismissalType sql.NullString  `db:"dismissal_type"`
	BowlerID      sql.NullString  `db:"bowler_public_id"`
	FielderID     sql.NullString  `db:"fielder_public_id"`
	BattingOrder  int             `db:"batting_order"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
	DeletedAt     *time.Time      `db:"deleted_at"`
}

func (m battingRowModel) toDomain() (innings.BattingPerformance, error) {
	var dismissal innings.DismissalType
	if m.DismissalType.Valid && m.DismissalType.String != "" {
		parsed, err := innings.ParseDismissalType(m.DismissalType.String)
		if err != nil {
			return innings.BattingPerformance{}, fmt.Errorf("batting row for %s: %w", m.PlayerID, err)
		}
		dismissal = parsed
	}

	return innings.BattingPerformance{
		PlayerID:      m.PlayerID,
		Runs:          m.Runs,
		Balls:         m.Balls,
		Fours:         m.Fours,
		Sixes:         m.Sixes,
		StrikeRate:    m.StrikeRate,
		DismissalType: dismissal,
		BowlerID:      m.BowlerID.String,
		FielderID:     m.FielderID.String,
	}, nil
}

type bowlingRowModel struct {
	ID           int64      `db:"id"`
	InningsID    string     `db:"innings_public_id"`
	PlayerID     string     `db:"player_public_id"`
	Overs        float64    `db:"overs"`
	Maidens      int        `db:"maidens"`
	Runs         int        `db:"runs"`
	Wickets      int        `db:"wickets"`
	Economy      float64    `db:"economy"`
	Wides        int        `db:"wides"`
	NoBalls      int        `db:"no_balls"`
	BowlingOrder int        `db:"bowling_order"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

func (m bowlingRowModel) toDomain() innings.BowlingPerformance {
	return innings.BowlingPerformance{
		PlayerID: m.PlayerID,
		Overs:    m.Overs,
		Maidens:  m.Maidens,
		Runs:     m.Runs,
		Wickets:  m.Wickets,
		Economy:  m.Economy,
		Wides:    m.Wides,
		NoBalls:  m.NoBalls,
	}
}

type fallOfWicketRowModel struct {
	ID           int64      `db:"id"`
	InningsID    string     `db:"innings_public_id"`
	WicketNumber int        `db:"wicket_number"`
	Score        int        `db:"score"`
	Overs        float64    `db:"overs"`
	PlayerID     string     `db:"player_public_id"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

func (m fallOfWicketRowModel) toDomain() innings.FallOfWicket {
	return innings.FallOfWicket{
		WicketNumber: m.WicketNumber,
		Score:        m.Score,
		Overs:        m.Overs,
		PlayerID:     m.PlayerID,
	}
}

type ballEventTableModel struct {
	ID         int64          `db:"id"`
	PublicID   string         `db:"public_id"`
	MatchID    string         `db:"match_public_id"`
	InningsID  string         `db:"innings_public_id"`
	OverNumber int            `db:"over_number"`
	BallNumber int            `db:"ball_number"`
	BatsmanID  string         `db:"batsman_public_id"`
	BowlerID   string         `db:"bowler_public_id"`
	Runs       int            `db:"runs"`
	IsExtra    bool           `db:"is_extra"`
	ExtraType  sql.NullString `db:"extra_type"`
	ExtraRuns  int            `db:"extra_runs"`
	IsWicket   bool           `db:"is_wicket"`
	WicketType sql.NullString `db:"wicket_type"`
	OutPlayer  sql.NullString `db:"out_player_public_id"`
	FielderID  sql.NullString `db:"fielder_public_id"`
	Commentary string         `db:"commentary"`
	CreatedAt  time.Time      `db:"created_at"`
	DeletedAt  *time.Time     `db:"deleted_at"`
}

func (m ballEventTableModel) toDomain() (innings.BallEvent, error) {
	out := innings.BallEvent{
		ID:         m.PublicID,
		MatchID:    m.MatchID,
		InningsID:  m.InningsID,
		Over:       m.OverNumber,
		Ball:       m.BallNumber,
		BatsmanID:  m.BatsmanID,
		BowlerID:   m.BowlerID,
		Runs:       m.Runs,
		IsExtra:    m.IsExtra,
		ExtraRuns:  m.ExtraRuns,
		IsWicket:   m.IsWicket,
		PlayerID:   m.OutPlayer.String,
		FielderID:  m.FielderID.String,
		Commentary: m.Commentary,
	}

	if m.ExtraType.Valid && m.ExtraType.String != "" {
		extra, err := innings.ParseExtraType(m.ExtraType.String)
		if err != nil {
			return innings.BallEvent{}, fmt.Errorf("ball event %s: %w", m.PublicID, err)
		}
		out.ExtraType = extra
	}
	if m.WicketType.Valid && m.WicketType.String != "" {
		wicket, err := innings.ParseDismissalType(m.WicketType.String)
		if err != nil {
			return innings.BallEvent{}, fmt.Errorf("ball event %s: %w", m.PublicID, err)
		}
		out.WicketType = wicket
	}

	return out, nil
}
