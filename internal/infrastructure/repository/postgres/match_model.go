package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/radityasurya/cricket-arena/internal/domain/match"
)

type matchTableModel struct {
	ID           int64          `db:"id"`
	PublicID     string         `db:"public_id"`
	TournamentID string         `db:"tournament_public_id"`
	Team1ID      string         `db:"team1_public_id"`
	Team2ID      string         `db:"team2_public_id"`
	Venue        string         `db:"venue"`
	MatchDate    time.Time      `db:"match_date"`
	MatchTime    string         `db:"match_time"`
	Status       string         `db:"status"`
	TossWinnerID sql.NullString `db:"toss_winner_public_id"`
	TossDecision sql.NullString `db:"toss_decision"`
	Result       sql.NullString `db:"result"`
	WinnerTeamID sql.NullString `db:"winner_team_public_id"`
	Umpires      pq.StringArray `db:"umpires"`
	Referee      string         `db:"referee"`
	ManOfMatchID sql.NullString `db:"man_of_the_match_public_id"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	DeletedAt    *time.Time     `db:"deleted_at"`
}

// toDomain maps a match row to the domain entity. The row never carries
// innings; the innings repository hydrates them separately.
func (m matchTableModel) toDomain() (match.Match, error) {
	status, err := match.ParseStatus(m.Status)
	if err != nil {
		return match.Match{}, fmt.Errorf("match %s: %w", m.PublicID, err)
	}

	var tossDecision match.TossDecision
	if m.TossDecision.Valid && m.TossDecision.String != "" {
		tossDecision, err = match.ParseTossDecision(m.TossDecision.String)
		if err != nil {
			return match.Match{}, fmt.Errorf("match %s: %w", m.PublicID, err)
		}
	}

	return match.Match{
		ID:              m.PublicID,
		TournamentID:    m.TournamentID,
		Team1ID:         m.Team1ID,
		Team2ID:         m.Team2ID,
		Venue:           m.Venue,
		Date:            m.MatchDate,
		Time:            m.MatchTime,
		Status:          status,
		TossWinnerID:    m.TossWinnerID.String,
		TossDecision:    tossDecision,
		Result:          m.Result.String,
		WinnerTeamID:    m.WinnerTeamID.String,
		Umpires:         append([]string(nil), m.Umpires...),
		Referee:         m.Referee,
		ManOfTheMatchID: m.ManOfMatchID.String,
	}, nil
}

type matchInsertModel struct {
	PublicID     string         `db:"public_id"`
	TournamentID string         `db:"tournament_public_id"`
	Team1ID      string         `db:"team1_public_id"`
	Team2ID      string         `db:"team2_public_id"`
	Venue        string         `db:"venue"`
	MatchDate    time.Time      `db:"match_date"`
	MatchTime    string         `db:"match_time"`
	Status       string         `db:"status"`
	TossWinnerID *string        `db:"toss_winner_public_id"`
	TossDecision *string        `db:"toss_decision"`
	Result       *string        `db:"result"`
	WinnerTeamID *string        `db:"winner_team_public_id"`
	Umpires      pq.StringArray `db:"umpires"`
	Referee      string         `db:"referee"`
	ManOfMatchID *string        `db:"man_of_the_match_public_id"`
}

func matchToInsertModel(item match.Match) matchInsertModel {
	return matchInsertModel{
		PublicID:     item.ID,
		TournamentID: item.TournamentID,
		Team1ID:      item.Team1ID,
		Team2ID:      item.Team2ID,
		Venue:        item.Venue,
		MatchDate:    item.Date,
		MatchTime:    item.Time,
		Status:       string(item.Status),
		TossWinnerID: nullableString(item.TossWinnerID),
		TossDecision: nullableString(string(item.TossDecision)),
		Result:       nullableString(item.Result),
		WinnerTeamID: nullableString(item.WinnerTeamID),
		Umpires:      pq.StringArray(item.Umpires),
		Referee:      item.Referee,
		ManOfMatchID: nullableString(item.ManOfTheMatchID),
	}
}
