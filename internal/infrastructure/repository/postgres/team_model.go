package postgres

import (
	"database/sql"
	"time"

	"github.com/radityasurya/cricket-arena/internal/domain/team"
)

type teamTableModel struct {
	ID           int64          `db:"id"`
	PublicID     string         `db:"public_id"`
	TournamentID string         `db:"tournament_public_id"`
	Name         string         `db:"name"`
	ShortName    string         `db:"short_name"`
	LogoURL      string         `db:"logo_url"`
	CaptainID    sql.NullString `db:"captain_public_id"`
	Coach        string         `db:"coach"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	DeletedAt    *time.Time     `db:"deleted_at"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:           m.PublicID,
		TournamentID: m.TournamentID,
		Name:         m.Name,
		ShortName:    m.ShortName,
		LogoURL:      m.LogoURL,
		CaptainID:    m.CaptainID.String,
		Coach:        m.Coach,
	}
}

type teamInsertModel struct {
	PublicID     string  `db:"public_id"`
	TournamentID string  `db:"tournament_public_id"`
	Name         string  `db:"name"`
	ShortName    string  `db:"short_name"`
	LogoURL      string  `db:"logo_url"`
	CaptainID    *string `db:"captain_public_id"`
	Coach        string  `db:"coach"`
}

func teamToInsertModel(item team.Team) teamInsertModel {
	return teamInsertModel{
		PublicID:     item.ID,
		TournamentID: item.TournamentID,
		Name:         item.Name,
		ShortName:    item.ShortName,
		LogoURL:      item.LogoURL,
		CaptainID:    nullableString(item.CaptainID),
		Coach:        item.Coach,
	}
}
