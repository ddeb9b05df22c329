package postgres

import (
	"fmt"
	"time"

	"github.com/radityasurya/cricket-arena/internal/domain/tournament"
)

type tournamentTableModel struct {
	ID          int64      `db:"id"`
	PublicID    string     `db:"public_id"`
	Name        string     `db:"name"`
	Format      string     `db:"format"`
	StartDate   time.Time  `db:"start_date"`
	EndDate     time.Time  `db:"end_date"`
	Location    string     `db:"location"`
	Description string     `db:"description"`
	Status      string     `db:"status"`
	LogoURL     string     `db:"logo_url"`
	CreatedBy   string     `db:"created_by"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

func (m tournamentTableModel) toDomain() (tournament.Tournament, error) {
	format, err := tournament.ParseFormat(m.Format)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("tournament %s: %w", m.PublicID, err)
	}
	status, err := tournament.ParseStatus(m.Status)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("tournament %s: %w", m.PublicID, err)
	}

	return tournament.Tournament{
		ID:          m.PublicID,
		Name:        m.Name,
		Format:      format,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Location:    m.Location,
		Description: m.Description,
		Status:      status,
		LogoURL:     m.LogoURL,
		CreatedBy:   m.CreatedBy,
	}, nil
}

type tournamentInsertModel struct {
	PublicID    string    `db:"public_id"`
	Name        string    `db:"name"`
	Format      string    `db:"format"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	Location    string    `db:"location"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	LogoURL     string    `db:"logo_url"`
	CreatedBy   string    `db:"created_by"`
}

func tournamentToInsertModel(item tournament.Tournament) tournamentInsertModel {
	return tournamentInsertModel{
		PublicID:    item.ID,
		Name:        item.Name,
		Format:      string(item.Format),
		StartDate:   item.StartDate,
		EndDate:     item.EndDate,
		Location:    item.Location,
		Description: item.Description,
		Status:      string(item.Status),
		LogoURL:     item.LogoURL,
		CreatedBy:   item.CreatedBy,
	}
}
