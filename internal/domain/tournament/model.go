package tournament

import (
	"fmt"
	"strings"
	"time"
)

// Format is the playing format of a tournament.
type Format string

const (
	FormatT20    Format = "T20"
	FormatODI    Format = "ODI"
	FormatTest   Format = "Test"
	FormatT10    Format = "T10"
	FormatCustom Format = "Custom"
)

var AllFormats = map[Format]struct{}{
	FormatT20:    {},
	FormatODI:    {},
	FormatTest:   {},
	FormatT10:    {},
	FormatCustom: {},
}

func ParseFormat(value string) (Format, error) {
	format := Format(strings.TrimSpace(value))
	if _, ok := AllFormats[format]; !ok {
		return "", fmt.Errorf("invalid tournament format: %q", value)
	}
	return format, nil
}

// Status tracks where a tournament is in its lifecycle.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

var AllStatuses = map[Status]struct{}{
	StatusUpcoming:  {},
	StatusOngoing:   {},
	StatusCompleted: {},
}

func ParseStatus(value string) (Status, error) {
	status := Status(strings.TrimSpace(value))
	if _, ok := AllStatuses[status]; !ok {
		return "", fmt.Errorf("invalid tournament status: %q", value)
	}
	return status, nil
}

// Tournament is a cricket competition. Teams and matches reference it by ID
// and are owned by it: deleting a tournament removes both.
type Tournament struct {
	ID          string
	Name        string
	Format      Format
	StartDate   time.Time
	EndDate     time.Time
	Location    string
	Description string
	Status      Status
	LogoURL     string
	CreatedBy   string
}

func (t Tournament) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tournament id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("tournament name is required")
	}
	if _, ok := AllFormats[t.Format]; !ok {
		return fmt.Errorf("invalid tournament format: %s", t.Format)
	}
	if _, ok := AllStatuses[t.Status]; !ok {
		return fmt.Errorf("invalid tournament status: %s", t.Status)
	}
	if !t.EndDate.IsZero() && t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("tournament end date is before start date")
	}

	return nil
}
