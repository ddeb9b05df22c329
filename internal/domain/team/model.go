package team

import "fmt"

// Team is a squad registered in a tournament. CaptainID points at one of
// the team's own players.
type Team struct {
	ID           string
	TournamentID string
	Name         string
	ShortName    string
	LogoURL      string
	CaptainID    string
	Coach        string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.TournamentID == "" {
		return fmt.Errorf("team tournament id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.ShortName == "" {
		return fmt.Errorf("team short name is required")
	}

	return nil
}
