package match

import (
	"fmt"
	"strings"
	"time"

	"github.com/radityasurya/cricket-arena/internal/domain/innings"
)

// Status tracks where a match is in its lifecycle.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

var AllStatuses = map[Status]struct{}{
	StatusScheduled: {},
	StatusLive:      {},
	StatusCompleted: {},
	StatusAbandoned: {},
}

func ParseStatus(value string) (Status, error) {
	status := Status(strings.TrimSpace(value))
	if _, ok := AllStatuses[status]; !ok {
		return "", fmt.Errorf("invalid match status: %q", value)
	}
	return status, nil
}

// TossDecision is what the toss winner elected to do.
type TossDecision string

const (
	TossBat  TossDecision = "bat"
	TossBowl TossDecision = "bowl"
)

func ParseTossDecision(value string) (TossDecision, error) {
	switch decision := TossDecision(strings.TrimSpace(value)); decision {
	case TossBat, TossBowl:
		return decision, nil
	default:
		return "", fmt.Errorf("invalid toss decision: %q", value)
	}
}

// Match is a fixture between two teams of the same tournament. Innings is
// empty until hydrated from the innings source; scheduled matches never
// have any.
type Match struct {
	ID              string
	TournamentID    string
	Team1ID         string
	Team2ID         string
	Venue           string
	Date            time.Time
	Time            string
	Status          Status
	TossWinnerID    string
	TossDecision    TossDecision
	Result          string
	WinnerTeamID    string
	Umpires         []string
	Referee         string
	ManOfTheMatchID string
	Innings         []innings.Innings
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.TournamentID == "" {
		return fmt.Errorf("match tournament id is required")
	}
	if m.Team1ID == "" || m.Team2ID == "" {
		return fmt.Errorf("match requires two teams")
	}
	if m.Team1ID == m.Team2ID {
		return fmt.Errorf("match teams must be distinct: %s", m.Team1ID)
	}
	if _, ok := AllStatuses[m.Status]; !ok {
		return fmt.Errorf("invalid match status: %s", m.Status)
	}
	if len(m.Innings) > 2 {
		return fmt.Errorf("match cannot have more than two innings, got %d", len(m.Innings))
	}

	return nil
}

// InningsByNumber finds the innings with the given number (1 or 2).
func (m Match) InningsByNumber(number int) (innings.Innings, bool) {
	for _, inn := range m.Innings {
		if inn.Number == number {
			return inn, true
		}
	}
	return innings.Innings{}, false
}

// InningsOf finds the innings batted by the given team.
func (m Match) InningsOf(teamID string) (innings.Innings, bool) {
	for _, inn := range m.Innings {
		if inn.TeamID == teamID {
			return inn, true
		}
	}
	return innings.Innings{}, false
}

// IsLive reports whether the match is currently in play.
func (m Match) IsLive() bool {
	return m.Status == StatusLive
}
