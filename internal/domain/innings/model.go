package innings

import (
	"fmt"
	"strings"
)

// Status tracks where an innings is in its lifecycle.
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
		return "", fmt.Errorf("invalid innings status: %q", value)
	}
	return status, nil
}

// DismissalType is how a batsman's innings ended.
type DismissalType string

const (
	DismissalBowled      DismissalType = "bowled"
	DismissalCaught      DismissalType = "caught"
	DismissalLBW         DismissalType = "lbw"
	DismissalRunOut      DismissalType = "run out"
	DismissalStumped     DismissalType = "stumped"
	DismissalHitWicket   DismissalType = "hit wicket"
	DismissalRetiredHurt DismissalType = "retired hurt"
	DismissalNotOut      DismissalType = "not out"
)

var AllDismissalTypes = map[DismissalType]struct{}{
	DismissalBowled:      {},
	DismissalCaught:      {},
	DismissalLBW:         {},
	DismissalRunOut:      {},
	DismissalStumped:     {},
	DismissalHitWicket:   {},
	DismissalRetiredHurt: {},
	DismissalNotOut:      {},
}

func ParseDismissalType(value string) (DismissalType, error) {
	dismissal := DismissalType(strings.TrimSpace(value))
	if _, ok := AllDismissalTypes[dismissal]; !ok {
		return "", fmt.Errorf("invalid dismissal type: %q", value)
	}
	return dismissal, nil
}

// ExtraType classifies runs not credited to the batsman.
type ExtraType string

const (
	ExtraWide    ExtraType = "wide"
	ExtraNoBall  ExtraType = "no-ball"
	ExtraBye     ExtraType = "bye"
	ExtraLegBye  ExtraType = "leg-bye"
	ExtraPenalty ExtraType = "penalty"
)

var AllExtraTypes = map[ExtraType]struct{}{
	ExtraWide:    {},
	ExtraNoBall:  {},
	ExtraBye:     {},
	ExtraLegBye:  {},
	ExtraPenalty: {},
}

func ParseExtraType(value string) (ExtraType, error) {
	extra := ExtraType(strings.TrimSpace(value))
	if _, ok := AllExtraTypes[extra]; !ok {
		return "", fmt.Errorf("invalid extra type: %q", value)
	}
	return extra, nil
}

// Extras is the breakdown of runs conceded outside the bat.
type Extras struct {
	Wides   int
	NoBalls int
	Byes    int
	LegByes int
	Penalty int
}

func (e Extras) Total() int {
	return e.Wides + e.NoBalls + e.Byes + e.LegByes + e.Penalty
}

// BattingPerformance is one batsman's line in the scorecard. BowlerID and
// FielderID are set only for dismissals that involve them.
type BattingPerformance struct {
	PlayerID      string
	Runs          int
	Balls         int
	Fours         int
	Sixes         int
	StrikeRate    float64
	DismissalType DismissalType
	BowlerID      string
	FielderID     string
}

// BowlingPerformance is one bowler's line in the scorecard.
type BowlingPerformance struct {
	PlayerID string
	Overs    float64
	Maidens  int
	Runs     int
	Wickets  int
	Economy  float64
	Wides    int
	NoBalls  int
}

// FallOfWicket records the team score when a wicket fell.
type FallOfWicket struct {
	WicketNumber int
	Score        int
	Overs        float64
	PlayerID     string
}

// Innings is one team's turn at bat. TotalOvers encodes balls in the
// fractional digit: 12.3 means 12 overs and 3 balls.
type Innings struct {
	ID            string
	MatchID       string
	TeamID        string
	Number        int
	TotalRuns     int
	TotalWickets  int
	TotalOvers    float64
	Extras        Extras
	Batting       []BattingPerformance
	Bowling       []BowlingPerformance
	FallOfWickets []FallOfWicket
	Status        Status
}

func (i Innings) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("innings id is required")
	}
	if i.MatchID == "" {
		return fmt.Errorf("innings match id is required")
	}
	if i.TeamID == "" {
		return fmt.Errorf("innings team id is required")
	}
	if i.Number != 1 && i.Number != 2 {
		return fmt.Errorf("innings number must be 1 or 2, got %d", i.Number)
	}
	if i.TotalRuns < 0 || i.TotalWickets < 0 || i.TotalOvers < 0 {
		return fmt.Errorf("innings totals cannot be negative")
	}
	if i.TotalWickets > 10 {
		return fmt.Errorf("innings wickets cannot exceed 10, got %d", i.TotalWickets)
	}
	if _, ok := AllStatuses[i.Status]; !ok {
		return fmt.Errorf("invalid innings status: %s", i.Status)
	}

	return nil
}

// BallEvent is one delivery in the ball-by-ball record.
type BallEvent struct {
	ID         string
	MatchID    string
	InningsID  string
	Over       int
	Ball       int
	BatsmanID  string
	BowlerID   string
	Runs       int
	IsExtra    bool
	ExtraType  ExtraType
	ExtraRuns  int
	IsWicket   bool
	WicketType DismissalType
	PlayerID   string
	FielderID  string
	Commentary string
}

func (b BallEvent) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("ball event id is required")
	}
	if b.MatchID == "" {
		return fmt.Errorf("ball event match id is required")
	}
	if b.InningsID == "" {
		return fmt.Errorf("ball event innings id is required")
	}
	if b.Over < 0 || b.Ball < 1 || b.Ball > 6 {
		return fmt.Errorf("ball event position out of range: over=%d ball=%d", b.Over, b.Ball)
	}
	if b.IsExtra {
		if _, ok := AllExtraTypes[b.ExtraType]; !ok {
			return fmt.Errorf("invalid extra type: %s", b.ExtraType)
		}
	}
	if b.IsWicket {
		if _, ok := AllDismissalTypes[b.WicketType]; !ok {
			return fmt.Errorf("invalid wicket type: %s", b.WicketType)
		}
	}

	return nil
}
