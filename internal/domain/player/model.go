package player

import (
	"fmt"
	"strings"
)

// Role is the playing role of a cricketer.
type Role string

const (
	RoleBatsman      Role = "batsman"
	RoleBowler       Role = "bowler"
	RoleAllRounder   Role = "all-rounder"
	RoleWicketKeeper Role = "wicket-keeper"
)

var AllRoles = map[Role]struct{}{
	RoleBatsman:      {},
	RoleBowler:       {},
	RoleAllRounder:   {},
	RoleWicketKeeper: {},
}

func ParseRole(value string) (Role, error) {
	role := Role(strings.TrimSpace(value))
	if _, ok := AllRoles[role]; !ok {
		return "", fmt.Errorf("invalid player role: %q", value)
	}
	return role, nil
}

type BattingStyle string

const (
	BattingRightHanded BattingStyle = "right-handed"
	BattingLeftHanded  BattingStyle = "left-handed"
)

func ParseBattingStyle(value string) (BattingStyle, error) {
	switch style := BattingStyle(strings.TrimSpace(value)); style {
	case BattingRightHanded, BattingLeftHanded:
		return style, nil
	default:
		return "", fmt.Errorf("invalid batting style: %q", value)
	}
}

type BowlingStyle string

const (
	BowlingRightArmFast    BowlingStyle = "right-arm fast"
	BowlingRightArmMedium  BowlingStyle = "right-arm medium"
	BowlingRightArmOffSpin BowlingStyle = "right-arm off-spin"
	BowlingRightArmLegSpin BowlingStyle = "right-arm leg-spin"
	BowlingLeftArmFast     BowlingStyle = "left-arm fast"
	BowlingLeftArmMedium   BowlingStyle = "left-arm medium"
	BowlingLeftArmOrthodox BowlingStyle = "left-arm orthodox"
	BowlingLeftArmChinaman BowlingStyle = "left-arm unorthodox"
)

var AllBowlingStyles = map[BowlingStyle]struct{}{
	BowlingRightArmFast:    {},
	BowlingRightArmMedium:  {},
	BowlingRightArmOffSpin: {},
	BowlingRightArmLegSpin: {},
	BowlingLeftArmFast:     {},
	BowlingLeftArmMedium:   {},
	BowlingLeftArmOrthodox: {},
	BowlingLeftArmChinaman: {},
}

func ParseBowlingStyle(value string) (BowlingStyle, error) {
	style := BowlingStyle(strings.TrimSpace(value))
	if _, ok := AllBowlingStyles[style]; !ok {
		return "", fmt.Errorf("invalid bowling style: %q", value)
	}
	return style, nil
}

// Stats is a player's aggregate career record. Absent for players with no
// recorded matches.
type Stats struct {
	Matches        int
	Runs           int
	HighestScore   int
	Average        float64
	StrikeRate     float64
	Fifties        int
	Hundreds       int
	Wickets        int
	BestBowling    string
	BowlingAverage float64
	Economy        float64
}

// Player is a squad member. JerseyNumber is unique within the team.
type Player struct {
	ID           string
	TeamID       string
	Name         string
	JerseyNumber int
	Role         Role
	BattingStyle BattingStyle
	BowlingStyle BowlingStyle
	DateOfBirth  string
	AvatarURL    string
	Stats        *Stats
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.JerseyNumber <= 0 {
		return fmt.Errorf("player jersey number must be greater than zero")
	}
	if _, ok := AllRoles[p.Role]; !ok {
		return fmt.Errorf("invalid player role: %s", p.Role)
	}
	switch p.BattingStyle {
	case BattingRightHanded, BattingLeftHanded:
	default:
		return fmt.Errorf("invalid batting style: %s", p.BattingStyle)
	}
	if p.BowlingStyle != "" {
		if _, ok := AllBowlingStyles[p.BowlingStyle]; !ok {
			return fmt.Errorf("invalid bowling style: %s", p.BowlingStyle)
		}
	}

	return nil
}

// RunsScored reads career runs treating missing stats as zero.
func (p Player) RunsScored() int {
	if p.Stats == nil {
		return 0
	}
	return p.Stats.Runs
}

// WicketsTaken reads career wickets treating missing stats as zero.
func (p Player) WicketsTaken() int {
	if p.Stats == nil {
		return 0
	}
	return p.Stats.Wickets
}
