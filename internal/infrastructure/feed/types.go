package feed

import (
	"fmt"
	"time"

	"github.com/radityasurya/cricket-arena/internal/domain/innings"
	"github.com/radityasurya/cricket-arena/internal/domain/match"
	"github.com/radityasurya/cricket-arena/internal/domain/player"
	"github.com/radityasurya/cricket-arena/internal/domain/team"
	"github.com/radityasurya/cricket-arena/internal/domain/tournament"
	"github.com/radityasurya/cricket-arena/internal/usecase"
)

const wireDateLayout = "2006-01-02"

type bundleEnvelope struct {
	Tournament tournamentRow `json:"tournament"`
	Teams      []teamRow     `json:"teams"`
	Players    []playerRow   `json:"players"`
	Matches    []matchRow    `json:"matches"`
}

type tournamentRow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Format      string `json:"format"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Status      string `json:"status"`
	LogoURL     string `json:"logo_url"`
	CreatedBy   string `json:"created_by"`
}

type teamRow struct {
	ID           string `json:"id"`
	TournamentID string `json:"tournament_id"`
	Name         string `json:"name"`
	ShortName    string `json:"short_name"`
	LogoURL      string `json:"logo_url"`
	CaptainID    string `json:"captain_id"`
	Coach        string `json:"coach"`
}

type playerStatsRow struct {
	Matches        int     `json:"matches"`
	Runs           int     `json:"runs"`
	HighestScore   int     `json:"highest_score"`
	Average        float64 `json:"average"`
	StrikeRate     float64 `json:"strike_rate"`
	Fifties        int     `json:"fifties"`
	Hundreds       int     `json:"hundreds"`
	Wickets        int     `json:"wickets"`
	BestBowling    string  `json:"best_bowling"`
	BowlingAverage float64 `json:"bowling_average"`
	Economy        float64 `json:"economy"`
}

type playerRow struct {
	ID           string          `json:"id"`
	TeamID       string          `json:"team_id"`
	Name         string          `json:"name"`
	JerseyNumber int             `json:"jersey_number"`
	Role         string          `json:"role"`
	BattingStyle string          `json:"batting_style"`
	BowlingStyle string          `json:"bowling_style"`
	DateOfBirth  string          `json:"date_of_birth"`
	AvatarURL    string          `json:"avatar_url"`
	Stats        *playerStatsRow `json:"stats"`
}

type extrasRow struct {
	Wides   int `json:"wides"`
	NoBalls int `json:"no_balls"`
	Byes    int `json:"byes"`
	LegByes int `json:"leg_byes"`
	Penalty int `json:"penalty"`
}

type battingRow struct {
	PlayerID      string  `json:"player_id"`
	Runs          int     `json:"runs"`
	Balls         int     `json:"balls"`
	Fours         int     `json:"fours"`
	Sixes         int     `json:"sixes"`
	StrikeRate    float64 `json:"strike_rate"`
	DismissalType string  `json:"dismissal_type"`
	BowlerID      string  `json:"bowler_id"`
	FielderID     string  `json:"fielder_id"`
}

type bowlingRow struct {
	PlayerID string  `json:"player_id"`
	Overs    float64 `json:"overs"`
	Maidens  int     `json:"maidens"`
	Runs     int     `json:"runs"`
	Wickets  int     `json:"wickets"`
	Economy  float64 `json:"economy"`
	Wides    int     `json:"wides"`
	NoBalls  int     `json:"no_balls"`
}

type fallOfWicketRow struct {
	WicketNumber int     `json:"wicket_number"`
	Score        int     `json:"score"`
	Overs        float64 `json:"overs"`
	PlayerID     string  `json:"player_id"`
}

type inningsRow struct {
	ID            string            `json:"id"`
	MatchID       string            `json:"match_id"`
	TeamID        string            `json:"team_id"`
	Number        int               `json:"number"`
	TotalRuns     int               `json:"total_runs"`
	TotalWickets  int               `json:"total_wickets"`
	TotalOvers    float64           `json:"total_overs"`
	Extras        extrasRow         `json:"extras"`
	Batting       []battingRow      `json:"batting"`
	Bowling       []bowlingRow      `json:"bowling"`
	FallOfWickets []fallOfWicketRow `json:"fall_of_wickets"`
	Status        string            `json:"status"`
}

type matchRow struct {
	ID              string       `json:"id"`
	TournamentID    string       `json:"tournament_id"`
	Team1ID         string       `json:"team1_id"`
	Team2ID         string       `json:"team2_id"`
	Venue           string       `json:"venue"`
	Date            string       `json:"date"`
	Time            string       `json:"time"`
	Status          string       `json:"status"`
	TossWinnerID    string       `json:"toss_winner_id"`
	TossDecision    string       `json:"toss_decision"`
	Result          string       `json:"result"`
	WinnerTeamID    string       `json:"winner_team_id"`
	Umpires         []string     `json:"umpires"`
	Referee         string       `json:"referee"`
	ManOfTheMatchID string       `json:"man_of_the_match_id"`
	Innings         []inningsRow `json:"innings"`
}

func (e bundleEnvelope) toDomain() (usecase.TournamentBundle, error) {
	out := usecase.TournamentBundle{}

	item, err := e.Tournament.toDomain()
	if err != nil {
		return usecase.TournamentBundle{}, err
	}
	out.Tournament = item

	out.Teams = make([]team.Team, 0, len(e.Teams))
	for _, row := range e.Teams {
		out.Teams = append(out.Teams, row.toDomain())
	}

	out.Players = make([]player.Player, 0, len(e.Players))
	for _, row := range e.Players {
		mapped, err := row.toDomain()
		if err != nil {
			return usecase.TournamentBundle{}, err
		}
		out.Players = append(out.Players, mapped)
	}

	out.Matches = make([]match.Match, 0, len(e.Matches))
	for _, row := range e.Matches {
		mapped, err := row.toDomain()
		if err != nil {
			return usecase.TournamentBundle{}, err
		}
		out.Matches = append(out.Matches, mapped)
	}

	return out, nil
}

func (r tournamentRow) toDomain() (tournament.Tournament, error) {
	format, err := tournament.ParseFormat(r.Format)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("tournament %s: %w", r.ID, err)
	}
	status, err := tournament.ParseStatus(r.Status)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("tournament %s: %w", r.ID, err)
	}
	startDate, err := parseWireDate(r.StartDate)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("tournament %s start date: %w", r.ID, err)
	}
	endDate, err := parseWireDate(r.EndDate)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("tournament %s end date: %w", r.ID, err)
	}

	return tournament.Tournament{
		ID:          r.ID,
		Name:        r.Name,
		Format:      format,
		StartDate:   startDate,
		EndDate:     endDate,
		Location:    r.Location,
		Description: r.Description,
		Status:      status,
		LogoURL:     r.LogoURL,
		CreatedBy:   r.CreatedBy,
	}, nil
}

func (r teamRow) toDomain() team.Team {
	return team.Team{
		ID:           r.ID,
		TournamentID: r.TournamentID,
		Name:         r.Name,
		ShortName:    r.ShortName,
		LogoURL:      r.LogoURL,
		CaptainID:    r.CaptainID,
		Coach:        r.Coach,
	}
}

func (r playerRow) toDomain() (player.Player, error) {
	role, err := player.ParseRole(r.Role)
	if err != nil {
		return player.Player{}, fmt.Errorf("player %s: %w", r.ID, err)
	}
	battingStyle, err := player.ParseBattingStyle(r.BattingStyle)
	if err != nil {
		return player.Player{}, fmt.Errorf("player %s: %w", r.ID, err)
	}

	var bowlingStyle player.BowlingStyle
	if r.BowlingStyle != "" {
		bowlingStyle, err = player.ParseBowlingStyle(r.BowlingStyle)
		if err != nil {
			return player.Player{}, fmt.Errorf("player %s: %w", r.ID, err)
		}
	}

	out := player.Player{
		ID:           r.ID,
		TeamID:       r.TeamID,
		Name:         r.Name,
		JerseyNumber: r.JerseyNumber,
		Role:         role,
		BattingStyle: battingStyle,
		BowlingStyle: bowlingStyle,
		DateOfBirth:  r.DateOfBirth,
		AvatarURL:    r.AvatarURL,
	}

	if r.Stats != nil {
		out.Stats = &player.Stats{
			Matches:        r.Stats.Matches,
			Runs:           r.Stats.Runs,
			HighestScore:   r.Stats.HighestScore,
			Average:        r.Stats.Average,
			StrikeRate:     r.Stats.StrikeRate,
			Fifties:        r.Stats.Fifties,
			Hundreds:       r.Stats.Hundreds,
			Wickets:        r.Stats.Wickets,
			BestBowling:    r.Stats.BestBowling,
			BowlingAverage: r.Stats.BowlingAverage,
			Economy:        r.Stats.Economy,
		}
	}

	return out, nil
}

func (r matchRow) toDomain() (match.Match, error) {
	status, err := match.ParseStatus(r.Status)
	if err != nil {
		return match.Match{}, fmt.Errorf("match %s: %w", r.ID, err)
	}

	var tossDecision match.TossDecision
	if r.TossDecision != "" {
		tossDecision, err = match.ParseTossDecision(r.TossDecision)
		if err != nil {
			return match.Match{}, fmt.Errorf("match %s: %w", r.ID, err)
		}
	}

	date, err := parseWireDate(r.Date)
	if err != nil {
		return match.Match{}, fmt.Errorf("match %s date: %w", r.ID, err)
	}

	out := match.Match{
		ID:              r.ID,
		TournamentID:    r.TournamentID,
		Team1ID:         r.Team1ID,
		Team2ID:         r.Team2ID,
		Venue:           r.Venue,
		Date:            date,
		Time:            r.Time,
		Status:          status,
		TossWinnerID:    r.TossWinnerID,
		TossDecision:    tossDecision,
		Result:          r.Result,
		WinnerTeamID:    r.WinnerTeamID,
		Umpires:         append([]string(nil), r.Umpires...),
		Referee:         r.Referee,
		ManOfTheMatchID: r.ManOfTheMatchID,
	}

	out.Innings = make([]innings.Innings, 0, len(r.Innings))
	for _, row := range r.Innings {
		mapped, err := row.toDomain()
		if err != nil {
			return match.Match{}, fmt.Errorf("match %s: %w", r.ID, err)
		}
		out.Innings = append(out.Innings, mapped)
	}

	return out, nil
}

func (r inningsRow) toDomain() (innings.Innings, error) {
	status, err := innings.ParseStatus(r.Status)
	if err != nil {
		return innings.Innings{}, fmt.Errorf("innings %s: %w", r.ID, err)
	}

	out := innings.Innings{
		ID:           r.ID,
		MatchID:      r.MatchID,
		TeamID:       r.TeamID,
		Number:       r.Number,
		TotalRuns:    r.TotalRuns,
		TotalWickets: r.TotalWickets,
		TotalOvers:   r.TotalOvers,
		Extras: innings.Extras{
			Wides:   r.Extras.Wides,
			NoBalls: r.Extras.NoBalls,
			Byes:    r.Extras.Byes,
			LegByes: r.Extras.LegByes,
			Penalty: r.Extras.Penalty,
		},
		Status: status,
	}

	out.Batting = make([]innings.BattingPerformance, 0, len(r.Batting))
	for _, row := range r.Batting {
		var dismissal innings.DismissalType
		if row.DismissalType != "" {
			dismissal, err = innings.ParseDismissalType(row.DismissalType)
			if err != nil {
				return innings.Innings{}, fmt.Errorf("innings %s: %w", r.ID, err)
			}
		}
		out.Batting = append(out.Batting, innings.BattingPerformance{
			PlayerID:      row.PlayerID,
			Runs:          row.Runs,
			Balls:         row.Balls,
			Fours:         row.Fours,
			Sixes:         row.Sixes,
			StrikeRate:    row.StrikeRate,
			DismissalType: dismissal,
			BowlerID:      row.BowlerID,
			FielderID:     row.FielderID,
		})
	}

	out.Bowling = make([]innings.BowlingPerformance, 0, len(r.Bowling))
	for _, row := range r.Bowling {
		out.Bowling = append(out.Bowling, innings.BowlingPerformance{
			PlayerID: row.PlayerID,
			Overs:    row.Overs,
			Maidens:  row.Maidens,
			Runs:     row.Runs,
			Wickets:  row.Wickets,
			Economy:  row.Economy,
			Wides:    row.Wides,
			NoBalls:  row.NoBalls,
		})
	}

	out.FallOfWickets = make([]innings.FallOfWicket, 0, len(r.FallOfWickets))
	for _, row := range r.FallOfWickets {
		out.FallOfWickets = append(out.FallOfWickets, innings.FallOfWicket{
			WicketNumber: row.WicketNumber,
			Score:        row.Score,
			Overs:        row.Overs,
			PlayerID:     row.PlayerID,
		})
	}

	return out, nil
}

func parseWireDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}

	parsed, err := time.Parse(wireDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}

	return parsed, nil
}
