package memory

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/radityasurya/cricket-arena/internal/domain/innings"
	"github.com/radityasurya/cricket-arena/internal/domain/match"
	"github.com/radityasurya/cricket-arena/internal/domain/player"
	"github.com/radityasurya/cricket-arena/internal/domain/team"
	"github.com/radityasurya/cricket-arena/internal/domain/tournament"
)

// Dataset is one generated tournament with everything it owns. Matches carry
// no embedded innings; the innings repository hydrates them on demand.
type Dataset struct {
	Tournament tournament.Tournament
	Teams      []team.Team
	Players    []player.Player
	Matches    []match.Match
	Innings    []innings.Innings
}

var seedTeamNames = []struct {
	Name  string
	Short string
}{
	{Name: "Royal Challengers", Short: "RCB"},
	{Name: "Super Kings", Short: "CSK"},
	{Name: "Mumbai Indians", Short: "MI"},
	{Name: "Knight Riders", Short: "KKR"},
	{Name: "Sunrisers", Short: "SRH"},
	{Name: "Delhi Capitals", Short: "DC"},
	{Name: "Punjab Kings", Short: "PBKS"},
	{Name: "Rajasthan Royals", Short: "RR"},
}

// One squad is five batsmen, two all-rounders, a wicket-keeper, and three
// bowlers, in jersey order.
var seedSquadRoles = []player.Role{
	player.RoleBatsman,
	player.RoleBatsman,
	player.RoleBatsman,
	player.RoleBatsman,
	player.RoleBatsman,
	player.RoleAllRounder,
	player.RoleAllRounder,
	player.RoleWicketKeeper,
	player.RoleBowler,
	player.RoleBowler,
	player.RoleBowler,
}

type generator struct {
	rng   *rand.Rand
	now   time.Time
	idSeq int
}

func (g *generator) nextID() string {
	g.idSeq++
	return fmt.Sprintf("id-%d", g.idSeq)
}

// GenerateTournament builds the demo dataset: one ongoing T20 tournament,
// eight fixed teams of eleven, and every pairwise fixture. The match at
// each multiple-of-four position is completed; the remainder are scheduled.
// All randomness comes from the supplied rng, so a fixed seed reproduces
// the dataset exactly.
func GenerateTournament(rng *rand.Rand, now time.Time) (Dataset, error) {
	if rng == nil {
		return Dataset{}, fmt.Errorf("rng is required")
	}
	if len(seedTeamNames) < 2 {
		return Dataset{}, fmt.Errorf("at least two teams are required to schedule matches, got %d", len(seedTeamNames))
	}

	g := &generator{rng: rng, now: now}
	tournamentID := g.nextID()

	data := Dataset{
		Tournament: tournament.Tournament{
			ID:          tournamentID,
			Name:        "Cricket Premier League 2025",
			Format:      tournament.FormatT20,
			StartDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC),
			Location:    "Multiple Venues",
			Description: "The premier T20 cricket tournament featuring the best teams and players from around the world.",
			Status:      tournament.StatusOngoing,
			LogoURL:     "/tournament-logo.png",
			CreatedBy:   "user-admin",
		},
	}

	squads := make([][]player.Player, 0, len(seedTeamNames))
	for _, entry := range seedTeamNames {
		t, squad := g.buildTeam(tournamentID, entry.Name, entry.Short)
		data.Teams = append(data.Teams, t)
		data.Players = append(data.Players, squad...)
		squads = append(squads, squad)
	}

	for i := 0; i < len(data.Teams); i++ {
		for j := i + 1; j < len(data.Teams); j++ {
			m, inns := g.buildMatch(tournamentID, len(data.Matches), data.Teams[i], data.Teams[j], squads[i], squads[j])
			if err := m.Validate(); err != nil {
				return Dataset{}, fmt.Errorf("generated match is invalid: %w", err)
			}
			data.Matches = append(data.Matches, m)
			data.Innings = append(data.Innings, inns...)
		}
	}

	return data, nil
}

func (g *generator) buildTeam(tournamentID, name, short string) (team.Team, []player.Player) {
	teamID := g.nextID()
	squad := make([]player.Player, 0, len(seedSquadRoles))
	for idx, role := range seedSquadRoles {
		squad = append(squad, g.buildPlayer(teamID, fmt.Sprintf("%s Player %d", name, idx+1), role, idx+1))
	}

	return team.Team{
		ID:           teamID,
		TournamentID: tournamentID,
		Name:         name,
		ShortName:    short,
		LogoURL:      fmt.Sprintf("/team-logos/%s.png", strings.ToLower(short)),
		CaptainID:    squad[0].ID,
		Coach:        fmt.Sprintf("%s Coach", name),
	}, squad
}

func (g *generator) buildPlayer(teamID, name string, role player.Role, jersey int) player.Player {
	bowls := role == player.RoleBowler || role == player.RoleAllRounder

	battingStyle := player.BattingRightHanded
	if g.rng.Float64() > 0.5 {
		battingStyle = player.BattingLeftHanded
	}

	var bowlingStyle player.BowlingStyle
	if bowls {
		bowlingStyle = player.BowlingRightArmFast
		if g.rng.Float64() > 0.5 {
			bowlingStyle = player.BowlingLeftArmMedium
		}
	}

	stats := &player.Stats{
		Matches:      g.rng.Intn(100),
		Runs:         g.rng.Intn(3000),
		HighestScore: g.rng.Intn(150),
		Average:      round2(g.rng.Float64() * 50),
		StrikeRate:   round2(g.rng.Float64() * 150),
		Fifties:      g.rng.Intn(20),
		Hundreds:     g.rng.Intn(10),
		BestBowling:  "0/0",
	}
	if bowls {
		stats.Wickets = g.rng.Intn(200)
		stats.BestBowling = fmt.Sprintf("%d/%d", g.rng.Intn(6), g.rng.Intn(60))
		stats.BowlingAverage = round2(g.rng.Float64() * 30)
		stats.Economy = round2(g.rng.Float64() * 10)
	}

	return player.Player{
		ID:           g.nextID(),
		TeamID:       teamID,
		Name:         name,
		JerseyNumber: jersey,
		Role:         role,
		BattingStyle: battingStyle,
		BowlingStyle: bowlingStyle,
		Stats:        stats,
	}
}

func (g *generator) buildMatch(tournamentID string, matchIndex int, team1, team2 team.Team, squad1, squad2 []player.Player) (match.Match, []innings.Innings) {
	matchID := g.nextID()
	matchDate := g.now.AddDate(0, 0, matchIndex)

	base := match.Match{
		ID:           matchID,
		TournamentID: tournamentID,
		Team1ID:      team1.ID,
		Team2ID:      team2.ID,
		Venue:        fmt.Sprintf("Stadium %d", matchIndex+1),
		Date:         matchDate,
		Time:         "14:00",
	}

	switch {
	case matchIndex%4 == 0:
		return g.buildCompletedMatch(base, team1, team2, squad1, squad2)
	case matchIndex%8 == 0:
		return g.buildLiveMatch(base, team1, squad1, squad2)
	default:
		base.Status = match.StatusScheduled
		base.Umpires = []string{"Umpire E", "Umpire F"}
		base.Referee = "Referee Z"
		return base, nil
	}
}

func (g *generator) buildCompletedMatch(base match.Match, team1, team2 team.Team, squad1, squad2 []player.Player) (match.Match, []innings.Innings) {
	team1Score := g.rng.Intn(100) + 120
	team1Wickets := g.rng.Intn(10)
	team2Score := g.rng.Intn(100) + 100
	team2Wickets := g.rng.Intn(10)

	winnerID, winnerName := team1.ID, team1.Name
	if team1Score <= team2Score {
		winnerID, winnerName = team2.ID, team2.Name
	}

	first := g.buildClosedInnings(base.ID, team1.ID, 1, team1Score, team1Wickets, squad1, squad2)
	second := g.buildClosedInnings(base.ID, team2.ID, 2, team2Score, team2Wickets, squad2, squad1)

	base.Status = match.StatusCompleted
	base.TossWinnerID = team1.ID
	if g.rng.Float64() > 0.5 {
		base.TossWinnerID = team2.ID
	}
	base.TossDecision = match.TossBat
	if g.rng.Float64() > 0.5 {
		base.TossDecision = match.TossBowl
	}
	base.Result = fmt.Sprintf("%s won by %d runs", winnerName, abs(team1Score-team2Score))
	base.WinnerTeamID = winnerID
	base.Umpires = []string{"Umpire A", "Umpire B"}
	base.Referee = "Referee X"
	base.ManOfTheMatchID = first.Batting[0].PlayerID

	return base, []innings.Innings{first, second}
}

func (g *generator) buildClosedInnings(matchID, battingTeamID string, number, score, wickets int, batting, bowling []player.Player) innings.Innings {
	inn := innings.Innings{
		ID:           g.nextID(),
		MatchID:      matchID,
		TeamID:       battingTeamID,
		Number:       number,
		TotalRuns:    score,
		TotalWickets: wickets,
		TotalOvers:   20,
		Extras: innings.Extras{
			Wides:   g.rng.Intn(10),
			NoBalls: g.rng.Intn(5),
			Byes:    g.rng.Intn(5),
			LegByes: g.rng.Intn(5),
		},
		Status: innings.StatusCompleted,
	}

	openingBowler := firstByRole(bowling, player.RoleBowler)
	for _, batter := range batting[:6] {
		dismissal := innings.DismissalBowled
		if g.rng.Float64() > 0.5 {
			dismissal = innings.DismissalCaught
		}
		inn.Batting = append(inn.Batting, innings.BattingPerformance{
			PlayerID:      batter.ID,
			Runs:          g.rng.Intn(60),
			Balls:         g.rng.Intn(40) + 10,
			Fours:         g.rng.Intn(5),
			Sixes:         g.rng.Intn(3),
			DismissalType: dismissal,
			BowlerID:      openingBowler,
			StrikeRate:    round2(g.rng.Float64() * 150),
		})
	}

	for _, bowler := range bowling {
		if bowler.Role != player.RoleBowler && bowler.Role != player.RoleAllRounder {
			continue
		}
		inn.Bowling = append(inn.Bowling, innings.BowlingPerformance{
			PlayerID: bowler.ID,
			Overs:    float64(g.rng.Intn(4) + 1),
			Maidens:  g.rng.Intn(2),
			Runs:     g.rng.Intn(40),
			Wickets:  g.rng.Intn(3),
			Economy:  round2(g.rng.Float64() * 10),
			Wides:    g.rng.Intn(3),
			NoBalls:  g.rng.Intn(2),
		})
	}

	for idx := 0; idx < wickets; idx++ {
		inn.FallOfWickets = append(inn.FallOfWickets, innings.FallOfWicket{
			WicketNumber: idx + 1,
			Score:        g.rng.Intn(score),
			Overs:        round1(g.rng.Float64() * 20),
			PlayerID:     batting[idx%len(batting)].ID,
		})
	}

	return inn
}

func (g *generator) buildLiveMatch(base match.Match, team1 team.Team, squad1, squad2 []player.Player) (match.Match, []innings.Innings) {
	team1Score := g.rng.Intn(80) + 80
	team1Wickets := g.rng.Intn(5)
	first := g.buildClosedInnings(base.ID, team1.ID, 1, team1Score, team1Wickets, squad1, squad2)

	team2Score := g.rng.Intn(50) + 30
	team2Wickets := g.rng.Intn(3)
	currentOver := round1(g.rng.Float64()*8 + 2)

	second := innings.Innings{
		ID:           g.nextID(),
		MatchID:      base.ID,
		TeamID:       base.Team2ID,
		Number:       2,
		TotalRuns:    team2Score,
		TotalWickets: team2Wickets,
		TotalOvers:   currentOver,
		Extras: innings.Extras{
			Wides:   g.rng.Intn(5),
			NoBalls: g.rng.Intn(2),
			Byes:    g.rng.Intn(3),
			LegByes: g.rng.Intn(3),
		},
		Status: innings.StatusOngoing,
	}

	openingBowler := firstByRole(squad1, player.RoleBowler)
	for idx, batter := range squad2[:4] {
		perf := innings.BattingPerformance{
			PlayerID:   batter.ID,
			Runs:       g.rng.Intn(30),
			Balls:      g.rng.Intn(20) + 5,
			Fours:      g.rng.Intn(3),
			Sixes:      g.rng.Intn(2),
			StrikeRate: round2(g.rng.Float64() * 150),
		}
		if idx == 2 {
			perf.DismissalType = innings.DismissalBowled
			if g.rng.Float64() > 0.5 {
				perf.DismissalType = innings.DismissalCaught
			}
			perf.BowlerID = openingBowler
		}
		second.Batting = append(second.Batting, perf)
	}

	attacked := 0
	for _, bowler := range squad1 {
		if bowler.Role != player.RoleBowler && bowler.Role != player.RoleAllRounder {
			continue
		}
		if attacked == 3 {
			break
		}
		attacked++
		second.Bowling = append(second.Bowling, innings.BowlingPerformance{
			PlayerID: bowler.ID,
			Overs:    float64(g.rng.Intn(3) + 1),
			Runs:     g.rng.Intn(25),
			Wickets:  g.rng.Intn(2),
			Economy:  round2(g.rng.Float64() * 8),
			Wides:    g.rng.Intn(2),
		})
	}

	for idx := 0; idx < team2Wickets; idx++ {
		second.FallOfWickets = append(second.FallOfWickets, innings.FallOfWicket{
			WicketNumber: idx + 1,
			Score:        g.rng.Intn(team2Score),
			Overs:        round1(g.rng.Float64() * currentOver),
			PlayerID:     squad2[idx%len(squad2)].ID,
		})
	}

	base.Status = match.StatusLive
	base.Date = g.now
	base.TossWinnerID = team1.ID
	base.TossDecision = match.TossBat
	base.Umpires = []string{"Umpire C", "Umpire D"}
	base.Referee = "Referee Y"

	return base, []innings.Innings{first, second}
}

func firstByRole(squad []player.Player, role player.Role) string {
	for _, p := range squad {
		if p.Role == role {
			return p.ID
		}
	}
	return ""
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
