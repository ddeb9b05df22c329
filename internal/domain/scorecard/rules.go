package scorecard

import (
	"fmt"
	"math"
	"strconv"

	"github.com/radityasurya/cricket-arena/internal/domain/innings"
	"github.com/radityasurya/cricket-arena/internal/domain/match"
)

// chaseBallBudget is the T20 allotment the chase countdown works against.
const chaseBallBudget = 120

// TeamScore renders the team's score line for a match, "-" when the team
// has not batted yet.
func TeamScore(m match.Match, teamID string) string {
	inn, ok := m.InningsOf(teamID)
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%d/%d", inn.TotalRuns, inn.TotalWickets)
}

// OversDisplay renders the overs suffix shown next to a score, with the
// overs value verbatim: 20 -> "(20 ov)", 12.3 -> "(12.3 ov)".
func OversDisplay(totalOvers float64) string {
	return fmt.Sprintf("(%s ov)", strconv.FormatFloat(totalOvers, 'f', -1, 64))
}

// RunRate is runs per over to two decimals. Zero overs means no rate yet.
func RunRate(runs int, overs float64) string {
	if overs == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(runs)/overs)
}

// RequiredRunRate is the rate the chasing side needs over the remaining
// overs. A finished chase or an exhausted allotment reads "0.00".
func RequiredRunRate(target, currentScore int, totalOvers, oversPlayed float64) string {
	oversRemaining := totalOvers - oversPlayed
	runsRequired := target - currentScore
	if oversRemaining <= 0 || runsRequired <= 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(runsRequired)/oversRemaining)
}

// ChaseRequirement summarizes the second-innings chase. It applies only
// while a match has both innings and the second is in progress; otherwise
// the second return is false. Balls bowled are decoded from the overs
// notation, where the fractional digit counts balls within the over.
func ChaseRequirement(m match.Match) (string, bool) {
	first, ok := m.InningsByNumber(1)
	if !ok {
		return "", false
	}
	second, ok := m.InningsByNumber(2)
	if !ok || second.Status != innings.StatusOngoing {
		return "", false
	}

	required := first.TotalRuns - second.TotalRuns + 1
	if required <= 0 {
		return "Match won", true
	}

	wholeOvers := math.Floor(second.TotalOvers)
	ballsBowled := int(wholeOvers)*6 + int(math.Round((second.TotalOvers-wholeOvers)*10))
	ballsRemaining := chaseBallBudget - ballsBowled

	return fmt.Sprintf("Need %d runs from %d balls", required, ballsRemaining), true
}
