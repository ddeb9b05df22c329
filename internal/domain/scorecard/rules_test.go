package scorecard

import (
	"testing"

	"github.com/radityasurya/cricket-arena/internal/domain/innings"
	"github.com/radityasurya/cricket-arena/internal/domain/match"
)

func TestTeamScore(t *testing.T) {
	m := match.Match{
		ID:           "m1",
		TournamentID: "tr1",
		Team1ID:      "t1",
		Team2ID:      "t2",
		Status:       match.StatusLive,
		Innings: []innings.Innings{
			{ID: "i1", MatchID: "m1", TeamID: "t1", Number: 1, TotalRuns: 185, TotalWickets: 6, TotalOvers: 20, Status: innings.StatusCompleted},
		},
	}

	if got := TeamScore(m, "t1"); got != "185/6" {
		t.Fatalf("unexpected score: got=%q want=%q", got, "185/6")
	}
	if got := TeamScore(m, "t2"); got != "-" {
		t.Fatalf("unexpected score for side yet to bat: got=%q want=%q", got, "-")
	}
}

func TestOversDisplay(t *testing.T) {
	tests := []struct {
		overs float64
		want  string
	}{
		{20, "(20 ov)"},
		{12.3, "(12.3 ov)"},
		{0, "(0 ov)"},
		{19.5, "(19.5 ov)"},
	}

	for _, tt := range tests {
		if got := OversDisplay(tt.overs); got != tt.want {
			t.Fatalf("unexpected display for %v: got=%q want=%q", tt.overs, got, tt.want)
		}
	}
}

func TestRunRate(t *testing.T) {
	tests := []struct {
		name  string
		runs  int
		overs float64
		want  string
	}{
		{name: "no balls bowled", runs: 0, overs: 0, want: "0.00"},
		{name: "runs before first over", runs: 10, overs: 0, want: "0.00"},
		{name: "full t20 innings", runs: 120, overs: 20, want: "6.00"},
		{name: "mid innings", runs: 93, overs: 12, want: "7.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RunRate(tt.runs, tt.overs); got != tt.want {
				t.Fatalf("unexpected run rate: got=%q want=%q", got, tt.want)
			}
		})
	}
}

func TestRequiredRunRate(t *testing.T) {
	tests := []struct {
		name        string
		target      int
		current     int
		totalOvers  float64
		oversPlayed float64
		want        string
	}{
		{name: "halfway chase", target: 180, current: 90, totalOvers: 20, oversPlayed: 10, want: "9.00"},
		{name: "target reached", target: 100, current: 100, totalOvers: 20, oversPlayed: 10, want: "0.00"},
		{name: "target passed", target: 100, current: 104, totalOvers: 20, oversPlayed: 10, want: "0.00"},
		{name: "overs exhausted", target: 180, current: 90, totalOvers: 20, oversPlayed: 20, want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RequiredRunRate(tt.target, tt.current, tt.totalOvers, tt.oversPlayed)
			if got != tt.want {
				t.Fatalf("unexpected required run rate: got=%q want=%q", got, tt.want)
			}
		})
	}
}

func TestChaseRequirement(t *testing.T) {
	base := func() match.Match {
		return match.Match{
			ID:           "m1",
			TournamentID: "tr1",
			Team1ID:      "t1",
			Team2ID:      "t2",
			Status:       match.StatusLive,
			Innings: []innings.Innings{
				{ID: "i1", MatchID: "m1", TeamID: "t1", Number: 1, TotalRuns: 150, TotalWickets: 7, TotalOvers: 20, Status: innings.StatusCompleted},
				{ID: "i2", MatchID: "m1", TeamID: "t2", Number: 2, TotalRuns: 100, TotalWickets: 3, TotalOvers: 12.3, Status: innings.StatusOngoing},
			},
		}
	}

	t.Run("mid chase", func(t *testing.T) {
		msg, ok := ChaseRequirement(base())
		if !ok {
			t.Fatalf("expected chase message")
		}
		if want := "Need 51 runs from 45 balls"; msg != want {
			t.Fatalf("unexpected message: got=%q want=%q", msg, want)
		}
	})

	t.Run("chase complete", func(t *testing.T) {
		m := base()
		m.Innings[1].TotalRuns = 151

		msg, ok := ChaseRequirement(m)
		if !ok {
			t.Fatalf("expected chase message")
		}
		if want := "Match won"; msg != want {
			t.Fatalf("unexpected message: got=%q want=%q", msg, want)
		}
	})

	t.Run("no second innings", func(t *testing.T) {
		m := base()
		m.Innings = m.Innings[:1]

		if _, ok := ChaseRequirement(m); ok {
			t.Fatalf("expected no chase message before second innings")
		}
	})

	t.Run("second innings finished", func(t *testing.T) {
		m := base()
		m.Innings[1].Status = innings.StatusCompleted

		if _, ok := ChaseRequirement(m); ok {
			t.Fatalf("expected no chase message after innings close")
		}
	})
}
