package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/radityasurya/cricket-arena/internal/domain/match"
	"github.com/radityasurya/cricket-arena/internal/domain/player"
	"github.com/radityasurya/cricket-arena/internal/domain/team"
	"github.com/radityasurya/cricket-arena/internal/domain/tournament"
)

func TestTournamentModelRoundTrip(t *testing.T) {
	item := tournament.Tournament{
		ID:          "id-1",
		Name:        "Cricket Premier League 2025",
		Format:      tournament.FormatT20,
		StartDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC),
		Location:    "Multiple Venues",
		Description: "League stage",
		Status:      tournament.StatusOngoing,
		LogoURL:     "/logos/cpl.png",
		CreatedBy:   "user-admin",
	}

	insert := tournamentToInsertModel(item)
	row := tournamentTableModel{
		PublicID:    insert.PublicID,
		Name:        insert.Name,
		Format:      insert.Format,
		StartDate:   insert.StartDate,
		EndDate:     insert.EndDate,
		Location:    insert.Location,
		Description: insert.Description,
		Status:      insert.Status,
		LogoURL:     insert.LogoURL,
		CreatedBy:   insert.CreatedBy,
	}

	got, err := row.toDomain()
	if err != nil {
		t.Fatalf("toDomain: unexpected error: %v", err)
	}
	if got != item {
		t.Fatalf("round trip mismatch: got=%+v want=%+v", got, item)
	}
}

func TestTeamModelKeepsForeignKeys(t *testing.T) {
	item := team.Team{
		ID:           "id-10",
		TournamentID: "id-1",
		Name:         "Mumbai Indians",
		ShortName:    "MI",
		LogoURL:      "/team-logos/mi.png",
		CaptainID:    "id-11",
		Coach:        "Mumbai Indians Coach",
	}

	insert := teamToInsertModel(item)
	if insert.TournamentID != "id-1" {
		t.Fatalf("tournament fk: got=%q want=%q", insert.TournamentID, "id-1")
	}
	if insert.CaptainID == nil || *insert.CaptainID != "id-11" {
		t.Fatalf("captain fk: got=%v want id-11", insert.CaptainID)
	}

	row := teamTableModel{
		PublicID:     insert.PublicID,
		TournamentID: insert.TournamentID,
		Name:         insert.Name,
		ShortName:    insert.ShortName,
		LogoURL:      insert.LogoURL,
		CaptainID:    sql.NullString{String: *insert.CaptainID, Valid: true},
		Coach:        insert.Coach,
	}
	if got := row.toDomain(); got != item {
		t.Fatalf("round trip mismatch: got=%+v want=%+v", got, item)
	}
}

func TestMatchModelKeepsForeignKeys(t *testing.T) {
	item := match.Match{
		ID:              "id-40",
		TournamentID:    "id-1",
		Team1ID:         "id-10",
		Team2ID:         "id-20",
		Venue:           "Wankhede Stadium",
		Date:            time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
		Time:            "19:30",
		Status:          match.StatusCompleted,
		TossWinnerID:    "id-10",
		TossDecision:    match.TossBat,
		Result:          "Mumbai Indians won by 24 runs",
		WinnerTeamID:    "id-10",
		Umpires:         []string{"Umpire A", "Umpire B"},
		Referee:         "Referee X",
		ManOfTheMatchID: "id-11",
	}

	insert := matchToInsertModel(item)
	if insert.TournamentID != "id-1" || insert.Team1ID != "id-10" || insert.Team2ID != "id-20" {
		t.Fatalf("match fks: got tournament=%q team1=%q team2=%q", insert.TournamentID, insert.Team1ID, insert.Team2ID)
	}

	row := matchTableModel{
		PublicID:     insert.PublicID,
		TournamentID: insert.TournamentID,
		Team1ID:      insert.Team1ID,
		Team2ID:      insert.Team2ID,
		Venue:        insert.Venue,
		MatchDate:    insert.MatchDate,
		MatchTime:    insert.MatchTime,
		Status:       insert.Status,
		TossWinnerID: nullStringFromPtr(insert.TossWinnerID),
		TossDecision: nullStringFromPtr(insert.TossDecision),
		Result:       nullStringFromPtr(insert.Result),
		WinnerTeamID: nullStringFromPtr(insert.WinnerTeamID),
		Umpires:      insert.Umpires,
		Referee:      insert.Referee,
		ManOfMatchID: nullStringFromPtr(insert.ManOfMatchID),
	}
	got, err := row.toDomain()
	if err != nil {
		t.Fatalf("toDomain: unexpected error: %v", err)
	}
	if got.Team1ID != item.Team1ID || got.Team2ID != item.Team2ID || got.TournamentID != item.TournamentID {
		t.Fatalf("round trip fks: got=%+v", got)
	}
	if len(got.Umpires) != 2 || got.Umpires[0] != "Umpire A" {
		t.Fatalf("umpires: got=%v", got.Umpires)
	}
}

func nullStringFromPtr(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func TestPlayerModelStatsPresence(t *testing.T) {
	t.Run("player with stats keeps them", func(t *testing.T) {
		item := player.Player{
			ID:           "id-11",
			TeamID:       "id-10",
			Name:         "Mumbai Indians Player 1",
			JerseyNumber: 1,
			Role:         player.RoleBatsman,
			BattingStyle: player.BattingRightHanded,
			BowlingStyle: player.BowlingRightArmMedium,
			Stats: &player.Stats{
				Matches: 5,
				Runs:    230,
				Wickets: 2,
			},
		}

		insert := playerToInsertModel(item)
		if insert.TeamID != "id-10" {
			t.Fatalf("team fk: got=%q want=%q", insert.TeamID, "id-10")
		}
		if insert.StatMatches == nil || *insert.StatMatches != 5 {
			t.Fatalf("stat matches: got=%v want=5", insert.StatMatches)
		}

		row := playerTableModel{
			PublicID:     insert.PublicID,
			TeamID:       insert.TeamID,
			Name:         insert.Name,
			JerseyNumber: insert.JerseyNumber,
			Role:         insert.Role,
			BattingStyle: insert.BattingStyle,
			BowlingStyle: nullStringFromPtr(insert.BowlingStyle),
			StatMatches:  sql.NullInt64{Int64: 5, Valid: true},
			StatRuns:     sql.NullInt64{Int64: 230, Valid: true},
			StatWickets:  sql.NullInt64{Int64: 2, Valid: true},
		}
		got, err := row.toDomain()
		if err != nil {
			t.Fatalf("toDomain: unexpected error: %v", err)
		}
		if got.Stats == nil {
			t.Fatal("stats dropped on round trip")
		}
		if got.Stats.Runs != 230 || got.Stats.Wickets != 2 {
			t.Fatalf("stats: got=%+v", got.Stats)
		}
	})

	t.Run("player without stats has no stats block", func(t *testing.T) {
		row := playerTableModel{
			PublicID:     "id-12",
			TeamID:       "id-10",
			Name:         "Mumbai Indians Player 2",
			JerseyNumber: 2,
			Role:         string(player.RoleBowler),
			BattingStyle: string(player.BattingRightHanded),
			BowlingStyle: sql.NullString{String: string(player.BowlingRightArmFast), Valid: true},
		}
		got, err := row.toDomain()
		if err != nil {
			t.Fatalf("toDomain: unexpected error: %v", err)
		}
		if got.Stats != nil {
			t.Fatalf("expected nil stats, got=%+v", got.Stats)
		}
	})
}
