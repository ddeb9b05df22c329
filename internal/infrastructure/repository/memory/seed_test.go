package memory

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/radityasurya/cricket-arena/internal/domain/match"
	"github.com/radityasurya/cricket-arena/internal/domain/player"
)

func TestGenerateTournament(t *testing.T) {
	now := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	data, err := GenerateTournament(rand.New(rand.NewSource(42)), now)
	if err != nil {
		t.Fatalf("generate tournament: %v", err)
	}

	if err := data.Tournament.Validate(); err != nil {
		t.Fatalf("generated tournament is invalid: %v", err)
	}

	if got, want := len(data.Teams), 8; got != want {
		t.Fatalf("unexpected team count: got=%d want=%d", got, want)
	}
	if got, want := len(data.Matches), 28; got != want {
		t.Fatalf("unexpected match count: got=%d want=%d", got, want)
	}

	t.Run("squad composition", func(t *testing.T) {
		byTeam := make(map[string][]player.Player)
		for _, p := range data.Players {
			if err := p.Validate(); err != nil {
				t.Fatalf("generated player is invalid: %v", err)
			}
			byTeam[p.TeamID] = append(byTeam[p.TeamID], p)
		}

		for _, tm := range data.Teams {
			squad := byTeam[tm.ID]
			if got, want := len(squad), 11; got != want {
				t.Fatalf("unexpected squad size for %s: got=%d want=%d", tm.Name, got, want)
			}
			if tm.CaptainID != squad[0].ID {
				t.Fatalf("captain should be the first player: got=%s want=%s", tm.CaptainID, squad[0].ID)
			}

			roleCount := make(map[player.Role]int)
			for _, p := range squad {
				roleCount[p.Role]++
			}
			if roleCount[player.RoleBatsman] != 5 || roleCount[player.RoleAllRounder] != 2 ||
				roleCount[player.RoleWicketKeeper] != 1 || roleCount[player.RoleBowler] != 3 {
				t.Fatalf("unexpected role composition for %s: %v", tm.Name, roleCount)
			}
		}
	})

	t.Run("match outcomes", func(t *testing.T) {
		statusCount := make(map[match.Status]int)
		for idx, m := range data.Matches {
			statusCount[m.Status]++
			if len(m.Innings) != 0 {
				t.Fatalf("match %d should carry no embedded innings, got %d", idx, len(m.Innings))
			}
			if idx%4 == 0 && m.Status != match.StatusCompleted {
				t.Fatalf("match %d should be completed, got %s", idx, m.Status)
			}
		}

		// Every multiple of 8 is also a multiple of 4, so the live branch is
		// never taken with a 28-match schedule.
		if got, want := statusCount[match.StatusCompleted], 7; got != want {
			t.Fatalf("unexpected completed count: got=%d want=%d", got, want)
		}
		if got := statusCount[match.StatusLive]; got != 0 {
			t.Fatalf("unexpected live count: got=%d want=0", got)
		}
		if got, want := statusCount[match.StatusScheduled], 21; got != want {
			t.Fatalf("unexpected scheduled count: got=%d want=%d", got, want)
		}
	})

	t.Run("completed matches have two innings", func(t *testing.T) {
		inningsByMatch := make(map[string]int)
		for _, inn := range data.Innings {
			if err := inn.Validate(); err != nil {
				t.Fatalf("generated innings is invalid: %v", err)
			}
			inningsByMatch[inn.MatchID]++
		}

		for idx, m := range data.Matches {
			want := 0
			if m.Status == match.StatusCompleted {
				want = 2
			}
			if got := inningsByMatch[m.ID]; got != want {
				t.Fatalf("unexpected innings count for match %d (%s): got=%d want=%d", idx, m.Status, got, want)
			}
		}
	})

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		again, err := GenerateTournament(rand.New(rand.NewSource(42)), now)
		if err != nil {
			t.Fatalf("generate tournament: %v", err)
		}
		if !reflect.DeepEqual(data, again) {
			t.Fatalf("same seed should reproduce the dataset")
		}
	})
}

func TestStoreDeleteCascades(t *testing.T) {
	data, err := GenerateTournament(rand.New(rand.NewSource(7)), time.Now())
	if err != nil {
		t.Fatalf("generate tournament: %v", err)
	}

	store := NewStore(data)
	ctx := t.Context()

	tournaments := NewTournamentRepository(store)
	if err := tournaments.Delete(ctx, data.Tournament.ID); err != nil {
		t.Fatalf("delete tournament: %v", err)
	}

	if _, ok, _ := tournaments.GetByID(ctx, data.Tournament.ID); ok {
		t.Fatalf("tournament should be gone")
	}

	teams, err := NewTeamRepository(store).ListByTournament(ctx, data.Tournament.ID)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 0 {
		t.Fatalf("teams should cascade: got=%d want=0", len(teams))
	}

	if _, ok, _ := NewPlayerRepository(store).GetByID(ctx, data.Players[0].ID); ok {
		t.Fatalf("players should cascade")
	}
	if _, ok, _ := NewMatchRepository(store).GetByID(ctx, data.Matches[0].ID); ok {
		t.Fatalf("matches should cascade")
	}

	inns, err := NewInningsRepository(store).ListByMatch(ctx, data.Matches[0].ID)
	if err != nil {
		t.Fatalf("list innings: %v", err)
	}
	if len(inns) != 0 {
		t.Fatalf("innings should cascade: got=%d want=0", len(inns))
	}
}
