package memory

import (
	"fmt"
	"sync"

	"github.com/radityasurya/cricket-arena/internal/domain/innings"
	"github.com/radityasurya/cricket-arena/internal/domain/match"
	"github.com/radityasurya/cricket-arena/internal/domain/player"
	"github.com/radityasurya/cricket-arena/internal/domain/team"
	"github.com/radityasurya/cricket-arena/internal/domain/tournament"
)

// Store is the shared backing for the in-memory repositories. One lock
// guards all entity maps so a tournament delete can cascade atomically.
type Store struct {
	mu sync.RWMutex

	tournaments     map[string]tournament.Tournament
	tournamentOrder []string

	teamsByTournament map[string][]team.Team
	playersByTeam     map[string][]player.Player
	playersByID       map[string]player.Player

	matchesByTournament map[string][]match.Match
	matchesByID         map[string]match.Match

	inningsByMatch map[string][]innings.Innings
	ballsByInnings map[string][]innings.BallEvent
}

func NewStore(datasets ...Dataset) *Store {
	s := &Store{
		tournaments:         make(map[string]tournament.Tournament),
		teamsByTournament:   make(map[string][]team.Team),
		playersByTeam:       make(map[string][]player.Player),
		playersByID:         make(map[string]player.Player),
		matchesByTournament: make(map[string][]match.Match),
		matchesByID:         make(map[string]match.Match),
		inningsByMatch:      make(map[string][]innings.Innings),
		ballsByInnings:      make(map[string][]innings.BallEvent),
	}

	for _, data := range datasets {
		s.addDataset(data)
	}

	return s
}

func (s *Store) addDataset(data Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tournaments[data.Tournament.ID] = data.Tournament
	s.tournamentOrder = append(s.tournamentOrder, data.Tournament.ID)

	for _, t := range data.Teams {
		s.teamsByTournament[t.TournamentID] = append(s.teamsByTournament[t.TournamentID], t)
	}
	for _, p := range data.Players {
		s.playersByTeam[p.TeamID] = append(s.playersByTeam[p.TeamID], p)
		s.playersByID[p.ID] = p
	}
	for _, m := range data.Matches {
		s.matchesByTournament[m.TournamentID] = append(s.matchesByTournament[m.TournamentID], m)
		s.matchesByID[m.ID] = m
	}
	for _, inn := range data.Innings {
		s.inningsByMatch[inn.MatchID] = append(s.inningsByMatch[inn.MatchID], inn)
	}
}

// AddBallEvents appends ball-by-ball rows for an innings.
func (s *Store) AddBallEvents(events []innings.BallEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, event := range events {
		if err := event.Validate(); err != nil {
			return fmt.Errorf("ball event is invalid: %w", err)
		}
		s.ballsByInnings[event.InningsID] = append(s.ballsByInnings[event.InningsID], event)
	}

	return nil
}

func (s *Store) createTournament(item tournament.Tournament) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tournaments[item.ID]; exists {
		return fmt.Errorf("tournament already exists: %s", item.ID)
	}
	s.tournaments[item.ID] = item
	s.tournamentOrder = append(s.tournamentOrder, item.ID)

	return nil
}

// deleteTournament removes the tournament and everything it owns.
func (s *Store) deleteTournament(tournamentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tournaments, tournamentID)
	for idx, id := range s.tournamentOrder {
		if id == tournamentID {
			s.tournamentOrder = append(s.tournamentOrder[:idx], s.tournamentOrder[idx+1:]...)
			break
		}
	}

	for _, t := range s.teamsByTournament[tournamentID] {
		for _, p := range s.playersByTeam[t.ID] {
			delete(s.playersByID, p.ID)
		}
		delete(s.playersByTeam, t.ID)
	}
	delete(s.teamsByTournament, tournamentID)

	for _, m := range s.matchesByTournament[tournamentID] {
		for _, inn := range s.inningsByMatch[m.ID] {
			delete(s.ballsByInnings, inn.ID)
		}
		delete(s.inningsByMatch, m.ID)
		delete(s.matchesByID, m.ID)
	}
	delete(s.matchesByTournament, tournamentID)
}
