package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/radityasurya/cricket-arena/internal/domain/player"
	"github.com/radityasurya/cricket-arena/internal/usecase"
)

type playerDTO struct {
	ID           string          `json:"id"`
	TeamID       string          `json:"teamId"`
	Name         string          `json:"name"`
	JerseyNumber int             `json:"jerseyNumber"`
	Role         string          `json:"role"`
	BattingStyle string          `json:"battingStyle"`
	BowlingStyle string          `json:"bowlingStyle,omitempty"`
	DateOfBirth  string          `json:"dateOfBirth,omitempty"`
	AvatarURL    string          `json:"avatarUrl,omitempty"`
	Stats        *playerStatsDTO `json:"stats,omitempty"`
}

type playerStatsDTO struct {
	Matches        int     `json:"matches"`
	Runs           int     `json:"runs"`
	HighestScore   int     `json:"highestScore"`
	Average        float64 `json:"average"`
	StrikeRate     float64 `json:"strikeRate"`
	Fifties        int     `json:"fifties"`
	Hundreds       int     `json:"hundreds"`
	Wickets        int     `json:"wickets"`
	BestBowling    string  `json:"bestBowling,omitempty"`
	BowlingAverage float64 `json:"bowlingAverage"`
	Economy        float64 `json:"economy"`
}

func (h *Handler) ListPlayersByTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByTournament")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	teamID := strings.TrimSpace(r.URL.Query().Get("team_id"))
	players, err := h.playerService.ListByTournament(ctx, tournamentID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "tournament_id", tournamentID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, item := range players {
		items = append(items, playerToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayerByTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerByTournament")
	defer span.End()

	playerID := r.PathValue("playerID")
	item, err := h.playerService.GetByID(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) ListTopBatsmen(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopBatsmen")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.leaderboardService.TopBatsmen(ctx, tournamentID, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "top batsmen failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) ListTopBowlers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopBowlers")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.leaderboardService.TopBowlers(ctx, tournamentID, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "top bowlers failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func parseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("%w: invalid limit %q", usecase.ErrInvalidInput, raw)
	}
	return limit, nil
}

func playersToDTO(players []player.Player) []playerDTO {
	items := make([]playerDTO, 0, len(players))
	for _, item := range players {
		items = append(items, playerToDTO(item))
	}
	return items
}

func playerToDTO(v player.Player) playerDTO {
	dto := playerDTO{
		ID:           v.ID,
		TeamID:       v.TeamID,
		Name:         v.Name,
		JerseyNumber: v.JerseyNumber,
		Role:         string(v.Role),
		BattingStyle: string(v.BattingStyle),
		BowlingStyle: string(v.BowlingStyle),
		DateOfBirth:  v.DateOfBirth,
		AvatarURL:    v.AvatarURL,
	}
	if v.Stats != nil {
		dto.Stats = &playerStatsDTO{
			Matches:        v.Stats.Matches,
			Runs:           v.Stats.Runs,
			HighestScore:   v.Stats.HighestScore,
			Average:        v.Stats.Average,
			StrikeRate:     v.Stats.StrikeRate,
			Fifties:        v.Stats.Fifties,
			Hundreds:       v.Stats.Hundreds,
			Wickets:        v.Stats.Wickets,
			BestBowling:    v.Stats.BestBowling,
			BowlingAverage: v.Stats.BowlingAverage,
			Economy:        v.Stats.Economy,
		}
	}
	return dto
}
