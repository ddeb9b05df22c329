package httpapi

import (
	"net/http"
	"strings"
)

type dashboardDTO struct {
	Tournament     tournamentDTO       `json:"tournament"`
	TeamCount      int                 `json:"teamCount"`
	PlayerCount    int                 `json:"playerCount"`
	MatchCount     int                 `json:"matchCount"`
	LiveCount      int                 `json:"liveCount"`
	UpcomingCount  int                 `json:"upcomingCount"`
	CompletedCount int                 `json:"completedCount"`
	LiveMatches    []matchScorecardDTO `json:"liveMatches"`
	NextMatches    []matchDTO          `json:"nextMatches"`
	TopBatsmen     []playerDTO         `json:"topBatsmen"`
	TopBowlers     []playerDTO         `json:"topBowlers"`
	GeneratedAtUTC string              `json:"generatedAtUtc"`
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	tournamentID := strings.TrimSpace(r.URL.Query().Get("tournament_id"))
	summary, err := h.dashboardService.Summary(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get dashboard failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	dto := dashboardDTO{
		Tournament:     tournamentToDTO(summary.Tournament),
		TeamCount:      summary.TeamCount,
		PlayerCount:    summary.PlayerCount,
		MatchCount:     summary.MatchCount,
		LiveCount:      summary.LiveCount,
		UpcomingCount:  summary.UpcomingCount,
		CompletedCount: summary.CompletedCount,
		LiveMatches:    make([]matchScorecardDTO, 0, len(summary.LiveMatches)),
		NextMatches:    matchesToDTO(summary.NextMatches),
		TopBatsmen:     playersToDTO(summary.TopBatsmen),
		TopBowlers:     playersToDTO(summary.TopBowlers),
		GeneratedAtUTC: summary.GeneratedAtUTC,
	}
	for _, card := range summary.LiveMatches {
		dto.LiveMatches = append(dto.LiveMatches, scorecardToDTO(card))
	}

	writeSuccess(ctx, w, http.StatusOK, dto)
}
