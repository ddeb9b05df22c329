package httpapi

import (
	"net/http"

	"github.com/radityasurya/cricket-arena/internal/domain/innings"
	"github.com/radityasurya/cricket-arena/internal/domain/match"
	"github.com/radityasurya/cricket-arena/internal/usecase"
)

type matchDTO struct {
	ID              string `json:"id"`
	TournamentID    string `json:"tournamentId"`
	Team1ID         string `json:"team1Id"`
	Team2ID         string `json:"team2Id"`
	Venue           string `json:"venue,omitempty"`
	Date            string `json:"date"`
	Time            string `json:"time,omitempty"`
	Status          string `json:"status"`
	TossWinnerID    string `json:"tossWinnerId,omitempty"`
	TossDecision    string `json:"tossDecision,omitempty"`
	Result          string `json:"result,omitempty"`
	WinnerTeamID    string `json:"winnerTeamId,omitempty"`
	Umpires         []string `json:"umpires,omitempty"`
	Referee         string `json:"referee,omitempty"`
	ManOfTheMatchID string `json:"manOfTheMatchId,omitempty"`
}

type matchScorecardDTO struct {
	Match           matchDTO            `json:"match"`
	Team1Score      string              `json:"team1Score"`
	Team2Score      string              `json:"team2Score"`
	Innings         []inningsSummaryDTO `json:"innings"`
	RequiredRunRate string              `json:"requiredRunRate,omitempty"`
	ChaseSummary    string              `json:"chaseSummary,omitempty"`
	ChaseActive     bool                `json:"chaseActive"`
}

type inningsSummaryDTO struct {
	ID            string                  `json:"id"`
	TeamID        string                  `json:"teamId"`
	Number        int                     `json:"number"`
	Score         string                  `json:"score"`
	Overs         string                  `json:"overs"`
	RunRate       string                  `json:"runRate"`
	TotalRuns     int                     `json:"totalRuns"`
	TotalWickets  int                     `json:"totalWickets"`
	TotalOvers    float64                 `json:"totalOvers"`
	Status        string                  `json:"status"`
	Extras        extrasDTO               `json:"extras"`
	Batting       []battingPerformanceDTO `json:"batting,omitempty"`
	Bowling       []bowlingPerformanceDTO `json:"bowling,omitempty"`
	FallOfWickets []fallOfWicketDTO       `json:"fallOfWickets,omitempty"`
}

type extrasDTO struct {
	Wides   int `json:"wides"`
	NoBalls int `json:"noBalls"`
	Byes    int `json:"byes"`
	LegByes int `json:"legByes"`
	Penalty int `json:"penalty"`
	Total   int `json:"total"`
}

type battingPerformanceDTO struct {
	PlayerID      string  `json:"playerId"`
	Runs          int     `json:"runs"`
	Balls         int     `json:"balls"`
	Fours         int     `json:"fours"`
	Sixes         int     `json:"sixes"`
	StrikeRate    float64 `json:"strikeRate"`
	DismissalType string  `json:"dismissalType,omitempty"`
	BowlerID      string  `json:"bowlerId,omitempty"`
	FielderID     string  `json:"fielderId,omitempty"`
}

type bowlingPerformanceDTO struct {
	PlayerID string  `json:"playerId"`
	Overs    float64 `json:"overs"`
	Maidens  int     `json:"maidens"`
	Runs     int     `json:"runs"`
	Wickets  int     `json:"wickets"`
	Economy  float64 `json:"economy"`
	Wides    int     `json:"wides"`
	NoBalls  int     `json:"noBalls"`
}

type fallOfWicketDTO struct {
	WicketNumber int     `json:"wicketNumber"`
	Score        int     `json:"score"`
	Overs        float64 `json:"overs"`
	PlayerID     string  `json:"playerId"`
}

type ballEventDTO struct {
	ID         string `json:"id"`
	MatchID    string `json:"matchId"`
	InningsID  string `json:"inningsId"`
	Over       int    `json:"over"`
	Ball       int    `json:"ball"`
	BatsmanID  string `json:"batsmanId"`
	BowlerID   string `json:"bowlerId"`
	Runs       int    `json:"runs"`
	IsExtra    bool   `json:"isExtra"`
	ExtraType  string `json:"extraType,omitempty"`
	ExtraRuns  int    `json:"extraRuns,omitempty"`
	IsWicket   bool   `json:"isWicket"`
	WicketType string `json:"wicketType,omitempty"`
	PlayerID   string `json:"playerId,omitempty"`
	FielderID  string `json:"fielderId,omitempty"`
	Commentary string `json:"commentary,omitempty"`
}

func (h *Handler) ListMatchesByTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesByTournament")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	matches, err := h.matchService.ListByTournament(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(matches))
}

func (h *Handler) GetMatchScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchScorecard")
	defer span.End()

	matchID := r.PathValue("matchID")
	card, err := h.matchService.Scorecard(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get scorecard failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scorecardToDTO(card))
}

func (h *Handler) ListLiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveMatches")
	defer span.End()

	cards, err := h.matchService.ListLive(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list live matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchScorecardDTO, 0, len(cards))
	for _, card := range cards {
		items = append(items, scorecardToDTO(card))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListUpcomingMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUpcomingMatches")
	defer span.End()

	matches, err := h.matchService.ListUpcoming(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list upcoming matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(matches))
}

func (h *Handler) ListCompletedMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompletedMatches")
	defer span.End()

	cards, err := h.matchService.ListCompleted(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list completed matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(cards))
}

func (h *Handler) ListBallEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBallEvents")
	defer span.End()

	matchID := r.PathValue("matchID")
	inningsID := r.PathValue("inningsID")
	events, err := h.matchService.ListBallEvents(ctx, matchID, inningsID)
	if err != nil {
		h.logger.WarnContext(ctx, "list ball events failed", "match_id", matchID, "innings_id", inningsID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]ballEventDTO, 0, len(events))
	for _, event := range events {
		items = append(items, ballEventToDTO(event))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func matchesToDTO(matches []match.Match) []matchDTO {
	items := make([]matchDTO, 0, len(matches))
	for _, item := range matches {
		items = append(items, matchToDTO(item))
	}
	return items
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:              v.ID,
		TournamentID:    v.TournamentID,
		Team1ID:         v.Team1ID,
		Team2ID:         v.Team2ID,
		Venue:           v.Venue,
		Date:            v.Date.Format(tournamentDateLayout),
		Time:            v.Time,
		Status:          string(v.Status),
		TossWinnerID:    v.TossWinnerID,
		TossDecision:    string(v.TossDecision),
		Result:          v.Result,
		WinnerTeamID:    v.WinnerTeamID,
		Umpires:         append([]string(nil), v.Umpires...),
		Referee:         v.Referee,
		ManOfTheMatchID: v.ManOfTheMatchID,
	}
}

func scorecardToDTO(card usecase.MatchScorecard) matchScorecardDTO {
	out := matchScorecardDTO{
		Match:           matchToDTO(card.Match),
		Team1Score:      card.Team1Score,
		Team2Score:      card.Team2Score,
		RequiredRunRate: card.RequiredRunRate,
		ChaseSummary:    card.ChaseSummary,
		ChaseActive:     card.ChaseActive,
	}
	out.Innings = make([]inningsSummaryDTO, 0, len(card.Innings))
	for _, summary := range card.Innings {
		out.Innings = append(out.Innings, inningsSummaryToDTO(summary))
	}
	return out
}

func inningsSummaryToDTO(summary usecase.InningsSummary) inningsSummaryDTO {
	inn := summary.Innings
	dto := inningsSummaryDTO{
		ID:           inn.ID,
		TeamID:       inn.TeamID,
		Number:       inn.Number,
		Score:        summary.Score,
		Overs:        summary.Overs,
		RunRate:      summary.RunRate,
		TotalRuns:    inn.TotalRuns,
		TotalWickets: inn.TotalWickets,
		TotalOvers:   inn.TotalOvers,
		Status:       string(inn.Status),
		Extras: extrasDTO{
			Wides:   inn.Extras.Wides,
			NoBalls: inn.Extras.NoBalls,
			Byes:    inn.Extras.Byes,
			LegByes: inn.Extras.LegByes,
			Penalty: inn.Extras.Penalty,
			Total:   inn.Extras.Total(),
		},
	}

	for _, b := range inn.Batting {
		dto.Batting = append(dto.Batting, battingPerformanceDTO{
			PlayerID:      b.PlayerID,
			Runs:          b.Runs,
			Balls:         b.Balls,
			Fours:         b.Fours,
			Sixes:         b.Sixes,
			StrikeRate:    b.StrikeRate,
			DismissalType: string(b.DismissalType),
			BowlerID:      b.BowlerID,
			FielderID:     b.FielderID,
		})
	}
	for _, b := range inn.Bowling {
		dto.Bowling = append(dto.Bowling, bowlingPerformanceDTO{
			PlayerID: b.PlayerID,
			Overs:    b.Overs,
			Maidens:  b.Maidens,
			Runs:     b.Runs,
			Wickets:  b.Wickets,
			Economy:  b.Economy,
			Wides:    b.Wides,
			NoBalls:  b.NoBalls,
		})
	}
	for _, f := range inn.FallOfWickets {
		dto.FallOfWickets = append(dto.FallOfWickets, fallOfWicketDTO{
			WicketNumber: f.WicketNumber,
			Score:        f.Score,
			Overs:        f.Overs,
			PlayerID:     f.PlayerID,
		})
	}

	return dto
}

func ballEventToDTO(v innings.BallEvent) ballEventDTO {
	return ballEventDTO{
		ID:         v.ID,
		MatchID:    v.MatchID,
		InningsID:  v.InningsID,
		Over:       v.Over,
		Ball:       v.Ball,
		BatsmanID:  v.BatsmanID,
		BowlerID:   v.BowlerID,
		Runs:       v.Runs,
		IsExtra:    v.IsExtra,
		ExtraType:  string(v.ExtraType),
		ExtraRuns:  v.ExtraRuns,
		IsWicket:   v.IsWicket,
		WicketType: string(v.WicketType),
		PlayerID:   v.PlayerID,
		FielderID:  v.FielderID,
		Commentary: v.Commentary,
	}
}
