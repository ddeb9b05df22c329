package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/radityasurya/cricket-arena/internal/domain/team"
	"github.com/radityasurya/cricket-arena/internal/domain/tournament"
	"github.com/radityasurya/cricket-arena/internal/usecase"
)

const tournamentDateLayout = "2006-01-02"

type createTournamentRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Format      string `json:"format" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate" validate:"required"`
	Location    string `json:"location" validate:"max=120"`
	Description string `json:"description" validate:"max=500"`
	LogoURL     string `json:"logoUrl" validate:"omitempty,url"`
	CreatedBy   string `json:"createdBy" validate:"max=120"`
}

type tournamentDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Format      string `json:"format"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	LogoURL     string `json:"logoUrl,omitempty"`
	CreatedBy   string `json:"createdBy,omitempty"`
}

type teamDTO struct {
	ID           string `json:"id"`
	TournamentID string `json:"tournamentId"`
	Name         string `json:"name"`
	ShortName    string `json:"shortName"`
	LogoURL      string `json:"logoUrl,omitempty"`
	CaptainID    string `json:"captainId,omitempty"`
	Coach        string `json:"coach,omitempty"`
}

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	tournaments, err := h.tournamentService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list tournaments failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]tournamentDTO, 0, len(tournaments))
	for _, item := range tournaments {
		items = append(items, tournamentToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournament")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	item, err := h.tournamentService.Get(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get tournament failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentToDTO(item))
}

func (h *Handler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTournament")
	defer span.End()

	var req createTournamentRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.tournamentService.Create(ctx, usecase.CreateTournamentInput{
		Name:        req.Name,
		Format:      req.Format,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create tournament failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, tournamentToDTO(item))
}

func (h *Handler) DeleteTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTournament")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	if err := h.tournamentService.Delete(ctx, tournamentID); err != nil {
		h.logger.WarnContext(ctx, "delete tournament failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": tournamentID})
}

func (h *Handler) ListTeamsByTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByTournament")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	teams, err := h.tournamentService.ListTeams(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, item := range teams {
		items = append(items, teamToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamByTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamByTournament")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	teamID := r.PathValue("teamID")
	item, err := h.tournamentService.GetTeam(ctx, tournamentID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "tournament_id", tournamentID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func tournamentToDTO(v tournament.Tournament) tournamentDTO {
	return tournamentDTO{
		ID:          v.ID,
		Name:        v.Name,
		Format:      string(v.Format),
		StartDate:   v.StartDate.Format(tournamentDateLayout),
		EndDate:     v.EndDate.Format(tournamentDateLayout),
		Location:    v.Location,
		Description: v.Description,
		Status:      string(v.Status),
		LogoURL:     v.LogoURL,
		CreatedBy:   v.CreatedBy,
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:           v.ID,
		TournamentID: v.TournamentID,
		Name:         v.Name,
		ShortName:    v.ShortName,
		LogoURL:      v.LogoURL,
		CaptainID:    v.CaptainID,
		Coach:        v.Coach,
	}
}
