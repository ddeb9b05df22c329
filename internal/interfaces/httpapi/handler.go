package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/radityasurya/cricket-arena/internal/platform/logging"
	"github.com/radityasurya/cricket-arena/internal/usecase"
)

type Handler struct {
	tournamentService  *usecase.TournamentService
	playerService      *usecase.PlayerService
	matchService       *usecase.MatchService
	leaderboardService *usecase.LeaderboardService
	dashboardService   *usecase.DashboardService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	tournamentService *usecase.TournamentService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	leaderboardService *usecase.LeaderboardService,
	dashboardService *usecase.DashboardService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		tournamentService:  tournamentService,
		playerService:      playerService,
		matchService:       matchService,
		leaderboardService: leaderboardService,
		dashboardService:   dashboardService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
