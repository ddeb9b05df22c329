package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerTournamentRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}", handler.GetTournament)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/teams", handler.ListTeamsByTournament)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/teams/{teamID}", handler.GetTeamByTournament)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/players", handler.ListPlayersByTournament)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/players/{playerID}", handler.GetPlayerByTournament)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/matches", handler.ListMatchesByTournament)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/leaderboard/batting", handler.ListTopBatsmen)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/leaderboard/bowling", handler.ListTopBowlers)

	mux.Handle("POST /v1/tournaments", RequireAdminToken(adminToken, http.HandlerFunc(handler.CreateTournament)))
	mux.Handle("DELETE /v1/tournaments/{tournamentID}", RequireAdminToken(adminToken, http.HandlerFunc(handler.DeleteTournament)))
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches/live", handler.ListLiveMatches)
	mux.HandleFunc("GET /v1/matches/upcoming", handler.ListUpcomingMatches)
	mux.HandleFunc("GET /v1/matches/completed", handler.ListCompletedMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatchScorecard)
	mux.HandleFunc("GET /v1/matches/{matchID}/innings/{inningsID}/balls", handler.ListBallEvents)
}

func registerDashboardRoutes(mux *http.ServeMux, handler *Handler, liveSocket http.Handler) {
	mux.HandleFunc("GET /v1/dashboard", handler.GetDashboard)
	if liveSocket != nil {
		mux.Handle("GET /v1/live/ws", liveSocket)
	}
}
