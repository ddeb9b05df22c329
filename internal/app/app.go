package app

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/radityasurya/cricket-arena/internal/config"
	"github.com/radityasurya/cricket-arena/internal/domain/innings"
	"github.com/radityasurya/cricket-arena/internal/domain/match"
	"github.com/radityasurya/cricket-arena/internal/domain/player"
	"github.com/radityasurya/cricket-arena/internal/domain/team"
	"github.com/radityasurya/cricket-arena/internal/domain/tournament"
	"github.com/radityasurya/cricket-arena/internal/infrastructure/feed"
	cacherepo "github.com/radityasurya/cricket-arena/internal/infrastructure/repository/cache"
	"github.com/radityasurya/cricket-arena/internal/infrastructure/repository/memory"
	"github.com/radityasurya/cricket-arena/internal/infrastructure/repository/postgres"
	"github.com/radityasurya/cricket-arena/internal/interfaces/httpapi"
	"github.com/radityasurya/cricket-arena/internal/interfaces/ws"
	basecache "github.com/radityasurya/cricket-arena/internal/platform/cache"
	idgen "github.com/radityasurya/cricket-arena/internal/platform/id"
	"github.com/radityasurya/cricket-arena/internal/platform/logging"
	"github.com/radityasurya/cricket-arena/internal/platform/resilience"
	"github.com/radityasurya/cricket-arena/internal/usecase"
)

// App owns the wired service graph and its background lifecycle: the live
// refresh loop, the websocket hub, and the optional database handle.
type App struct {
	cfg     config.Config
	logger  *logging.Logger
	server  *http.Server
	hub     *ws.Hub
	refresh *usecase.LiveRefreshService
	db      *sqlx.DB
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		db             *sqlx.DB
		tournamentRepo tournament.Repository
		teamRepo       team.Repository
		playerRepo     player.Repository
		matchRepo      match.Repository
		inningsRepo    innings.Repository
	)

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		var err error
		db, err = openPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.BootstrapSeed(ctx, db, logger); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("bootstrap seed: %w", err)
		}
		tournamentRepo = postgres.NewTournamentRepository(db)
		teamRepo = postgres.NewTeamRepository(db)
		playerRepo = postgres.NewPlayerRepository(db)
		matchRepo = postgres.NewMatchRepository(db)
		inningsRepo = postgres.NewInningsRepository(db)
	default:
		rng := rand.New(rand.NewSource(cfg.DataSeed))
		dataset, err := memory.GenerateTournament(rng, time.Now().UTC())
		if err != nil {
			return nil, fmt.Errorf("generate seed dataset: %w", err)
		}
		store := memory.NewStore(dataset)
		tournamentRepo = memory.NewTournamentRepository(store)
		teamRepo = memory.NewTeamRepository(store)
		playerRepo = memory.NewPlayerRepository(store)
		matchRepo = memory.NewMatchRepository(store)
		inningsRepo = memory.NewInningsRepository(store)
	}

	if cfg.CacheEnabled {
		cacheStore := basecache.NewStore(cfg.CacheTTL)
		tournamentRepo = cacherepo.NewTournamentRepository(tournamentRepo, cacheStore)
		teamRepo = cacherepo.NewTeamRepository(teamRepo, cacheStore)
		playerRepo = cacherepo.NewPlayerRepository(playerRepo, cacheStore)
		matchRepo = cacherepo.NewMatchRepository(matchRepo, cacheStore)
		inningsRepo = cacherepo.NewInningsRepository(inningsRepo, cacheStore)
	}

	tournamentSvc := usecase.NewTournamentService(tournamentRepo, teamRepo, idgen.NewRandomGenerator())
	playerSvc := usecase.NewPlayerService(tournamentRepo, playerRepo)
	matchSvc := usecase.NewMatchService(tournamentRepo, teamRepo, matchRepo, inningsRepo)
	leaderboardSvc := usecase.NewLeaderboardService(tournamentRepo, playerRepo)

	assembler := usecase.NewAssembler(tournamentRepo, teamRepo, playerRepo, matchRepo, inningsRepo, 0)
	snapshotStore := usecase.NewSnapshotStore()
	dashboardSvc := usecase.NewDashboardService(assembler, snapshotStore)

	source := assemblerSnapshotSource(assembler, tournamentRepo)
	interval := cfg.LiveRefreshInterval
	if cfg.StorageDriver == config.StoragePostgres {
		interval = cfg.BackendRefreshInterval
	}
	if cfg.FeedEnabled {
		feedClient := feed.NewClient(feed.ClientConfig{
			BaseURL:    cfg.FeedBaseURL,
			Token:      cfg.FeedToken,
			Timeout:    cfg.FeedTimeout,
			MaxRetries: cfg.FeedMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.FeedCircuitEnabled,
				FailureThreshold: cfg.FeedCircuitFailureCount,
				OpenTimeout:      cfg.FeedCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.FeedCircuitHalfOpenMaxReq,
			},
		})
		source = feedSnapshotSource(feedClient, tournamentRepo)
		interval = cfg.BackendRefreshInterval
	}

	hub := ws.NewHub(logger)
	refresh, err := usecase.NewLiveRefreshService(source, snapshotStore, interval, logger, func(snap *usecase.Snapshot) {
		hub.Broadcast(context.Background(), liveScoreEvent{
			Event:          "live_scores",
			TournamentID:   snap.Tournament.ID,
			LiveMatchCount: snap.LiveCount(),
			GeneratedAtUTC: snap.GeneratedAt.Format("2006-01-02T15:04:05Z"),
		})
	})
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, fmt.Errorf("create live refresh service: %w", err)
	}

	handler := httpapi.NewHandler(tournamentSvc, playerSvc, matchSvc, leaderboardSvc, dashboardSvc, logger)
	liveSocket := ws.NewHandler(hub, cfg.CORSAllowedOrigins, logger)
	router := httpapi.NewRouter(handler, liveSocket, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.AdminToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		if db != nil {
			_ = db.Close()
		}
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		cfg:     cfg,
		logger:  logger,
		server:  server,
		hub:     hub,
		refresh: refresh,
		db:      db,
	}, nil
}

// Server exposes the HTTP server for the caller to run.
func (a *App) Server() *http.Server {
	return a.server
}

// Start launches the websocket hub and the refresh loop. The HTTP server
// itself is started by the caller via Server().
func (a *App) Start(ctx context.Context) {
	go a.hub.Run(ctx)
	a.refresh.Start(ctx)
}

// Shutdown stops the HTTP server first so no request observes a
// half-stopped backend, then tears down the background loops.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)

	a.refresh.Stop()
	a.hub.Stop()

	if a.db != nil {
		err = crerr.CombineErrors(err, a.db.Close())
	}

	return err
}

type liveScoreEvent struct {
	Event          string `json:"event"`
	TournamentID   string `json:"tournamentId"`
	LiveMatchCount int    `json:"liveMatchCount"`
	GeneratedAtUTC string `json:"generatedAtUtc"`
}

func assemblerSnapshotSource(assembler *usecase.Assembler, repo tournament.Repository) usecase.SnapshotSource {
	return func(ctx context.Context) (*usecase.Snapshot, error) {
		id, err := defaultTournamentID(ctx, repo)
		if err != nil {
			return nil, err
		}
		return assembler.BuildSnapshot(ctx, id)
	}
}

func feedSnapshotSource(client *feed.Client, repo tournament.Repository) usecase.SnapshotSource {
	return func(ctx context.Context) (*usecase.Snapshot, error) {
		id, err := defaultTournamentID(ctx, repo)
		if err != nil {
			return nil, err
		}
		bundle, err := client.FetchTournamentBundle(ctx, id)
		if err != nil {
			return nil, err
		}
		return usecase.NewSnapshot(bundle, time.Now().UTC()), nil
	}
}

// The refresh loop tracks one tournament at a time: the first ongoing one,
// falling back to the first listed.
func defaultTournamentID(ctx context.Context, repo tournament.Repository) (string, error) {
	items, err := repo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list tournaments: %w", err)
	}
	if len(items) == 0 {
		return "", fmt.Errorf("no tournaments available")
	}
	for _, item := range items {
		if item.Status == tournament.StatusOngoing {
			return item.ID, nil
		}
	}
	return items[0].ID, nil
}

func openPostgres(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.ConnectContext(ctx, "postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
