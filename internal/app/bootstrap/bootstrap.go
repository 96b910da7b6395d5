package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	sessionservice "youthhub/contexts/identity-access/session-service"
	sessioncache "youthhub/contexts/identity-access/session-service/adapters/cache"
	sessionjwt "youthhub/contexts/identity-access/session-service/adapters/jwt"
	sessionpostgres "youthhub/contexts/identity-access/session-service/adapters/postgres"
	bookmarkservice "youthhub/contexts/listings/bookmark-service"
	bookmarkpostgres "youthhub/contexts/listings/bookmark-service/adapters/postgres"
	opportunityservice "youthhub/contexts/listings/opportunity-service"
	opportunitypostgres "youthhub/contexts/listings/opportunity-service/adapters/postgres"
	opportunityerrors "youthhub/contexts/listings/opportunity-service/domain/errors"
	opportunityports "youthhub/contexts/listings/opportunity-service/ports"
	"youthhub/internal/platform/config"
	"youthhub/internal/platform/db"
	"youthhub/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	sessionModule := sessionservice.NewModule(sessionservice.Dependencies{
		Verifier: sessionjwt.NewVerifier(cfg.JWTSecret),
		Profiles: sessionpostgres.NewRepository(pg.DB, logger),
		Cache:    sessioncache.NewProfileCache(cfg.ProfileCacheTTL),
		Clock:    sessionpostgres.SystemClock{},
		Logger:   logger,
	})

	opportunityRepo := opportunitypostgres.NewRepository(pg.DB, logger)
	bookmarkModule := bookmarkservice.NewModule(bookmarkservice.Dependencies{
		Repository: bookmarkpostgres.NewRepository(pg.DB, logger),
		Catalog:    opportunityCatalog{repo: opportunityRepo},
		Clock:      bookmarkpostgres.SystemClock{},
		Logger:     logger,
	})

	opportunityModule := opportunityservice.NewModule(opportunityservice.Dependencies{
		Repository:  opportunityRepo,
		Clock:       opportunitypostgres.SystemClock{},
		IDGenerator: opportunitypostgres.UUIDGenerator{},
		Bookmarks:   bookmarkModule.Service,
		Logger:      logger,
	})

	server := httpserver.New(
		sessionModule,
		opportunityModule,
		bookmarkModule,
		cfg.CORSAllowedOrigins,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

// opportunityCatalog adapts the opportunity repository to the bookmark
// service's existence check without coupling the two contexts.
type opportunityCatalog struct {
	repo opportunityports.Repository
}

func (c opportunityCatalog) Exists(ctx context.Context, opportunityID string) (bool, error) {
	_, err := c.repo.Get(ctx, opportunityID)
	if errors.Is(err, opportunityerrors.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
