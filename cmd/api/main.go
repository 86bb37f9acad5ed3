// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the postgraduate administration HTTP API.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Load the role catalogue.
//  7. Wire HTTP handlers.
//  8. Serve until SIGINT or SIGTERM, then drain.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/postgrado/internal/api"
	"github.com/taibuivan/postgrado/internal/auth"
	"github.com/taibuivan/postgrado/internal/cohort"
	"github.com/taibuivan/postgrado/internal/identity"
	"github.com/taibuivan/postgrado/internal/payment"
	"github.com/taibuivan/postgrado/internal/petition"
	"github.com/taibuivan/postgrado/internal/platform/config"
	"github.com/taibuivan/postgrado/internal/platform/constants"
	"github.com/taibuivan/postgrado/internal/platform/middleware"
	"github.com/taibuivan/postgrado/internal/platform/migration"
	pgstore "github.com/taibuivan/postgrado/internal/platform/postgres"
	redisstore "github.com/taibuivan/postgrado/internal/platform/redis"
	"github.com/taibuivan/postgrado/internal/platform/sec"
)

// startupTimeout bounds connecting and migrating, so misconfiguration fails fast.
const startupTimeout = 30 * time.Second

func main() {
	log := newLogger(slog.LevelInfo)

	if err := run(log); err != nil {
		log.Error("service_failed", slog.Any("error", err))
		os.Exit(1)
	}
	log.Info("server_stopped")
}

func run(log *slog.Logger) error {
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── Configuration ─────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Server.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}
	log.Info("configuration_loaded",
		slog.String("environment", cfg.Server.Environment),
		slog.String("port", cfg.Server.Port),
	)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), startupTimeout)
	defer cancelStartup()

	// ── Storage ───────────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	cache, err := redisstore.NewClient(startupCtx, cfg.Cache, log)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer func() {
		if err := cache.Close(); err != nil {
			log.Error("redis_close_failed", slog.Any("error", err))
		}
	}()

	if err := migration.NewRunner(cfg.Database, log).Up(); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	identityStore := identity.NewPostgresStore(pool)
	catalog, err := identity.LoadCatalog(startupCtx, identityStore)
	if err != nil {
		return fmt.Errorf("load role catalogue: %w", err)
	}

	// ── Domain Wiring ─────────────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.Token.Secret, cfg.Token.Issuer)
	if err != nil {
		return fmt.Errorf("initialize token service: %w", err)
	}
	gate := middleware.NewGate(auth.NewAuthenticator(tokens, identityStore))

	authService := auth.NewService(
		identityStore,
		auth.NewRevocationRepository(cache),
		tokens,
		catalog,
		auth.Config{AccessTokenTTL: cfg.Token.AccessTTL, RefreshTokenTTL: cfg.Token.RefreshTTL},
		log,
	)
	identityService := identity.NewService(identityStore, catalog, log)
	cohortService := cohort.NewService(cohort.NewPostgresRepository(pool), log)
	paymentService := payment.NewService(payment.NewPostgresRepository(pool), log)
	petitionService := petition.NewService(petition.NewPostgresRepository(pool), log)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: pgstore.Healthcheck(pool),
		CheckCache:    redisstore.Healthcheck(cache),
	}, log)

	// ── HTTP Server ───────────────────────────────────────────────────────
	serverCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := api.NewServer(serverCtx, cfg.Server, log, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Features: []api.RouteRegistrar{
			auth.NewHandler(authService, gate),
			identity.NewHandler(identityService, gate),
			cohort.NewHandler(cohortService, gate),
			payment.NewHandler(paymentService, gate),
			petition.NewHandler(petitionService, gate),
		},
	})
	return server.Run(serverCtx)
}

// newLogger builds the JSON logger used by the whole process and installs it
// as the slog default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}
