// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package postgres provides the managed PostgreSQL connection pool shared by
// the identity, cohort and payment stores.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/postgrado/internal/platform/config"
	"github.com/taibuivan/postgrado/internal/platform/constants"
)

const (
	connectTimeout = 5 * time.Second
	pingTimeout    = 2 * time.Second
)

// poolConfig derives pgxpool settings from the database group. The
// workload is administrative: a handful of users issuing short queries.
func poolConfig(settings config.Database) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(settings.URL)
	if err != nil {
		return nil, fmt.Errorf("postgres: invalid DSN: %w", err)
	}

	cfg.MaxConns = settings.MaxConns
	cfg.MinConns = min(2, settings.MaxConns)
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 10 * time.Minute
	cfg.HealthCheckPeriod = time.Minute
	cfg.ConnConfig.ConnectTimeout = connectTimeout
	cfg.ConnConfig.RuntimeParams["application_name"] = constants.AppName
	cfg.ConnConfig.RuntimeParams["statement_timeout"] = fmt.Sprint(constants.GlobalRequestTimeout.Milliseconds())

	return cfg, nil
}

/*
NewPool opens the pool and verifies it with a ping.

Description: Each session carries the request deadline as its statement
timeout, so a query never outlives the HTTP request that issued it.

Returns:
  - *pgxpool.Pool: The connected pool
  - error: Invalid DSN or unreachable server
*/
func NewPool(ctx context.Context, settings config.Database, logger *slog.Logger) (*pgxpool.Pool, error) {
	cfg, err := poolConfig(settings)
	if err != nil {
		return nil, err
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create pool: %w", err)
	}

	if err := ping(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("postgres_pool_connected",
		slog.String("host", cfg.ConnConfig.Host),
		slog.String("database", cfg.ConnConfig.Database),
		slog.Int("max_conns", int(cfg.MaxConns)),
	)

	return pool, nil
}

// Healthcheck returns the readiness check for pool.
func Healthcheck(pool *pgxpool.Pool) func(context.Context) error {
	return func(ctx context.Context) error {
		return ping(ctx, pool)
	}
}

func ping(ctx context.Context, pool *pgxpool.Pool) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("postgres: ping failed: %w", err)
	}
	return nil
}
