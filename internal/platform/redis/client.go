// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis provides the managed client for volatile data.

The API keeps a single kind of data here: the deny-list of refresh tokens
revoked through logout. Each entry expires together with the token it
blocks, so the list never grows past the set of live refresh tokens.
*/
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/postgrado/internal/platform/config"
)

const (
	ioTimeout   = 2 * time.Second
	pingTimeout = 2 * time.Second
)

func clientOptions(settings config.Cache) (*redis.Options, error) {
	options, err := redis.ParseURL(settings.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	options.PoolSize = settings.PoolSize
	options.MinIdleConns = 1
	options.MaxIdleConns = max(1, settings.PoolSize/2)
	options.DialTimeout = 3 * time.Second
	options.ReadTimeout = ioTimeout
	options.WriteTimeout = ioTimeout

	return options, nil
}

// NewClient connects to the Redis server named by settings and pings it.
func NewClient(ctx context.Context, settings config.Cache, logger *slog.Logger) (*redis.Client, error) {
	options, err := clientOptions(settings)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(options)
	if err := ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_client_connected",
		slog.String("addr", options.Addr),
		slog.Int("db", options.DB),
		slog.Int("pool_size", options.PoolSize),
	)

	return client, nil
}

// Healthcheck returns the readiness check for client.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		return ping(ctx, client)
	}
}

func ping(ctx context.Context, client redis.UniversalClient) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}
