// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config maps environment variables onto typed settings with
caarlos0/env.

Settings are grouped by the component that consumes them, so the admin CLI
can parse the [Database] group alone without requiring the HTTP or token
variables:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	pool, err := postgres.NewPool(ctx, cfg.Database, logger)

Once loaded, configuration is read-only and handed to constructors explicitly.
*/
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the API server.
type Config struct {
	Server   Server
	Database Database
	Cache    Cache
	Token    Token
}

// Server configures the HTTP listener and its middleware chain.
type Server struct {
	Port        string `env:"SERVER_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG"       envDefault:"false"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"50"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"100"`
}

// Database configures the PostgreSQL pool and the migration source.
type Database struct {
	URL           string `env:"DATABASE_URL,required,notEmpty"`
	MaxConns      int32  `env:"DATABASE_MAX_CONNS" envDefault:"10"`
	MigrationPath string `env:"MIGRATION_PATH"`
}

// Cache configures the Redis client holding revoked refresh tokens.
type Cache struct {
	URL      string `env:"REDIS_URL,required,notEmpty"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"5"`
}

// Token configures HS256 signing and token lifetimes.
type Token struct {
	Secret     string        `env:"JWT_SECRET,required,notEmpty"`
	Issuer     string        `env:"JWT_ISSUER"        envDefault:"postgrado-api"`
	AccessTTL  time.Duration `env:"ACCESS_TOKEN_TTL"  envDefault:"60m"`
	RefreshTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"24h"`
}

// # Configuration Loading

// Load parses and validates the full API configuration.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// LoadDatabase parses only the [Database] group.
func LoadDatabase() (*Database, error) {
	database := &Database{}
	if err := env.Parse(database); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return database, nil
}

func (c *Config) validate() error {
	var problems []error
	if c.Token.AccessTTL <= 0 {
		problems = append(problems, errors.New("ACCESS_TOKEN_TTL must be positive"))
	}
	if c.Token.RefreshTTL <= 0 {
		problems = append(problems, errors.New("REFRESH_TOKEN_TTL must be positive"))
	}
	if c.Database.MaxConns < 1 {
		problems = append(problems, errors.New("DATABASE_MAX_CONNS must be at least 1"))
	}
	if c.Cache.PoolSize < 1 {
		problems = append(problems, errors.New("REDIS_POOL_SIZE must be at least 1"))
	}
	if c.Server.RateLimitRPS <= 0 || c.Server.RateLimitBurst < 1 {
		problems = append(problems, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive"))
	}
	return errors.Join(problems...)
}

// IsDevelopment reports whether the server is running in development mode.
func (s Server) IsDevelopment() bool {
	return s.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (s Server) IsProduction() bool {
	return s.Environment == "production"
}

// AllowsOrigin reports whether a browser origin is in the configured allow-list.
func (s Server) AllowsOrigin(origin string) bool {
	return slices.Contains(s.AllowedOrigins, origin)
}
