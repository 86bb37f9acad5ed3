// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/postgrado/internal/platform/config"
)

// Config is what postgradctl reads from the environment. The database group
// is shared with the API. Redis and the HTTP settings are not needed.
type Config struct {
	Database config.Database
	Token    Token
}

// Token mirrors the API token settings with the secret left optional: only
// the commands that sign tokens check it.
type Token struct {
	Secret    string        `env:"JWT_SECRET"`
	Issuer    string        `env:"JWT_ISSUER"       envDefault:"postgrado-api"`
	AccessTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"60m"`
}

// LoadConfig parses the CLI configuration from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return cfg, nil
}
