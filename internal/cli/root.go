// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cli implements postgradctl, the operator tool of the postgraduate API.

Commands:

  - migrate up|down|version: Schema migrations.
  - user upsert: The identity create-or-update workflow, used to bootstrap
    the first administrator.
  - token issue: Sign an access token for a cedula (development aid).
*/
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/taibuivan/postgrado/internal/platform/migration"
	"github.com/taibuivan/postgrado/internal/platform/postgres"
)

// runtime carries what the subcommands share once the root has run.
type runtime struct {
	cfg     *Config
	logger  *slog.Logger
	verbose bool
}

// connect opens a pool against the configured database.
func (rt *runtime) connect(ctx context.Context) (*pgxpool.Pool, error) {
	return postgres.NewPool(ctx, rt.cfg.Database, rt.logger)
}

func (rt *runtime) migrations() *migration.Runner {
	return migration.NewRunner(rt.cfg.Database, rt.logger)
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rt := &runtime{}

	rootCmd := &cobra.Command{
		Use:   "postgradctl",
		Short: "Operator tool for the postgraduate administration API",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			rt.cfg = cfg

			level := slog.LevelWarn
			if rt.verbose {
				level = slog.LevelDebug
			}
			rt.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&rt.verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(newMigrateCmd(rt))
	rootCmd.AddCommand(newUserCmd(rt))
	rootCmd.AddCommand(newTokenCmd(rt))

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
