// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration drives golang-migrate over the schema in data/migrations.
//
// The API server applies pending migrations at startup; the postgradctl
// CLI exposes the same operations to operators. The SQL files are embedded
// in the binary unless MIGRATION_PATH points at a directory on disk.
package migration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/taibuivan/postgrado/data/migrations"
	"github.com/taibuivan/postgrado/internal/platform/config"
)

// Status is the applied schema version. Version 0 means nothing is applied.
type Status struct {
	Version uint
	Dirty   bool
}

// Runner applies migrations against one database.
type Runner struct {
	settings config.Database
	logger   *slog.Logger
}

// NewRunner creates a [Runner] for settings.
func NewRunner(settings config.Database, logger *slog.Logger) *Runner {
	return &Runner{settings: settings, logger: logger}
}

// Up applies every pending migration. An up-to-date schema is not an error.
func (runner *Runner) Up() error {
	return runner.apply("up", func(migrator *migrate.Migrate) error { return migrator.Up() })
}

// Down rolls back steps migrations.
func (runner *Runner) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("migration: steps must be positive, got %d", steps)
	}
	return runner.apply("down", func(migrator *migrate.Migrate) error { return migrator.Steps(-steps) })
}

// Status reports the applied version.
func (runner *Runner) Status() (Status, error) {
	var status Status
	err := runner.with(func(migrator *migrate.Migrate) error {
		var err error
		status, err = current(migrator)
		return err
	})
	return status, err
}

func (runner *Runner) apply(direction string, step func(*migrate.Migrate) error) error {
	return runner.with(func(migrator *migrate.Migrate) error {
		before, err := current(migrator)
		if err != nil {
			return err
		}
		if before.Dirty {
			return fmt.Errorf("migration: database is dirty at version %d, fix it by hand and force the version", before.Version)
		}

		err = step(migrator)
		if errors.Is(err, migrate.ErrNoChange) {
			runner.logger.Info("migration_already_up_to_date", slog.Uint64("version", uint64(before.Version)))
			return nil
		}
		if err != nil {
			return fmt.Errorf("migration: %s failed: %w", direction, err)
		}

		after, err := current(migrator)
		if err != nil {
			return err
		}
		runner.logger.Info("migration_applied",
			slog.String("direction", direction),
			slog.Uint64("from_version", uint64(before.Version)),
			slog.Uint64("to_version", uint64(after.Version)),
		)
		return nil
	})
}

// with opens a migrator, runs fn and closes both ends.
func (runner *Runner) with(fn func(*migrate.Migrate) error) error {
	migrator, err := runner.open()
	if err != nil {
		return err
	}
	defer func() {
		sourceErr, databaseErr := migrator.Close()
		if err := errors.Join(sourceErr, databaseErr); err != nil {
			runner.logger.Error("migration_close_failed", slog.Any("error", err))
		}
	}()

	return fn(migrator)
}

func (runner *Runner) open() (*migrate.Migrate, error) {
	databaseURL := pgx5URL(runner.settings.URL)

	var (
		migrator *migrate.Migrate
		err      error
	)
	if runner.settings.MigrationPath != "" {
		migrator, err = migrate.New("file://"+runner.settings.MigrationPath, databaseURL)
	} else {
		source, sourceErr := iofs.New(migrations.FS, ".")
		if sourceErr != nil {
			return nil, fmt.Errorf("migration: embedded source: %w", sourceErr)
		}
		migrator, err = migrate.NewWithSourceInstance("iofs", source, databaseURL)
	}
	if err != nil {
		return nil, fmt.Errorf("migration: failed to initialize: %w", err)
	}

	migrator.Log = migrateLogger{logger: runner.logger}
	return migrator, nil
}

func current(migrator *migrate.Migrate) (Status, error) {
	version, dirty, err := migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return Status{}, nil
	}
	if err != nil {
		return Status{}, fmt.Errorf("migration: failed to read version: %w", err)
	}
	return Status{Version: version, Dirty: dirty}, nil
}

// pgx5URL rewrites postgres:// URLs to the scheme of the pgx/v5 driver.
func pgx5URL(databaseURL string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(databaseURL, prefix); ok {
			return "pgx5://" + rest
		}
	}
	return databaseURL
}

// migrateLogger forwards golang-migrate output to slog at debug level.
type migrateLogger struct {
	logger *slog.Logger
}

func (l migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l migrateLogger) Verbose() bool {
	return l.logger.Enabled(context.Background(), slog.LevelDebug)
}
