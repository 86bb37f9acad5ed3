// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cohort

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/postgrado/internal/platform/database/schema"
	"github.com/taibuivan/postgrado/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of [Repository].
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Exists reports whether code is already assigned.
func (repository *PostgresRepository) Exists(context context.Context, code string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.MainCohort.Table, schema.MainCohort.Code,
	)

	var exists bool
	if err := repository.pool.QueryRow(context, query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres_cohort_exists_failed: %w", err)
	}

	return exists, nil
}

/*
CreateIfAbsent inserts a cohort row unless its code is taken.

Description: The insert and the collision check are one statement, so two
requests racing on the same code cannot both succeed.

Returns:
  - bool: true when the row was inserted
  - error: Classified constraint violations or database errors
*/
func (repository *PostgresRepository) CreateIfAbsent(context context.Context, cohort *Cohort) (bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (%s) DO NOTHING`,
		schema.MainCohort.Table,
		schema.MainCohort.Code, schema.MainCohort.StartDate, schema.MainCohort.EndDate,
		schema.MainCohort.Site, schema.MainCohort.ProgramType,
		schema.MainCohort.Code,
	)

	tag, err := repository.pool.Exec(context, query,
		cohort.Code,
		cohort.StartDate,
		cohort.EndDate,
		cohort.Site,
		cohort.ProgramType,
	)
	if err != nil {
		return false, fmt.Errorf("postgres_cohort_create_failed: %w", dberr.Classify(err, "Cohorte"))
	}

	return tag.RowsAffected() == 1, nil
}

// List returns every cohort ordered by start date, newest first.
func (repository *PostgresRepository) List(context context.Context) ([]*Cohort, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s DESC, %s`,
		strings.Join(schema.MainCohort.Columns(), ", "),
		schema.MainCohort.Table,
		schema.MainCohort.StartDate, schema.MainCohort.Code,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Cohorte")
	}

	cohorts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Cohort, error) {
		cohort := &Cohort{}
		err := row.Scan(&cohort.Code, &cohort.StartDate, &cohort.EndDate, &cohort.Site, &cohort.ProgramType)
		return cohort, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "Cohorte")
	}

	return cohorts, nil
}
