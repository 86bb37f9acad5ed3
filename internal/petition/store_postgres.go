// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package petition

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

// where renders the filter as a WHERE clause with positional arguments.
func where(filter Filter) (string, []any) {
	var (
		conditions []string
		args       []any
	)
	if filter.ResponsibleID != "" {
		args = append(args, filter.ResponsibleID)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", schema.MainPetition.ResponsibleID, len(args)))
	}
	if len(filter.Statuses) > 0 {
		args = append(args, filter.Statuses)
		conditions = append(conditions, fmt.Sprintf("%s = ANY($%d::text[])", schema.MainPetition.Status, len(args)))
	}
	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List returns a page of petitions ordered by submission date, newest first.
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Petition, int, error) {
	clause, args := where(filter)

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s%s`, schema.MainPetition.Table, clause)

	var total int
	if err := repository.pool.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Solicitud")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s%s
		ORDER BY %s DESC, %s
		LIMIT $%d OFFSET $%d`,
		strings.Join(schema.MainPetition.Columns(), ", "),
		schema.MainPetition.Table, clause,
		schema.MainPetition.SubmittedAt, schema.MainPetition.Code,
		len(args)+1, len(args)+2,
	)

	rows, err := repository.pool.Query(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Solicitud")
	}

	petitions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Petition, error) {
		petition := &Petition{}
		err := row.Scan(
			&petition.Code,
			&petition.ResponsibleID,
			&petition.StudentFirstName,
			&petition.StudentLastName,
			&petition.SubmittedAt,
			&petition.Status,
			&petition.Kind,
		)
		return petition, err
	})
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Solicitud")
	}

	return petitions, total, nil
}
