// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package payment

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

// List returns a page of payments ordered by payment date, newest first.
func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Payment, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.MainPayment.Table)

	var total int
	if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Pago")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s DESC, %s DESC
		LIMIT $1 OFFSET $2`,
		strings.Join(schema.MainPayment.Columns(), ", "),
		schema.MainPayment.Table,
		schema.MainPayment.PaidAt, schema.MainPayment.Reference,
	)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Pago")
	}

	payments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Payment, error) {
		payment := &Payment{}
		err := row.Scan(
			&payment.Reference,
			&payment.ResponsibleID,
			&payment.Bank,
			&payment.PaidAt,
			&payment.Amount,
			&payment.StudentFirstName,
			&payment.StudentLastName,
			&payment.State,
		)
		return payment, err
	})
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Pago")
	}

	return payments, total, nil
}

/*
UpdateStates sets the review state of several payments in one transaction.

Description: The updates are sent as a single pgx batch. Unknown references
do not abort the transaction; they are reported back to the caller.

Returns:
  - []int: References that matched no row
  - error: Classified constraint violations or database errors
*/
func (repository *PostgresRepository) UpdateStates(context context.Context, updates []StateUpdate) ([]int, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.MainPayment.Table, schema.MainPayment.State, schema.MainPayment.Reference,
	)

	var missing []int
	err := pgx.BeginFunc(context, repository.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, update := range updates {
			batch.Queue(query, update.Reference, update.State)
		}

		results := tx.SendBatch(context, batch)
		defer results.Close()

		for _, update := range updates {
			tag, err := results.Exec()
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				missing = append(missing, update.Reference)
			}
		}

		return results.Close()
	})
	if err != nil {
		return nil, fmt.Errorf("postgres_payment_update_states_failed: %w", dberr.Classify(err, "Pago"))
	}

	return missing, nil
}
