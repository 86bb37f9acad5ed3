// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/postgrado/internal/platform/database/schema"
	"github.com/taibuivan/postgrado/internal/platform/dberr"
	"github.com/taibuivan/postgrado/internal/platform/sec"
)

// PostgresStore implements [Store] using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL implementation of [Store].
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// # Identities

var identityColumns = strings.Join(schema.MainIdentity.Columns(), ", ")

func scanIdentity(row pgx.Row) (*Identity, error) {
	identity := &Identity{}
	err := row.Scan(
		&identity.Cedula,
		&identity.FirstName,
		&identity.LastName,
		&identity.RoleCode,
		&identity.SecretHash,
		&identity.Email,
	)
	return identity, err
}

/*
FindByCedula retrieves an identity by national ID.

Returns:
  - *Identity: Hydrated entity
  - error: dberr.ErrNotFound or database errors
*/
func (repository *PostgresStore) FindByCedula(context context.Context, cedula string) (*Identity, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		identityColumns, schema.MainIdentity.Table, schema.MainIdentity.Cedula,
	)

	identity, err := scanIdentity(repository.pool.QueryRow(context, query, cedula))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dberr.ErrNotFound
		}
		return nil, fmt.Errorf("postgres_identity_find_by_cedula_failed: %w", err)
	}

	return identity, nil
}

// Create inserts a new identity row.
func (repository *PostgresStore) Create(context context.Context, identity *Identity) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6)`,
		schema.MainIdentity.Table, identityColumns,
	)

	_, err := repository.pool.Exec(context, query,
		identity.Cedula,
		identity.FirstName,
		identity.LastName,
		identity.RoleCode,
		identity.SecretHash,
		identity.Email,
	)
	if err != nil {
		return fmt.Errorf("postgres_identity_create_failed: %w", dberr.Classify(err, "Usuario"))
	}

	return nil
}

// Update overwrites the mutable columns of an existing identity.
func (repository *PostgresStore) Update(context context.Context, identity *Identity) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1`,
		schema.MainIdentity.Table,
		schema.MainIdentity.FirstName, schema.MainIdentity.LastName, schema.MainIdentity.RoleCode,
		schema.MainIdentity.SecretHash, schema.MainIdentity.Email,
		schema.MainIdentity.Cedula,
	)

	tag, err := repository.pool.Exec(context, query,
		identity.Cedula,
		identity.FirstName,
		identity.LastName,
		identity.RoleCode,
		identity.SecretHash,
		identity.Email,
	)
	if err != nil {
		return fmt.Errorf("postgres_identity_update_failed: %w", dberr.Classify(err, "Usuario"))
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

// ListByRoles returns identities filtered by role code, ordered by last name.
func (repository *PostgresStore) ListByRoles(context context.Context, codes []int) ([]*Identity, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, identityColumns, schema.MainIdentity.Table)
	args := []any{}
	if len(codes) > 0 {
		query += fmt.Sprintf(` WHERE %s = ANY($1::int[])`, schema.MainIdentity.RoleCode)
		args = append(args, codes)
	}
	query += fmt.Sprintf(` ORDER BY %s, %s`, schema.MainIdentity.LastName, schema.MainIdentity.FirstName)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres_identity_list_failed: %w", err)
	}

	identities, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Identity, error) {
		return scanIdentity(row)
	})
	if err != nil {
		return nil, fmt.Errorf("postgres_identity_scan_failed: %w", err)
	}

	return identities, nil
}

// # Login Records

var loginColumns = strings.Join(schema.MainLogin.Columns(), ", ")

func scanLogin(row pgx.Row) (*LoginRecord, error) {
	var roleCode int
	record := &LoginRecord{}
	if err := row.Scan(&record.ID, &record.Cedula, &record.SecretHash, &roleCode); err != nil {
		return nil, err
	}
	record.Role = sec.Role(roleCode)
	return record, nil
}

func (repository *PostgresStore) findLogin(context context.Context, column string, value any) (*LoginRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, loginColumns, schema.MainLogin.Table, column)

	record, err := scanLogin(repository.pool.QueryRow(context, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dberr.ErrNotFound
		}
		return nil, err
	}

	return record, nil
}

// FindLoginByID retrieves a login record by its identifier (the token subject).
func (repository *PostgresStore) FindLoginByID(context context.Context, id int64) (*LoginRecord, error) {
	record, err := repository.findLogin(context, schema.MainLogin.ID, id)
	if err != nil && !errors.Is(err, dberr.ErrNotFound) {
		return nil, fmt.Errorf("postgres_login_find_by_id_failed: %w", err)
	}
	return record, err
}

// FindLoginByCedula retrieves the login record bound to an identity.
func (repository *PostgresStore) FindLoginByCedula(context context.Context, cedula string) (*LoginRecord, error) {
	record, err := repository.findLogin(context, schema.MainLogin.Cedula, cedula)
	if err != nil && !errors.Is(err, dberr.ErrNotFound) {
		return nil, fmt.Errorf("postgres_login_find_by_cedula_failed: %w", err)
	}
	return record, err
}

/*
UpsertLogin creates or overwrites the login record of an identity.

Description: Relies on the unique constraint on cedula_usuario, so the
record ID (and every token already issued for it) survives an update.
*/
func (repository *PostgresStore) UpsertLogin(context context.Context, cedula, secretHash string, role sec.Role) (*LoginRecord, error) {
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%[2]s) DO UPDATE
		SET %[3]s = EXCLUDED.%[3]s,
		    %[4]s = EXCLUDED.%[4]s
		RETURNING %[5]s`,
		schema.MainLogin.Table,
		schema.MainLogin.Cedula, schema.MainLogin.SecretHash, schema.MainLogin.RoleCode,
		loginColumns,
	)

	record, err := scanLogin(repository.pool.QueryRow(context, query, cedula, secretHash, role.Code()))
	if err != nil {
		return nil, fmt.Errorf("postgres_login_upsert_failed: %w", dberr.Classify(err, "Login"))
	}

	return record, nil
}

// # Professors

// CreateProfessor inserts a professor-extension row. Rows are not unique per
// cedula, so every call adds one.
func (repository *PostgresStore) CreateProfessor(context context.Context, profile *ProfessorProfile) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s`,
		schema.MainProfessor.Table,
		schema.MainProfessor.Cedula, schema.MainProfessor.FirstName,
		schema.MainProfessor.LastName, schema.MainProfessor.ProgramCode,
		schema.MainProfessor.ID,
	)

	err := repository.pool.QueryRow(context, query,
		profile.Cedula,
		profile.FirstName,
		profile.LastName,
		profile.ProgramCode,
	).Scan(&profile.ID)
	if err != nil {
		return fmt.Errorf("postgres_professor_create_failed: %w", dberr.Classify(err, "Profesor"))
	}

	return nil
}

// ListProfessors returns every professor-extension row in insertion order.
func (repository *PostgresStore) ListProfessors(context context.Context) ([]*ProfessorProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`,
		strings.Join(schema.MainProfessor.Columns(), ", "),
		schema.MainProfessor.Table,
		schema.MainProfessor.ID,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_professor_list_failed: %w", err)
	}

	profiles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*ProfessorProfile, error) {
		profile := &ProfessorProfile{}
		err := row.Scan(
			&profile.ID,
			&profile.Cedula,
			&profile.FirstName,
			&profile.LastName,
			&profile.ProgramCode,
		)
		return profile, err
	})
	if err != nil {
		return nil, fmt.Errorf("postgres_professor_scan_failed: %w", err)
	}

	return profiles, nil
}

// # Roles

// ListRoles reads the roles reference table.
func (repository *PostgresStore) ListRoles(context context.Context) ([]RoleRow, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s`,
		schema.MainRole.Code, schema.MainRole.Label, schema.MainRole.Table, schema.MainRole.Code,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_roles_list_failed: %w", err)
	}

	roles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (RoleRow, error) {
		var role RoleRow
		err := row.Scan(&role.Code, &role.Label)
		return role, err
	})
	if err != nil {
		return nil, fmt.Errorf("postgres_roles_scan_failed: %w", err)
	}

	return roles, nil
}
