// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/postgrado/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The resource name is used in the client-facing message of constraint errors.
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}
	if classified := classify(err, resource); classified != nil {
		return classified
	}
	return apperr.Internal(err)
}

// Classify maps well-known database failures onto an [apperr.AppError] and
// returns any other error unchanged, so its message survives for diagnostics.
func Classify(err error, resource string) error {
	if err == nil {
		return nil
	}
	if classified := classify(err, resource); classified != nil {
		return classified
	}
	return err
}

func classify(err error, resource string) *apperr.AppError {
	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations carry a SQLSTATE we can classify
	code, ok := SQLState(err)
	if !ok {
		return nil
	}

	var classified *apperr.AppError
	switch code {
	case pgerrcode.UniqueViolation:
		classified = apperr.Conflict(resource + " already exists")
	case pgerrcode.ForeignKeyViolation:
		classified = apperr.BadRequest("INVALID_REFERENCE", resource+" references a missing record")
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.InvalidDatetimeFormat,
		pgerrcode.DatetimeFieldOverflow, pgerrcode.StringDataRightTruncationDataException:
		classified = apperr.ValidationError("Invalid " + resource)
	default:
		return nil
	}

	return classified.WithCause(err)
}

// SQLState extracts the PostgreSQL error code from err's chain.
func SQLState(err error) (string, bool) {
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		return pgError.Code, true
	}
	return "", false
}

// IsUniqueViolation reports whether err is a unique-constraint violation.
func IsUniqueViolation(err error) bool {
	code, ok := SQLState(err)
	return ok && code == pgerrcode.UniqueViolation
}
