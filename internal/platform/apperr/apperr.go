// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the error type every service returns to handlers.

An [AppError] fixes the HTTP status, a machine-readable code and the message
rendered under the "error" key. Domain packages declare their own codes
(e.g. "INVALID_TOKEN", "MISSING_CODE") with [New] or [BadRequest] and keep
them as package-level values. Those values are shared, so attach causes with
[AppError.WithCause], which copies, and compare with [errors.Is], which
matches on code and status.
*/
package apperr

import (
	"errors"
	"net/http"
)

const (
	codeInternal   = "INTERNAL_ERROR"
	codeValidation = "VALIDATION_ERROR"
)

// AppError is the canonical error type of the API. Cause is logged but only
// reaches the client through [Unexpected].
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"error"`
	HTTPStatus int          `json:"-"`
	Cause      error        `json:"-"`
	Details    []FieldError `json:"details,omitempty"`
}

// FieldError is one failed field of a VALIDATION_ERROR.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error returns the client-facing message.
func (e *AppError) Error() string { return e.Message }

// Unwrap exposes the cause to [errors.Is] and [errors.As].
func (e *AppError) Unwrap() error { return e.Cause }

// Is matches any [*AppError] with the same code and status, so a copy made
// by [AppError.WithCause] still matches the value it was made from.
func (e *AppError) Is(target error) bool {
	other, ok := target.(*AppError)
	return ok && other.Code == e.Code && other.HTTPStatus == e.HTTPStatus
}

// WithCause returns a copy of e carrying cause.
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

// New builds an [AppError] with an explicit status and code.
func New(status int, code, msg string) *AppError {
	return &AppError{Code: code, Message: msg, HTTPStatus: status}
}

// # Client Errors (4xx)

// BadRequest is a 400 with a domain-specific code.
func BadRequest(code, msg string) *AppError {
	return New(http.StatusBadRequest, code, msg)
}

// NotFound is a 404 for a named resource, e.g. NotFound("Cohorte").
func NotFound(resource string) *AppError {
	return New(http.StatusNotFound, "NOT_FOUND", resource+" not found")
}

func Unauthorized(msg string) *AppError {
	return New(http.StatusUnauthorized, "UNAUTHORIZED", msg)
}

func Forbidden(msg string) *AppError {
	return New(http.StatusForbidden, "FORBIDDEN", msg)
}

// Conflict is a 409 for unique-constraint violations.
func Conflict(msg string) *AppError {
	return New(http.StatusConflict, "CONFLICT", msg)
}

// ValidationError is a 400 listing the failed fields.
func ValidationError(msg string, details ...FieldError) *AppError {
	err := New(http.StatusBadRequest, codeValidation, msg)
	err.Details = details
	return err
}

// # Server Errors (5xx)

// Internal is a 500 with a generic message. The cause is never rendered.
func Internal(cause error) *AppError {
	return New(http.StatusInternalServerError, codeInternal, "An unexpected error occurred").WithCause(cause)
}

// Unexpected is a 500 whose message is the cause's message. Only the cohort
// generation and user registration endpoints use it; their clients show
// the failure text.
func Unexpected(cause error) *AppError {
	return New(http.StatusInternalServerError, codeInternal, cause.Error()).WithCause(cause)
}

// # Helpers

// As extracts the first [*AppError] in err's chain, or nil.
func As(err error) *AppError {
	var appError *AppError
	if errors.As(err, &appError) {
		return appError
	}
	return nil
}

// HasCode reports whether err carries an [*AppError] with code.
func HasCode(err error, code string) bool {
	appError := As(err)
	return appError != nil && appError.Code == code
}

// Surface keeps client errors (4xx) as they are and converts everything else
// into [Unexpected].
func Surface(err error) *AppError {
	if appError := As(err); appError != nil && appError.HTTPStatus < http.StatusInternalServerError {
		return appError
	}
	return Unexpected(err)
}
