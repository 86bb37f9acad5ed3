// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/taibuivan/postgrado/internal/platform/apperr"
)

// # Authentication Errors

// Error codes returned by the [Authenticator]. All of them render as 401.
const (
	CodeMissingCredentials   = "MISSING_CREDENTIALS"
	CodeMalformedCredentials = "MALFORMED_CREDENTIALS"
	CodeInvalidToken         = "INVALID_TOKEN"
	CodeIdentityNotFound     = "IDENTITY_NOT_FOUND"
	CodeInvalidCredentials   = "INVALID_CREDENTIALS"
	CodeTokenRevoked         = "TOKEN_REVOKED"
)

var (
	// ErrMissingCredentials is returned when a protected route gets no Authorization header.
	ErrMissingCredentials = apperr.New(http.StatusUnauthorized, CodeMissingCredentials, "No authorization header provided")

	// ErrMalformedCredentials is returned when the header is not exactly "Bearer <token>".
	ErrMalformedCredentials = apperr.New(http.StatusUnauthorized, CodeMalformedCredentials, "Authorization header must be Bearer token")

	// ErrIdentityNotFound is returned when a verified token names a deleted login record.
	ErrIdentityNotFound = apperr.New(http.StatusUnauthorized, CodeIdentityNotFound, "User not found")

	// ErrInvalidCredentials is returned by every failed login, whatever the reason.
	ErrInvalidCredentials = apperr.New(http.StatusUnauthorized, CodeInvalidCredentials, "Credenciales inválidas.")

	// ErrTokenRevoked is returned when a refresh token was revoked through logout.
	ErrTokenRevoked = apperr.New(http.StatusUnauthorized, CodeTokenRevoked, "Token has been revoked")
)

// invalidToken wraps a verification failure, carrying its message.
func invalidToken(cause error) *apperr.AppError {
	return apperr.New(http.StatusUnauthorized, CodeInvalidToken, "Invalid token: "+cause.Error()).WithCause(cause)
}

// # Request Fields

const (
	FieldCedula  = "cedula"
	FieldSecret  = "contraseña"
	FieldRefresh = "refresh"
)

// # Response Messages

const (
	MessageLoggedOut = "Sesión cerrada con éxito."
)
