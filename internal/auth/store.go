// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"

	"github.com/taibuivan/postgrado/internal/identity"
	"github.com/taibuivan/postgrado/internal/platform/sec"
)

// # Identity Data Access

// IdentityReader is the read-only slice of the identity store used by
// login, refresh and user-info.
type IdentityReader interface {
	LoginFinder

	/*
		FindLoginByCedula returns the login record bound to an identity.

		Returns:
		  - *identity.LoginRecord: Hydrated entity
		  - error: dberr.ErrNotFound or database errors
	*/
	FindLoginByCedula(context context.Context, cedula string) (*identity.LoginRecord, error)

	/*
		FindByCedula returns the identity with the given national ID.

		Returns:
		  - *identity.Identity: Hydrated entity
		  - error: dberr.ErrNotFound or database errors
	*/
	FindByCedula(context context.Context, cedula string) (*identity.Identity, error)
}

// # Volatile Data Access

// RevocationRepository stores the identifiers of refresh tokens revoked by logout.
type RevocationRepository interface {

	/*
		Revoke records a token ID as revoked until ttl elapses.

		Parameters:
		  - context: context.Context
		  - tokenID: string (the jti claim)
		  - ttl: time.Duration (the token's remaining lifetime)

		Returns:
		  - error: Storage failures
	*/
	Revoke(context context.Context, tokenID string, ttl time.Duration) error

	/*
		IsRevoked reports whether a token ID was revoked.

		Returns:
		  - bool: True when revoked
		  - error: Connectivity errors
	*/
	IsRevoked(context context.Context, tokenID string) (bool, error)
}

// # Token Issuance

// TokenProvider signs and verifies access and refresh tokens.
type TokenProvider interface {
	TokenVerifier

	// GenerateAccessToken issues a short-lived access token for a login record.
	GenerateAccessToken(loginID int64, timeToLive time.Duration) (string, error)

	// GenerateRefreshToken issues a refresh token for a login record.
	GenerateRefreshToken(loginID int64, timeToLive time.Duration) (string, error)
}

var _ TokenProvider = (*sec.TokenService)(nil)
