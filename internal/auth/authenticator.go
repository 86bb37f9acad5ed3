// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/taibuivan/postgrado/internal/identity"
	"github.com/taibuivan/postgrado/internal/platform/dberr"
	"github.com/taibuivan/postgrado/internal/platform/sec"
)

// TokenVerifier checks a signed token and returns its claims.
type TokenVerifier interface {
	VerifyToken(tokenString, expectedType string) (*sec.Claims, error)
}

// LoginFinder resolves a token subject into its login record.
type LoginFinder interface {
	FindLoginByID(context context.Context, id int64) (*identity.LoginRecord, error)
}

// Authenticator resolves bearer tokens into principals.
//
// It satisfies [middleware.Authenticator] and performs no writes.
type Authenticator struct {
	verifier TokenVerifier
	logins   LoginFinder
}

// NewAuthenticator constructs a new [Authenticator].
func NewAuthenticator(verifier TokenVerifier, logins LoginFinder) *Authenticator {
	return &Authenticator{verifier: verifier, logins: logins}
}

/*
Authenticate resolves an Authorization header value into a principal.

Flow:
 1. Public routes return (nil, nil) before the header is looked at.
 2. An empty header fails with ErrMissingCredentials.
 3. The header must split on whitespace into exactly "bearer" (any case)
    and one token, or it fails with ErrMalformedCredentials.
 4. Verification failures fail with INVALID_TOKEN, carrying the reason.
 5. The subject must name an existing login record, or it fails with
    ErrIdentityNotFound.

Returns:
  - *sec.Principal: The login record plus the raw token
  - error: One of the 401 errors above, or a lookup failure
*/
func (authenticator *Authenticator) Authenticate(context context.Context, header string, public bool) (*sec.Principal, error) {
	if public {
		return nil, nil
	}

	if header == "" {
		return nil, ErrMissingCredentials
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, ErrMalformedCredentials
	}
	token := parts[1]

	claims, err := authenticator.verifier.VerifyToken(token, sec.TokenTypeAccess)
	if err != nil {
		return nil, invalidToken(err)
	}

	record, err := authenticator.logins.FindLoginByID(context, claims.UserID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, ErrIdentityNotFound
		}
		return nil, fmt.Errorf("auth_authenticator_lookup_failed: %w", err)
	}

	return &sec.Principal{
		LoginID: record.ID,
		Cedula:  record.Cedula,
		Role:    record.Role,
		Token:   token,
	}, nil
}
