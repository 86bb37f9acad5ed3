// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements authentication for the postgraduate API.

It resolves bearer tokens into principals for every protected route, and
owns the token lifecycle: role-specific login, refresh, logout and the
caller's own profile.

Architecture:

  - Authenticator: Bearer header to principal, used by the route gate.
  - Service: Login, refresh, logout and user-info use cases.
  - Repository: Redis deny-list of revoked refresh tokens. Identities and
    login records are read through the identity store.
*/
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/postgrado/internal/identity"
	"github.com/taibuivan/postgrado/internal/platform/apperr"
	"github.com/taibuivan/postgrado/internal/platform/dberr"
	"github.com/taibuivan/postgrado/internal/platform/sec"
)

// Config holds the token lifetimes.
type Config struct {
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// Service implements the token lifecycle use cases.
type Service struct {
	identities  IdentityReader
	revocations RevocationRepository
	tokens      TokenProvider
	catalog     *identity.Catalog
	config      Config
	logger      *slog.Logger
	now         func() time.Time
}

// NewService constructs a new [Service].
func NewService(
	identities IdentityReader,
	revocations RevocationRepository,
	tokens TokenProvider,
	catalog *identity.Catalog,
	config Config,
	logger *slog.Logger,
) *Service {
	return &Service{
		identities:  identities,
		revocations: revocations,
		tokens:      tokens,
		catalog:     catalog,
		config:      config,
		logger:      logger,
		now:         time.Now,
	}
}

// # Login Flow

// LoginInput holds the credentials submitted to a role-specific login endpoint.
type LoginInput struct {
	Cedula string
	Secret string
}

// Session is the token pair issued by a successful login.
type Session struct {
	AccessToken  string             `json:"access"`
	RefreshToken string             `json:"refresh"`
	User         *identity.Identity `json:"user"`
}

/*
Login checks the credentials against the login record and issues a token pair.

Description: The login record's role must be the one the endpoint serves.
Every failure (unknown cedula, wrong role, wrong secret) returns the same
ErrInvalidCredentials so the response does not reveal which check failed.

Parameters:
  - context: context.Context
  - role: sec.Role (the role served by the endpoint)
  - input: LoginInput

Returns:
  - *Session: Access and refresh tokens plus the identity
  - error: ErrInvalidCredentials or internal failures
*/
func (service *Service) Login(context context.Context, role sec.Role, input LoginInput) (*Session, error) {
	cedula := identity.Normalize(input.Cedula)

	record, err := service.identities.FindLoginByCedula(context, cedula)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			sec.CheckSecret(input.Secret, "")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth_service_login_lookup_failed: %w", err)
	}

	if record.Role != role || !sec.CheckSecret(input.Secret, record.SecretHash) {
		return nil, ErrInvalidCredentials
	}

	user, err := service.identities.FindByCedula(context, record.Cedula)
	if err != nil {
		return nil, fmt.Errorf("auth_service_login_identity_failed: %w", err)
	}

	session, err := service.issue(record.ID)
	if err != nil {
		return nil, err
	}
	session.User = user

	service.logger.InfoContext(context, "auth_login_succeeded",
		slog.String("cedula", record.Cedula),
		slog.String("role", role.String()),
	)

	return session, nil
}

func (service *Service) issue(loginID int64) (*Session, error) {
	accessToken, err := service.tokens.GenerateAccessToken(loginID, service.config.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_access_token_failed: %w", err)
	}

	refreshToken, err := service.tokens.GenerateRefreshToken(loginID, service.config.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	return &Session{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// # Token Lifecycle

/*
Refresh exchanges a valid refresh token for a new access token.

Returns:
  - string: The new access token
  - error: INVALID_TOKEN, ErrTokenRevoked, ErrIdentityNotFound or internal failures
*/
func (service *Service) Refresh(context context.Context, refreshToken string) (string, error) {
	claims, err := service.tokens.VerifyToken(refreshToken, sec.TokenTypeRefresh)
	if err != nil {
		return "", invalidToken(err)
	}

	revoked, err := service.revocations.IsRevoked(context, claims.ID)
	if err != nil {
		return "", fmt.Errorf("auth_service_refresh_revocation_failed: %w", err)
	}
	if revoked {
		return "", ErrTokenRevoked
	}

	record, err := service.identities.FindLoginByID(context, claims.UserID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return "", ErrIdentityNotFound
		}
		return "", fmt.Errorf("auth_service_refresh_lookup_failed: %w", err)
	}

	accessToken, err := service.tokens.GenerateAccessToken(record.ID, service.config.AccessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("auth_service_access_token_failed: %w", err)
	}

	return accessToken, nil
}

/*
Logout revokes the caller's refresh token until it would have expired.

Description: Revoking an already revoked token succeeds. A refresh token
issued to another login record is rejected.
*/
func (service *Service) Logout(context context.Context, principal *sec.Principal, refreshToken string) error {
	claims, err := service.tokens.VerifyToken(refreshToken, sec.TokenTypeRefresh)
	if err != nil {
		return invalidToken(err)
	}

	if claims.UserID != principal.LoginID {
		return apperr.Forbidden("Refresh token belongs to another user")
	}

	remaining := claims.ExpiresAt.Sub(service.now())
	if err := service.revocations.Revoke(context, claims.ID, remaining); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	service.logger.InfoContext(context, "auth_logout_succeeded", slog.String("cedula", principal.Cedula))

	return nil
}

// # Caller Profile

// UserInfo is the profile of the authenticated caller.
type UserInfo struct {
	*identity.Identity
	RoleLabel string `json:"rol"`
}

// UserInfo returns the identity behind the principal together with its role label.
func (service *Service) UserInfo(context context.Context, principal *sec.Principal) (*UserInfo, error) {
	user, err := service.identities.FindByCedula(context, principal.Cedula)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, ErrIdentityNotFound
		}
		return nil, fmt.Errorf("auth_service_user_info_failed: %w", err)
	}

	return &UserInfo{Identity: user, RoleLabel: service.catalog.Label(principal.Role)}, nil
}

// # Operator Tooling

// IssueAccessToken signs an access token for the login record of a cedula.
// It skips the secret check and is only reachable from the admin CLI.
func (service *Service) IssueAccessToken(context context.Context, cedula string) (string, error) {
	record, err := service.identities.FindLoginByCedula(context, identity.Normalize(cedula))
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return "", ErrIdentityNotFound
		}
		return "", fmt.Errorf("auth_service_issue_lookup_failed: %w", err)
	}

	return service.tokens.GenerateAccessToken(record.ID, service.config.AccessTokenTTL)
}
