// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/postgrado/internal/platform/apperr"
	"github.com/taibuivan/postgrado/internal/platform/constants"
	"github.com/taibuivan/postgrado/internal/platform/sec"
)

type serviceFixture struct {
	service    *Service
	identities *memoryIdentities
	tokens     *sec.TokenService
	redis      *miniredis.Miniredis
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	identities := newMemoryIdentities()
	tokens := newTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewService(
		identities,
		NewRevocationRepository(client),
		tokens,
		newTestCatalog(t),
		Config{AccessTokenTTL: time.Hour, RefreshTokenTTL: 24 * time.Hour},
		logger,
	)

	return &serviceFixture{service: service, identities: identities, tokens: tokens, redis: server}
}

func TestService_Login(t *testing.T) {
	fixture := newServiceFixture(t)
	loginID := fixture.identities.add(t, "V100", "Clave123", sec.RoleStudent)

	t.Run("success", func(t *testing.T) {
		session, err := fixture.service.Login(context.Background(), sec.RoleStudent, LoginInput{Cedula: " v100 ", Secret: "Clave123"})
		require.NoError(t, err)
		assert.Equal(t, "V100", session.User.Cedula)

		claims, err := fixture.tokens.VerifyToken(session.AccessToken, sec.TokenTypeAccess)
		require.NoError(t, err)
		assert.Equal(t, loginID, claims.UserID)

		_, err = fixture.tokens.VerifyToken(session.RefreshToken, sec.TokenTypeRefresh)
		assert.NoError(t, err)
	})

	failures := []struct {
		name  string
		role  sec.Role
		input LoginInput
	}{
		{"wrong secret", sec.RoleStudent, LoginInput{Cedula: "V100", Secret: "clave123"}},
		{"wrong endpoint role", sec.RoleAdmin, LoginInput{Cedula: "V100", Secret: "Clave123"}},
		{"unknown cedula", sec.RoleStudent, LoginInput{Cedula: "V999", Secret: "Clave123"}},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixture.service.Login(context.Background(), tt.role, tt.input)
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, http.StatusUnauthorized, appError.HTTPStatus)
			assert.Equal(t, "Credenciales inválidas.", appError.Message)
		})
	}
}

func TestService_RefreshAndLogout(t *testing.T) {
	fixture := newServiceFixture(t)
	loginID := fixture.identities.add(t, "V200", "Clave123", sec.RoleProfessor)
	principal := &sec.Principal{LoginID: loginID, Cedula: "V200", Role: sec.RoleProfessor}

	session, err := fixture.service.Login(context.Background(), sec.RoleProfessor, LoginInput{Cedula: "V200", Secret: "Clave123"})
	require.NoError(t, err)

	accessToken, err := fixture.service.Refresh(context.Background(), session.RefreshToken)
	require.NoError(t, err)
	claims, err := fixture.tokens.VerifyToken(accessToken, sec.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, loginID, claims.UserID)

	t.Run("access token cannot refresh", func(t *testing.T) {
		_, err := fixture.service.Refresh(context.Background(), session.AccessToken)
		assert.True(t, apperr.HasCode(err, CodeInvalidToken))
	})

	t.Run("logout revokes the refresh token", func(t *testing.T) {
		require.NoError(t, fixture.service.Logout(context.Background(), principal, session.RefreshToken))
		require.NoError(t, fixture.service.Logout(context.Background(), principal, session.RefreshToken), "logout is idempotent")

		_, err := fixture.service.Refresh(context.Background(), session.RefreshToken)
		assert.True(t, apperr.HasCode(err, CodeTokenRevoked))

		refreshClaims, err := fixture.tokens.VerifyToken(session.RefreshToken, sec.TokenTypeRefresh)
		require.NoError(t, err)
		ttl := fixture.redis.TTL(constants.RedisPrefixRevokedRefresh + refreshClaims.ID)
		assert.Greater(t, ttl, 23*time.Hour)
	})

	t.Run("logout with another user's token is forbidden", func(t *testing.T) {
		otherID := fixture.identities.add(t, "V201", "x", sec.RoleStudent)
		otherRefresh, err := fixture.tokens.GenerateRefreshToken(otherID, time.Hour)
		require.NoError(t, err)

		err = fixture.service.Logout(context.Background(), principal, otherRefresh)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, http.StatusForbidden, appError.HTTPStatus)
	})

	t.Run("refresh for a deleted login", func(t *testing.T) {
		orphan, err := fixture.tokens.GenerateRefreshToken(4242, time.Hour)
		require.NoError(t, err)

		_, err = fixture.service.Refresh(context.Background(), orphan)
		assert.True(t, apperr.HasCode(err, CodeIdentityNotFound))
	})
}

func TestService_UserInfo(t *testing.T) {
	fixture := newServiceFixture(t)
	loginID := fixture.identities.add(t, "V300", "x", sec.RoleAdmin)

	info, err := fixture.service.UserInfo(context.Background(), &sec.Principal{LoginID: loginID, Cedula: "V300", Role: sec.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "V300", info.Cedula)
	assert.Equal(t, "ADMINISTRADOR", info.RoleLabel)

	_, err = fixture.service.UserInfo(context.Background(), &sec.Principal{Cedula: "V404"})
	assert.True(t, apperr.HasCode(err, CodeIdentityNotFound))
}

func TestService_IssueAccessToken(t *testing.T) {
	fixture := newServiceFixture(t)
	loginID := fixture.identities.add(t, "V400", "x", sec.RoleAdmin)

	token, err := fixture.service.IssueAccessToken(context.Background(), "v400")
	require.NoError(t, err)

	claims, err := fixture.tokens.VerifyToken(token, sec.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, loginID, claims.UserID)

	_, err = fixture.service.IssueAccessToken(context.Background(), "V404")
	assert.True(t, apperr.HasCode(err, CodeIdentityNotFound))
}
