// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/taibuivan/postgrado/internal/platform/constants"
)

type RevocationRepositorySuite struct {
	suite.Suite
	server     *miniredis.Miniredis
	client     *redis.Client
	repository *RedisRevocationRepository
}

func (s *RevocationRepositorySuite) SetupTest() {
	s.server = miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{Addr: s.server.Addr()})
	s.repository = NewRevocationRepository(s.client)
}

func (s *RevocationRepositorySuite) TearDownTest() {
	s.client.Close()
}

func (s *RevocationRepositorySuite) TestRevokeThenCheck() {
	ctx := context.Background()

	revoked, err := s.repository.IsRevoked(ctx, "jti-1")
	s.Require().NoError(err)
	s.False(revoked)

	s.Require().NoError(s.repository.Revoke(ctx, "jti-1", time.Hour))

	revoked, err = s.repository.IsRevoked(ctx, "jti-1")
	s.Require().NoError(err)
	s.True(revoked)
	s.True(s.server.Exists(constants.RedisPrefixRevokedRefresh + "jti-1"))
}

func (s *RevocationRepositorySuite) TestEntryExpiresWithToken() {
	ctx := context.Background()
	s.Require().NoError(s.repository.Revoke(ctx, "jti-2", time.Minute))

	s.server.FastForward(2 * time.Minute)

	revoked, err := s.repository.IsRevoked(ctx, "jti-2")
	s.Require().NoError(err)
	s.False(revoked)
}

func (s *RevocationRepositorySuite) TestRevokeIsIdempotent() {
	ctx := context.Background()
	s.Require().NoError(s.repository.Revoke(ctx, "jti-3", time.Hour))
	s.Require().NoError(s.repository.Revoke(ctx, "jti-3", time.Hour))

	revoked, err := s.repository.IsRevoked(ctx, "jti-3")
	s.Require().NoError(err)
	s.True(revoked)
}

func (s *RevocationRepositorySuite) TestExpiredTokenIsNotStored() {
	s.Require().NoError(s.repository.Revoke(context.Background(), "jti-4", -time.Second))
	s.False(s.server.Exists(constants.RedisPrefixRevokedRefresh + "jti-4"))
}

func (s *RevocationRepositorySuite) TestConnectionFailure() {
	s.server.Close()

	_, err := s.repository.IsRevoked(context.Background(), "jti-5")
	s.ErrorContains(err, "redis_revocation_exists_failed")
}

func TestRevocationRepositorySuite(t *testing.T) {
	suite.Run(t, new(RevocationRepositorySuite))
}
