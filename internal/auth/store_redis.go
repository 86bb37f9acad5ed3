// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/postgrado/internal/platform/constants"
)

// RedisRevocationRepository implements [RevocationRepository] using Redis.
type RedisRevocationRepository struct {
	client redis.UniversalClient
}

// NewRevocationRepository creates a new Redis-backed RevocationRepository.
func NewRevocationRepository(client redis.UniversalClient) *RedisRevocationRepository {
	return &RedisRevocationRepository{client: client}
}

func revokedKey(tokenID string) string {
	return constants.RedisPrefixRevokedRefresh + tokenID
}

/*
Revoke stores the token ID with the token's remaining lifetime as TTL.

Description: Revoking twice only refreshes the TTL, so logout is idempotent.
A non-positive TTL means the token already expired and nothing is stored.
*/
func (repository *RedisRevocationRepository) Revoke(context context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	if err := repository.client.Set(context, revokedKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis_revocation_set_failed: %w", err)
	}

	return nil
}

// IsRevoked reports whether the token ID is on the deny-list.
func (repository *RedisRevocationRepository) IsRevoked(context context.Context, tokenID string) (bool, error) {
	count, err := repository.client.Exists(context, revokedKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis_revocation_exists_failed: %w", err)
	}

	return count > 0, nil
}
