// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives, token management and the
// role/permission model.
//
// # Architecture
//
// This package isolates security-sensitive code (hashing, JWT signing) from
// the domain logic. Domain services depend on small interfaces satisfied by
// [TokenService].
package sec

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taibuivan/postgrado/pkg/uuid"
)

// Token types carried in the token_type claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// ErrWrongTokenType is returned when a refresh token is presented where an
// access token is expected, or the other way round.
var ErrWrongTokenType = errors.New("token has wrong type")

// Claims is the payload of both access and refresh tokens.
//
// UserID is the login record identifier, not the cedula. The claim names
// match what the existing frontend already decodes.
type Claims struct {
	jwt.RegisteredClaims

	UserID    int64  `json:"user_id"`
	TokenType string `json:"token_type"`
}

// TokenService signs and verifies HS256 tokens.
type TokenService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewTokenService creates a new TokenService for the given shared secret.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: token secret must not be empty")
	}
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// GenerateAccessToken issues a short-lived access token for a login record.
func (service *TokenService) GenerateAccessToken(loginID int64, timeToLive time.Duration) (string, error) {
	return service.generate(loginID, TokenTypeAccess, timeToLive)
}

// GenerateRefreshToken issues a refresh token for a login record.
func (service *TokenService) GenerateRefreshToken(loginID int64, timeToLive time.Duration) (string, error) {
	return service.generate(loginID, TokenTypeRefresh, timeToLive)
}

func (service *TokenService) generate(loginID int64, tokenType string, timeToLive time.Duration) (string, error) {
	currentTime := service.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New(),
			Subject:   strconv.FormatInt(loginID, 10),
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		UserID:    loginID,
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks signature, issuer, expiry and token type.
//
// The returned error is the parser's own, so its message is suitable for
// surfacing to the caller as the reason a token was rejected.
func (service *TokenService) VerifyToken(tokenString, expectedType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return service.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(service.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(service.now),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.TokenType != expectedType {
		return nil, ErrWrongTokenType
	}

	return claims, nil
}
