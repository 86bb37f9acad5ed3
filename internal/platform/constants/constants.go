// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package constants holds process-wide values shared by the server, the
// middleware chain and the stores.
package constants

import "time"

const (
	AppName    = "postgrado-api"
	AppVersion = "0.1.0-dev"
)

// # HTTP Server

const (
	DefaultReadHeaderTimeout = 2 * time.Second
	DefaultReadTimeout       = 5 * time.Second
	DefaultWriteTimeout      = 35 * time.Second
	DefaultIdleTimeout       = 2 * time.Minute

	// GlobalRequestTimeout bounds a request end to end. It is also installed
	// as the PostgreSQL statement_timeout and must stay below DefaultWriteTimeout.
	GlobalRequestTimeout = 30 * time.Second

	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// RateLimitCleanupInterval is how often idle per-IP limiters are swept.
	RateLimitCleanupInterval = time.Minute

	// RateLimitClientTTL is the idle time after which a limiter is dropped.
	RateLimitClientTTL = 3 * time.Minute
)

// # Headers

const (
	HeaderAuthorization = "Authorization"
	HeaderOrigin        = "Origin"
	HeaderXRequestID    = "X-Request-ID"
)

// # Envelope Keys

const (
	FieldMessage = "message"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Redis Keys

// RedisPrefixRevokedRefresh namespaces the deny-list; the suffix is the
// refresh token's jti.
const RedisPrefixRevokedRefresh = "postgrado:revoked_refresh:"
