// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil carries request-scoped values through [context.Context]:
// the correlation ID, the request logger and the authenticated principal.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/postgrado/internal/platform/sec"
)

// key is unexported so no other package can read or overwrite our values.
type key[T any] struct{ name string }

func (k key[T]) attach(ctx context.Context, value T) context.Context {
	return context.WithValue(ctx, k, value)
}

func (k key[T]) lookup(ctx context.Context) (T, bool) {
	value, ok := ctx.Value(k).(T)
	return value, ok
}

var (
	requestIDKey = key[string]{"request_id"}
	loggerKey    = key[*slog.Logger]{"logger"}
	principalKey = key[*sec.Principal]{"principal"}
)

// WithRequestID attaches the X-Request-ID correlation value.
func WithRequestID(ctx context.Context, id string) context.Context {
	return requestIDKey.attach(ctx, id)
}

// RequestID is the correlation value, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := requestIDKey.lookup(ctx)
	return id
}

// WithLogger attaches the request logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return loggerKey.attach(ctx, logger)
}

// Logger is the request logger, falling back to [slog.Default].
func Logger(ctx context.Context) *slog.Logger {
	if logger, ok := loggerKey.lookup(ctx); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// WithPrincipal attaches the authenticated caller.
func WithPrincipal(ctx context.Context, principal *sec.Principal) context.Context {
	return principalKey.attach(ctx, principal)
}

// Principal is the authenticated caller, or nil for anonymous requests.
func Principal(ctx context.Context) *sec.Principal {
	principal, _ := principalKey.lookup(ctx)
	return principal
}
