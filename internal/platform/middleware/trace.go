// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package middleware provides the cross-cutting HTTP processing chain.

Installed globally by the API server, in order:

  - RequestID: correlation ID on the context and the response.
  - StructuredLogger: one access-log line per request.
  - PanicRecovery: a panicking handler answers 500.
  - RateLimit: per-IP token buckets.
  - CORS: browser origin allow-list.

Route-scoped authentication and permission checks live in [Gate].
*/
package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/postgrado/internal/platform/constants"
	"github.com/taibuivan/postgrado/internal/platform/ctxutil"
	"github.com/taibuivan/postgrado/pkg/uuid"
)

// maxRequestIDLength bounds a propagated X-Request-ID.
const maxRequestIDLength = 64

// RequestID reuses a well-formed incoming X-Request-ID or mints a UUIDv7.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requestID := request.Header.Get(constants.HeaderXRequestID)
			if len(requestID) > maxRequestIDLength || !uuid.Valid(requestID) {
				requestID = uuid.New()
			}

			writer.Header().Set(constants.HeaderXRequestID, requestID)
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithRequestID(request.Context(), requestID)))
		})
	}
}

// accessLog collects what downstream handlers learn about the request.
// The gate fills in the cedula on the request it hands downstream, which the
// logger cannot see, so both share this pointer through the context.
type accessLog struct {
	cedula string
}

type accessLogKey struct{}

func recordPrincipal(ctx context.Context, cedula string) {
	if entry, ok := ctx.Value(accessLogKey{}).(*accessLog); ok {
		entry.cedula = cedula
	}
}

// StructuredLogger writes one "http_request_finished" line per request and
// installs the request logger on the context.
func StructuredLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			started := time.Now()

			requestLogger := logger.With(
				slog.String("request_id", ctxutil.RequestID(request.Context())),
				slog.String("method", request.Method),
				slog.String("path", request.URL.Path),
				slog.String("ip", RealIP(request)),
			)

			entry := &accessLog{}
			ctx := ctxutil.WithLogger(request.Context(), requestLogger)
			ctx = context.WithValue(ctx, accessLogKey{}, entry)

			wrapped := chimw.NewWrapResponseWriter(writer, request.ProtoMajor)
			next.ServeHTTP(wrapped, request.WithContext(ctx))

			status := wrapped.Status()
			if status == 0 {
				status = http.StatusOK
			}

			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			attrs := []slog.Attr{
				slog.Int("status", status),
				slog.Int("bytes", wrapped.BytesWritten()),
				slog.Int64("latency_ms", time.Since(started).Milliseconds()),
				slog.String("user_agent", request.UserAgent()),
			}
			if entry.cedula != "" {
				attrs = append(attrs, slog.String("cedula", entry.cedula))
			}

			requestLogger.LogAttrs(ctx, level, "http_request_finished", attrs...)
		})
	}
}

// RealIP is the client address. Behind a proxy, install chi's RealIP
// middleware first so RemoteAddr already holds the forwarded address.
func RealIP(request *http.Request) string {
	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}
