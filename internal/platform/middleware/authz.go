// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"

	"github.com/taibuivan/postgrado/internal/platform/constants"
	"github.com/taibuivan/postgrado/internal/platform/ctxutil"
	"github.com/taibuivan/postgrado/internal/platform/respond"
	"github.com/taibuivan/postgrado/internal/platform/sec"
)

// Authenticator resolves the Authorization header of a request into a principal.
//
// # Contract
//
// When public is true the implementation must return (nil, nil) without
// looking at the header. Otherwise it either returns a principal or an
// [apperr.AppError] describing why the request is unauthenticated.
type Authenticator interface {
	Authenticate(ctx context.Context, header string, public bool) (*sec.Principal, error)
}

// Gate enforces route-scoped permission policies.
type Gate struct {
	authenticator Authenticator
}

// NewGate creates a new Gate backed by the given authenticator.
func NewGate(authenticator Authenticator) *Gate {
	return &Gate{authenticator: authenticator}
}

/*
Allow returns a middleware enforcing the given permissions on a single route.

It must be attached with chi's router.With so that it runs after route
matching, which is how each route carries its own policy.

Flow:
 1. Routes declaring [sec.AllowAny] skip authentication entirely.
 2. Otherwise the Authorization header is resolved via [Authenticator].
 3. The resulting principal is checked against every permission.
 4. On success the principal is injected into the request context.
*/
func (gate *Gate) Allow(permissions ...sec.Permission) func(http.Handler) http.Handler {
	policy := sec.Policy(permissions)
	public := policy.AllowsAny()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()

			// 1. Authentication
			principal, err := gate.authenticator.Authenticate(ctx, request.Header.Get(constants.HeaderAuthorization), public)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}

			// 2. Authorization
			if err := policy.Check(principal); err != nil {
				respond.Error(writer, request, err)
				return
			}

			// 3. Context Injection
			if principal != nil {
				recordPrincipal(ctx, principal.Cedula)
				ctx = ctxutil.WithPrincipal(ctx, principal)
			}

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
