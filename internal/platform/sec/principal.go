// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"slices"

	"github.com/taibuivan/postgrado/internal/platform/apperr"
)

// Principal is the authenticated caller of a request.
//
// It is the resolved login record plus the raw bearer token the caller
// presented, and is threaded to handlers through the request context.
type Principal struct {
	LoginID int64
	Cedula  string
	Role    Role
	Token   string
}

// # Route Permissions

// Permission is a single access rule a route declares.
type Permission int

const (
	// AllowAny marks a route as public: authentication is skipped entirely.
	AllowAny Permission = iota + 1

	// IsAuthenticated requires any resolved principal.
	IsAuthenticated

	// IsAdmin requires the admin role.
	IsAdmin

	// IsProfessor requires the professor role.
	IsProfessor

	// IsStudent requires the student role.
	IsStudent
)

// Policy is the set of permissions declared on a route. Every entry must pass.
type Policy []Permission

// AllowsAny reports whether the policy contains the [AllowAny] marker.
func (p Policy) AllowsAny() bool {
	return slices.Contains(p, AllowAny)
}

// Check evaluates the policy against an authenticated principal.
//
// A nil principal only passes a policy that allows anonymous access.
func (p Policy) Check(principal *Principal) error {
	if p.AllowsAny() {
		return nil
	}
	if principal == nil {
		return apperr.Unauthorized("Usuario no autenticado")
	}

	for _, permission := range p {
		switch permission {
		case IsAdmin:
			if principal.Role != RoleAdmin {
				return apperr.Forbidden("Recurso requiere privilegios de administrador.")
			}
		case IsProfessor:
			if principal.Role != RoleProfessor {
				return apperr.Forbidden("Recurso requiere privilegios de profesor.")
			}
		case IsStudent:
			if principal.Role != RoleStudent {
				return apperr.Forbidden("Recurso requiere privilegios de estudiante.")
			}
		}
	}
	return nil
}
