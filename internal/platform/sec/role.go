// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "fmt"

// # User Roles

// Role is the closed set of user classifications stored in the roles table.
//
// The integer values are the persisted codes and must never change.
type Role int

const (
	// RoleAdmin manages cohorts, payments and user registration.
	RoleAdmin Role = 1

	// RoleStudent is an enrolled postgraduate student.
	RoleStudent Role = 2

	// RoleProfessor teaches subjects within cohorts.
	RoleProfessor Role = 3
)

// Roles lists every variant in code order.
var Roles = []Role{RoleAdmin, RoleStudent, RoleProfessor}

// ParseRole maps a persisted code onto a [Role].
func ParseRole(code int) (Role, bool) {
	role := Role(code)
	return role, role.Valid()
}

// Valid reports whether r is one of the declared variants.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleProfessor:
		return true
	default:
		return false
	}
}

// Code returns the persisted integer code.
func (r Role) Code() int {
	return int(r)
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleStudent:
		return "student"
	case RoleProfessor:
		return "professor"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}
