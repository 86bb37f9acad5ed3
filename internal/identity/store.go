// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import (
	"context"

	"github.com/taibuivan/postgrado/internal/platform/sec"
)

// # Identity Data Access

// IdentityRepository defines the data access contract for identities.
type IdentityRepository interface {

	/*
		FindByCedula returns the identity with the given national ID.

		Parameters:
		  - context: context.Context
		  - cedula: string

		Returns:
		  - *Identity: Hydrated entity
		  - error: dberr.ErrNotFound or database errors
	*/
	FindByCedula(context context.Context, cedula string) (*Identity, error)

	/*
		Create persists a brand-new identity.

		Parameters:
		  - context: context.Context
		  - identity: *Identity

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, identity *Identity) error

	/*
		Update overwrites every mutable column of an existing identity.

		Parameters:
		  - context: context.Context
		  - identity: *Identity

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, identity *Identity) error

	/*
		ListByRoles returns identities whose role code is in codes, ordered by
		last name. An empty slice returns every identity.

		Parameters:
		  - context: context.Context
		  - codes: []int

		Returns:
		  - []*Identity: Matching entities
		  - error: Database retrieval failures
	*/
	ListByRoles(context context.Context, codes []int) ([]*Identity, error)
}

// # Login Data Access

// LoginRepository defines the data access contract for login records.
type LoginRepository interface {

	/*
		FindLoginByID returns the login record with the given identifier.

		Returns:
		  - *LoginRecord: Hydrated entity
		  - error: dberr.ErrNotFound or database errors
	*/
	FindLoginByID(context context.Context, id int64) (*LoginRecord, error)

	/*
		FindLoginByCedula returns the login record bound to an identity.

		Returns:
		  - *LoginRecord: Hydrated entity
		  - error: dberr.ErrNotFound or database errors
	*/
	FindLoginByCedula(context context.Context, cedula string) (*LoginRecord, error)

	/*
		UpsertLogin creates the login record of an identity, or overwrites its
		secret and role when one already exists.

		Parameters:
		  - context: context.Context
		  - cedula: string
		  - secretHash: string
		  - role: sec.Role

		Returns:
		  - *LoginRecord: The stored record
		  - error: Persistence failures
	*/
	UpsertLogin(context context.Context, cedula, secretHash string, role sec.Role) (*LoginRecord, error)
}

// # Professor Data Access

// ProfessorRepository defines the data access contract for professor-extension rows.
type ProfessorRepository interface {

	// CreateProfessor inserts a new extension row and assigns its ID.
	CreateProfessor(context context.Context, profile *ProfessorProfile) error

	// ListProfessors returns every extension row.
	ListProfessors(context context.Context) ([]*ProfessorProfile, error)
}

// # Reference Data Access

// RoleStore reads the roles reference table.
type RoleStore interface {
	ListRoles(context context.Context) ([]RoleRow, error)
}

// Store aggregates every repository the identity service depends on.
type Store interface {
	IdentityRepository
	LoginRepository
	ProfessorRepository
	RoleStore
}
