// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import "github.com/taibuivan/postgrado/internal/platform/sec"

// # Domain Entities

// Identity is the root user record, keyed by national ID (cedula).
//
// Admins, students and professors all share this record. The secret is
// stored as a bcrypt hash and is never serialized.
type Identity struct {
	Cedula     string `json:"cedula"`
	FirstName  string `json:"nombre"`
	LastName   string `json:"apellido"`
	RoleCode   int    `json:"tipo_usuario"`
	SecretHash string `json:"-"`
	Email      string `json:"correo"`
}

// LoginRecord is the credential and role pair used for authentication.
//
// There is at most one per identity. Its ID is the subject of every token.
type LoginRecord struct {
	ID         int64
	Cedula     string
	SecretHash string
	Role       sec.Role
}

// ProfessorProfile is the professor-extension row of an identity.
//
// ProgramCode stays unset until the professor is assigned to a master's
// program.
type ProfessorProfile struct {
	ID          int64   `json:"id"`
	Cedula      string  `json:"ci_profesor"`
	FirstName   *string `json:"nom_profesor_materia"`
	LastName    *string `json:"ape_profesor_materia"`
	ProgramCode *int    `json:"cod_maestria_prof"`
}

// RoleRow is one row of the roles reference table.
type RoleRow struct {
	Code  int
	Label string
}

// # Operation Inputs

// UpsertInput is the flat field set accepted by the upsert workflow.
//
// Nil fields were not supplied by the caller and are left untouched on update.
type UpsertInput struct {
	Cedula    *string `json:"cedula"`
	FirstName *string `json:"nombre"`
	LastName  *string `json:"apellido"`
	RoleCode  *int    `json:"tipo_usuario"`
	Secret    *string `json:"contraseña"`
	Email     *string `json:"correo"`
}

// UpsertResult reports which branch of the workflow ran.
type UpsertResult struct {
	Identity *Identity
	Created  bool
}
