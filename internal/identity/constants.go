// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

// # Request Fields

const (
	FieldCedula    = "cedula"
	FieldFirstName = "nombre"
	FieldLastName  = "apellido"
	FieldRoleCode  = "tipo_usuario"
	FieldSecret    = "contraseña"
	FieldEmail     = "correo"
)

// # Response Messages

const (
	MessageCreated = "Usuario registrado con éxito."
	MessageUpdated = "Usuario encontrado y actualizado con éxito."
)

// # Error Codes

const (
	// CodeUnknownRole is returned when tipo_usuario matches no catalogued role.
	CodeUnknownRole = "UNKNOWN_ROLE"

	// CodeStudentNotFound is returned when a student lookup matches nobody.
	CodeStudentNotFound = "STUDENT_NOT_FOUND"
)

// # Field Limits

const (
	maxNameLength   = 100
	maxCedulaLength = 20
	minSecretLength = 4
)
