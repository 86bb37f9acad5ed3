// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// MainIdentityTable represents the 'datos_basicos' table
type MainIdentityTable struct {
	Table      string
	Cedula     string
	FirstName  string
	LastName   string
	RoleCode   string
	SecretHash string
	Email      string
}

// MainIdentity is the schema definition for datos_basicos
var MainIdentity = MainIdentityTable{
	Table:      "datos_basicos",
	Cedula:     "cedula",
	FirstName:  "nombre",
	LastName:   "apellido",
	RoleCode:   "tipo_usuario",
	SecretHash: "contrasena",
	Email:      "correo",
}

func (t MainIdentityTable) Columns() []string {
	return []string{t.Cedula, t.FirstName, t.LastName, t.RoleCode, t.SecretHash, t.Email}
}
