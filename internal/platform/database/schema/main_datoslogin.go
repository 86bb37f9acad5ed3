// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// MainLoginTable represents the 'datos_login' table
type MainLoginTable struct {
	Table      string
	ID         string
	Cedula     string
	SecretHash string
	RoleCode   string
}

// MainLogin is the schema definition for datos_login
var MainLogin = MainLoginTable{
	Table:      "datos_login",
	ID:         "id",
	Cedula:     "cedula_usuario",
	SecretHash: "contrasena_usuario",
	RoleCode:   "tipo_usuario",
}

func (t MainLoginTable) Columns() []string {
	return []string{t.ID, t.Cedula, t.SecretHash, t.RoleCode}
}
