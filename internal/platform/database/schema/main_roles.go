// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// MainRoleTable represents the 'roles' table
type MainRoleTable struct {
	Table string
	Code  string
	Label string
}

// MainRole is the schema definition for roles
var MainRole = MainRoleTable{
	Table: "roles",
	Code:  "codigo_rol",
	Label: "nombre_rol",
}
