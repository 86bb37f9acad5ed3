// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// MainProfessorTable represents the 'profesores' table
type MainProfessorTable struct {
	Table       string
	ID          string
	Cedula      string
	FirstName   string
	LastName    string
	ProgramCode string
}

// MainProfessor is the schema definition for profesores
var MainProfessor = MainProfessorTable{
	Table:       "profesores",
	ID:          "id",
	Cedula:      "ci_profesor",
	FirstName:   "nom_profesor_materia",
	LastName:    "ape_profesor_materia",
	ProgramCode: "cod_maestria_prof",
}

func (t MainProfessorTable) Columns() []string {
	return []string{t.ID, t.Cedula, t.FirstName, t.LastName, t.ProgramCode}
}
