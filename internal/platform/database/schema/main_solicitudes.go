// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// MainPetitionTable represents the 'tabla_solicitudes' table
type MainPetitionTable struct {
	Table            string
	Code             string
	ResponsibleID    string
	StudentFirstName string
	StudentLastName  string
	SubmittedAt      string
	Status           string
	Kind             string
}

// MainPetition is the schema definition for tabla_solicitudes
var MainPetition = MainPetitionTable{
	Table:            "tabla_solicitudes",
	Code:             "cod_solicitudes",
	ResponsibleID:    "cedula_responsable",
	StudentFirstName: "nombre_estudiante",
	StudentLastName:  "apellido_estudiante",
	SubmittedAt:      "fecha_solicitud",
	Status:           "status_solicitud",
	Kind:             "tipo_solicitud",
}

func (t MainPetitionTable) Columns() []string {
	return []string{
		t.Code, t.ResponsibleID, t.StudentFirstName, t.StudentLastName,
		t.SubmittedAt, t.Status, t.Kind,
	}
}
