// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package petition

import "time"

// Petition is a request filed on behalf of a student, such as a transcript
// or a program change. The status is free text set by the registry office.
type Petition struct {
	Code             string    `json:"cod_solicitudes"`
	ResponsibleID    string    `json:"cedula_responsable"`
	StudentFirstName string    `json:"nombre_estudiante"`
	StudentLastName  string    `json:"apellido_estudiante"`
	SubmittedAt      time.Time `json:"fecha_solicitud"`
	Status           string    `json:"status_solicitud"`
	Kind             string    `json:"tipo_solicitud"`
}

// Filter narrows a listing. Zero values match everything.
type Filter struct {
	ResponsibleID string
	Statuses      []string
}
