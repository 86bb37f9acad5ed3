// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// MainCohortTable represents the 'cohorte' table
type MainCohortTable struct {
	Table       string
	Code        string
	StartDate   string
	EndDate     string
	Site        string
	ProgramType string
}

// MainCohort is the schema definition for cohorte
var MainCohort = MainCohortTable{
	Table:       "cohorte",
	Code:        "codigo_cohorte",
	StartDate:   "fecha_inicio",
	EndDate:     "fecha_fin",
	Site:        "sede_cohorte",
	ProgramType: "tipo_maestria",
}

func (t MainCohortTable) Columns() []string {
	return []string{t.Code, t.StartDate, t.EndDate, t.Site, t.ProgramType}
}
