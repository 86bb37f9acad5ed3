// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cohort

// # Request Fields

const (
	FieldCode        = "codigo_cohorte"
	FieldStartDate   = "fecha_inicio"
	FieldEndDate     = "fecha_fin"
	FieldSite        = "sede_cohorte"
	FieldProgramType = "tipo_maestria"
)

// # Sites

const (
	SiteBarcelona = "barcelona"
	SiteCantaura  = "cantaura"
)

// # Program Types

const (
	ProgramGeneralManagement = "GG"
	ProgramFinance           = "FI"
	ProgramHumanResources    = "RH"
)

// # Error Codes

const (
	// CodeMissingCode is returned when no candidate code was supplied.
	CodeMissingCode = "MISSING_CODE"
)

// # Code Layout

const (
	// yearLength is the number of trailing runes holding the year.
	yearLength = 4

	// minCodeLength covers the revision letter, its separator and the year.
	minCodeLength = 6
)
