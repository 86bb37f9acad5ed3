// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cohort

import "time"

// Cohort is an intake group of students identified by a unique code such as
// FIIA-2024.
type Cohort struct {
	Code        string    `json:"codigo_cohorte"`
	StartDate   time.Time `json:"fecha_inicio"`
	EndDate     time.Time `json:"fecha_fin"`
	Site        string    `json:"sede_cohorte"`
	ProgramType string    `json:"tipo_maestria"`
}

// VerifyInput is the body of the code verification endpoint.
type VerifyInput struct {
	Code string `json:"codigo_cohorte"`
}

// VerifyResult reports whether a candidate code is taken. NewCode is the
// next-letter suggestion and is only set when the candidate exists.
type VerifyResult struct {
	Exists  bool   `json:"exists"`
	NewCode string `json:"new_code,omitempty"`
}

// GenerateInput holds the candidate code and the attributes of the cohort to create.
type GenerateInput struct {
	Code        string `json:"codigo_cohorte"`
	StartDate   string `json:"fecha_inicio"`
	EndDate     string `json:"fecha_fin"`
	Site        string `json:"sede_cohorte"`
	ProgramType string `json:"tipo_maestria"`
}
