// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package payment

import "time"

// Payment is a tuition payment reported by a student.
type Payment struct {
	Reference        int       `json:"numero_referencia"`
	ResponsibleID    string    `json:"cedula_responsable"`
	Bank             string    `json:"banco_pago"`
	PaidAt           time.Time `json:"fecha_pago"`
	Amount           int       `json:"monto_pago"`
	StudentFirstName *string   `json:"nombre_estudiante"`
	StudentLastName  *string   `json:"apellido_estudiante"`
	State            string    `json:"estado_pago"`
}

// StateUpdate sets the review state of one payment.
type StateUpdate struct {
	Reference int    `json:"numero_referencia"`
	State     string `json:"estado_pago"`
}

// UpdateInput is the body of the batch state update endpoint.
type UpdateInput struct {
	Payments []StateUpdate `json:"pagos"`
}

// UpdateResult reports how many payments changed and which references were unknown.
type UpdateResult struct {
	Updated int   `json:"actualizados"`
	Missing []int `json:"no_encontrados"`
}
