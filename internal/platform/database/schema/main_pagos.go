// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// MainPaymentTable represents the 'tabla_pagos' table
type MainPaymentTable struct {
	Table            string
	Reference        string
	ResponsibleID    string
	Bank             string
	PaidAt           string
	Amount           string
	StudentFirstName string
	StudentLastName  string
	State            string
}

// MainPayment is the schema definition for tabla_pagos
var MainPayment = MainPaymentTable{
	Table:            "tabla_pagos",
	Reference:        "numero_referencia",
	ResponsibleID:    "cedula_responsable",
	Bank:             "banco_pago",
	PaidAt:           "fecha_pago",
	Amount:           "monto_pago",
	StudentFirstName: "nombre_estudiante",
	StudentLastName:  "apellido_estudiante",
	State:            "estado_pago",
}

func (t MainPaymentTable) Columns() []string {
	return []string{
		t.Reference, t.ResponsibleID, t.Bank, t.PaidAt, t.Amount,
		t.StudentFirstName, t.StudentLastName, t.State,
	}
}
