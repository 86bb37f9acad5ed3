// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package payment

// # Review States

const (
	StatePending   = "Pendiente"
	StateConfirmed = "Confirmado"
	StateRejected  = "Negado"
)

// # Request Fields

const (
	FieldPayments  = "pagos"
	FieldReference = "numero_referencia"
	FieldState     = "estado_pago"
)

// # Response Messages

const (
	MessageStatesUpdated = "Estados de pago actualizados."
)

// maxBatchSize bounds the number of payments in one update request.
const maxBatchSize = 500
