// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package payment exposes the tuition payments table to administrators:
// a paginated listing and a batch review of payment states.
package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/postgrado/internal/platform/validate"
	"github.com/taibuivan/postgrado/pkg/pagination"
	"github.com/taibuivan/postgrado/pkg/slice"
)

// Service implements the payment use cases.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// List returns one page of payments together with its pagination metadata.
func (service *Service) List(context context.Context, params pagination.Params) ([]*Payment, pagination.Meta, error) {
	payments, total, err := service.repository.List(context, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	if payments == nil {
		payments = []*Payment{}
	}

	return payments, pagination.NewMeta(params, total), nil
}

/*
UpdateStates reviews a batch of payments.

Description: Every entry is validated before anything is written. When a
reference appears more than once the last entry wins. Either every update
is applied or none is.

Returns:
  - *UpdateResult: Number of payments updated and the unknown references
  - error: VALIDATION_ERROR or storage failures
*/
func (service *Service) UpdateStates(context context.Context, input UpdateInput) (*UpdateResult, error) {
	if err := validateUpdates(input.Payments); err != nil {
		return nil, err
	}

	updates := slice.LastByKey(input.Payments, func(update StateUpdate) int { return update.Reference })
	missing, err := service.repository.UpdateStates(context, updates)
	if err != nil {
		return nil, fmt.Errorf("payment_service_update_states_failed: %w", err)
	}
	if missing == nil {
		missing = []int{}
	}

	result := &UpdateResult{Updated: len(updates) - len(missing), Missing: missing}

	service.logger.InfoContext(context, "payment_states_updated",
		slog.Any("references", slice.Map(updates, func(update StateUpdate) int { return update.Reference })),
		slog.Int("updated", result.Updated),
		slog.Int("missing", len(missing)),
	)

	return result, nil
}

func validateUpdates(updates []StateUpdate) error {
	validator := &validate.Validator{}
	validator.
		Custom(FieldPayments, len(updates) == 0, "Debe incluir al menos un pago").
		Custom(FieldPayments, len(updates) > maxBatchSize, fmt.Sprintf("Máximo %d pagos por solicitud", maxBatchSize))

	for index, update := range updates {
		prefix := fmt.Sprintf("%s[%d].", FieldPayments, index)
		validator.
			Custom(prefix+FieldReference, update.Reference <= 0, "Debe ser un número de referencia válido").
			OneOf(prefix+FieldState, update.State, StatePending, StateConfirmed, StateRejected)
	}

	return validator.Err()
}
