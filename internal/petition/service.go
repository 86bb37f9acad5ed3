// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package petition exposes student requests as a read-only listing.
package petition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/postgrado/internal/platform/apperr"
	"github.com/taibuivan/postgrado/internal/platform/sec"
	"github.com/taibuivan/postgrado/internal/platform/validate"
	"github.com/taibuivan/postgrado/pkg/pagination"
)

// ErrNotVisible is returned to callers who may not list petitions at all.
var ErrNotVisible = apperr.Forbidden("Recurso requiere privilegios de administrador o estudiante.")

// Service implements the petition use cases.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

/*
List returns one page of petitions visible to principal.

Description: Administrators see every petition. Students see only the ones
filed under their own cedula. Professors see none.

Returns:
  - []*Petition: The page, never nil
  - pagination.Meta: Page metadata
  - error: ErrNotVisible, VALIDATION_ERROR or storage failures
*/
func (service *Service) List(context context.Context, principal *sec.Principal, statuses []string, params pagination.Params) ([]*Petition, pagination.Meta, error) {
	filter := Filter{Statuses: statuses}
	switch principal.Role {
	case sec.RoleAdmin:
	case sec.RoleStudent:
		filter.ResponsibleID = principal.Cedula
	default:
		return nil, pagination.Meta{}, ErrNotVisible
	}

	validator := &validate.Validator{}
	validator.Custom(FieldStatus, len(statuses) > maxStatusFilters, fmt.Sprintf("Máximo %d valores", maxStatusFilters))
	if err := validator.Err(); err != nil {
		return nil, pagination.Meta{}, err
	}

	petitions, total, err := service.repository.List(context, filter, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("petition_service_list_failed: %w", err)
	}
	if petitions == nil {
		petitions = []*Petition{}
	}

	service.logger.DebugContext(context, "petitions_listed",
		slog.String("role", principal.Role.String()),
		slog.Int("total", total),
	)

	return petitions, pagination.NewMeta(params, total), nil
}
