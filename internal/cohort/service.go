// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cohort manages cohort codes and cohort records.

A cohort code has the layout <PREFIX><LETTER>-<YEAR>. When a code is taken
the revision letter is advanced one code point at a time until a free code
is found.

Architecture:

  - Service: Code verification, generate-and-create, listing.
  - Repository: PostgreSQL storage with an atomic insert-if-absent.
*/
package cohort

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/postgrado/internal/platform/apperr"
	"github.com/taibuivan/postgrado/internal/platform/validate"
)

// ErrMissingCode is returned when no candidate code was supplied.
var ErrMissingCode = apperr.BadRequest(CodeMissingCode, "Código de cohorte no proporcionado.")

// Service implements the cohort use cases.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

/*
Verify reports whether code is taken.

Description: When it is, the result carries the next-letter suggestion.
Only one increment is made and the suggestion itself is not checked.

Returns:
  - *VerifyResult: exists, plus new_code when exists is true
  - error: ErrMissingCode, VALIDATION_ERROR or storage failures
*/
func (service *Service) Verify(context context.Context, code string) (*VerifyResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrMissingCode
	}
	if !validCodeLength(code) {
		return nil, codeLengthError()
	}

	exists, err := service.repository.Exists(context, code)
	if err != nil {
		return nil, fmt.Errorf("cohort_service_verify_failed: %w", err)
	}
	if !exists {
		return &VerifyResult{Exists: false}, nil
	}

	suggestion, err := nextCode(code)
	if err != nil {
		return nil, codeLengthError()
	}

	return &VerifyResult{Exists: true, NewCode: suggestion}, nil
}

/*
Generate assigns the first free code derived from the candidate and creates
the cohort under it.

Description: The revision letter advances until an insert succeeds. The loop
has no upper bound and stops only on success, on a creation failure or when
the context ends.

Parameters:
  - context: context.Context
  - input: GenerateInput

Returns:
  - string: The code the cohort was created with
  - error: ErrMissingCode or VALIDATION_ERROR (including creation failures)
*/
func (service *Service) Generate(context context.Context, input GenerateInput) (string, error) {
	input.Code = strings.TrimSpace(input.Code)
	if input.Code == "" {
		return "", ErrMissingCode
	}

	cohort, err := buildCohort(input)
	if err != nil {
		return "", err
	}

	candidate := input.Code
	for attempts := 1; ; attempts++ {
		if err := context.Err(); err != nil {
			return "", fmt.Errorf("cohort_service_generate_aborted: %w", err)
		}

		cohort.Code = candidate
		inserted, err := service.repository.CreateIfAbsent(context, cohort)
		if err != nil {
			return "", creationFailed(err)
		}

		if inserted {
			service.logger.InfoContext(context, "cohort_code_assigned",
				slog.String("requested", input.Code),
				slog.String("assigned", candidate),
				slog.Int("attempts", attempts),
			)
			return candidate, nil
		}

		candidate, err = nextCode(candidate)
		if err != nil {
			return "", codeLengthError()
		}
	}
}

// List returns every stored cohort.
func (service *Service) List(context context.Context) ([]*Cohort, error) {
	cohorts, err := service.repository.List(context)
	if err != nil {
		return nil, err
	}
	if cohorts == nil {
		cohorts = []*Cohort{}
	}
	return cohorts, nil
}

// # Helpers

func buildCohort(input GenerateInput) (*Cohort, error) {
	cohort := &Cohort{Site: input.Site, ProgramType: input.ProgramType}

	validator := &validate.Validator{}
	validator.
		Custom(FieldCode, !validCodeLength(input.Code), errCodeTooShort.Error()).
		Date(FieldStartDate, input.StartDate, &cohort.StartDate).
		Date(FieldEndDate, input.EndDate, &cohort.EndDate).
		OneOf(FieldSite, input.Site, SiteBarcelona, SiteCantaura).
		OneOf(FieldProgramType, input.ProgramType, ProgramGeneralManagement, ProgramFinance, ProgramHumanResources)

	if !validator.Failed(FieldStartDate) {
		validator.Custom(FieldEndDate, cohort.EndDate.Before(cohort.StartDate), "Debe ser posterior a fecha_inicio")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}
	return cohort, nil
}

func codeLengthError() error {
	return validate.FieldError(FieldCode, errCodeTooShort.Error())
}

// creationFailed reports a failed insert as a validation error carrying the cause.
func creationFailed(err error) error {
	failure := apperr.ValidationError(err.Error())
	if classified := apperr.As(err); classified != nil {
		failure = apperr.ValidationError(classified.Message, classified.Details...)
	}
	return failure.WithCause(err)
}
