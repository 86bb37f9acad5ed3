// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package identity manages the people known to the postgraduate program.

Every admin, student and professor is an [Identity] keyed by national ID.
An identity with a role also owns one [LoginRecord], and professors own
extension rows in the professors table.

Architecture:

  - Service: The create-or-update workflow and the read-only listings.
  - Catalog: Roles loaded once from the reference table at startup.
  - Repository: PostgreSQL implementations of the data access contracts.
*/
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/taibuivan/postgrado/internal/platform/apperr"
	"github.com/taibuivan/postgrado/internal/platform/dberr"
	"github.com/taibuivan/postgrado/internal/platform/sec"
	"github.com/taibuivan/postgrado/internal/platform/validate"
	"github.com/taibuivan/postgrado/pkg/pointer"
)

// ErrUnknownRole is returned when tipo_usuario matches no catalogued role.
var ErrUnknownRole = apperr.BadRequest(CodeUnknownRole, "Tipo de usuario no encontrado.")

// ErrStudentNotFound is returned when a cedula names no student.
var ErrStudentNotFound = apperr.New(http.StatusNotFound, CodeStudentNotFound, "Estudiante no encontrado.")

// Service implements the identity use cases.
type Service struct {
	store   Store
	catalog *Catalog
	logger  *slog.Logger
}

// NewService constructs a new [Service].
func NewService(store Store, catalog *Catalog, logger *slog.Logger) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// Catalog returns the role catalogue the service resolves codes against.
func (service *Service) Catalog() *Catalog {
	return service.catalog
}

// # Upsert Workflow

/*
Upsert creates a new identity or updates the existing one with the same cedula,
then synchronizes its login record and professor extension.

Description: Every string but the secret is upper-cased first. An unknown role
is rejected before anything is read or written. The writes are sequential and
not wrapped in a transaction.

Parameters:
  - context: context.Context
  - input: UpsertInput

Returns:
  - *UpsertResult: The stored identity and whether it was created
  - error: ErrUnknownRole, VALIDATION_ERROR or storage failures
*/
func (service *Service) Upsert(context context.Context, input UpsertInput) (*UpsertResult, error) {
	normalize(&input)

	if strings.TrimSpace(pointer.Val(input.Cedula)) == "" {
		return nil, validate.Missing(FieldCedula)
	}

	// 1. Role resolution happens before any store access
	var role *sec.Role
	if input.RoleCode != nil {
		resolved, ok := service.catalog.Resolve(*input.RoleCode)
		if !ok {
			return nil, ErrUnknownRole
		}
		role = &resolved
	}

	// 2. Branch on existence
	existing, err := service.store.FindByCedula(context, *input.Cedula)
	var result *UpsertResult
	switch {
	case err == nil:
		result, err = service.update(context, existing, input, role)
	case errors.Is(err, dberr.ErrNotFound):
		result, err = service.create(context, input, role)
	default:
		return nil, fmt.Errorf("identity_service_lookup_failed: %w", err)
	}
	if err != nil {
		return nil, err
	}

	// 3. Professor extension, on every call
	if role != nil && *role == sec.RoleProfessor {
		profile := &ProfessorProfile{
			Cedula:    result.Identity.Cedula,
			FirstName: pointer.To(result.Identity.FirstName),
			LastName:  pointer.To(result.Identity.LastName),
		}
		if err := service.store.CreateProfessor(context, profile); err != nil {
			return nil, fmt.Errorf("identity_service_professor_failed: %w", err)
		}
	}

	service.logger.InfoContext(context, "identity_upserted",
		slog.String("cedula", result.Identity.Cedula),
		slog.Int("tipo_usuario", result.Identity.RoleCode),
		slog.Bool("created", result.Created),
	)

	return result, nil
}

func (service *Service) create(context context.Context, input UpsertInput, role *sec.Role) (*UpsertResult, error) {
	validator := &validate.Validator{}
	validator.
		MaxLen(FieldCedula, *input.Cedula, maxCedulaLength).
		Required(FieldFirstName, pointer.Val(input.FirstName)).
		MaxLen(FieldFirstName, pointer.Val(input.FirstName), maxNameLength).
		Required(FieldLastName, pointer.Val(input.LastName)).
		MaxLen(FieldLastName, pointer.Val(input.LastName), maxNameLength).
		Custom(FieldRoleCode, role == nil, "Este campo es obligatorio")
	validateSecret(validator, pointer.Val(input.Secret))
	validateEmail(validator, input.Email)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	secretHash, err := sec.HashSecret(*input.Secret)
	if err != nil {
		return nil, fmt.Errorf("identity_service_hash_failed: %w", err)
	}

	identity := &Identity{
		Cedula:     *input.Cedula,
		FirstName:  *input.FirstName,
		LastName:   *input.LastName,
		RoleCode:   role.Code(),
		SecretHash: secretHash,
		Email:      pointer.Val(input.Email),
	}

	if err := service.store.Create(context, identity); err != nil {
		return nil, fmt.Errorf("identity_service_create_failed: %w", err)
	}

	if _, err := service.store.UpsertLogin(context, identity.Cedula, identity.SecretHash, *role); err != nil {
		return nil, fmt.Errorf("identity_service_login_failed: %w", err)
	}

	return &UpsertResult{Identity: identity, Created: true}, nil
}

func (service *Service) update(context context.Context, identity *Identity, input UpsertInput, role *sec.Role) (*UpsertResult, error) {
	validator := &validate.Validator{}
	if input.FirstName != nil {
		validator.Required(FieldFirstName, *input.FirstName).MaxLen(FieldFirstName, *input.FirstName, maxNameLength)
	}
	if input.LastName != nil {
		validator.Required(FieldLastName, *input.LastName).MaxLen(FieldLastName, *input.LastName, maxNameLength)
	}
	if input.Secret != nil {
		validateSecret(validator, *input.Secret)
	}
	validateEmail(validator, input.Email)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Partial update: only supplied fields overwrite the stored ones
	identity.FirstName = pointer.Or(input.FirstName, identity.FirstName)
	identity.LastName = pointer.Or(input.LastName, identity.LastName)
	identity.Email = pointer.Or(input.Email, identity.Email)
	if role != nil {
		identity.RoleCode = role.Code()
	}
	if input.Secret != nil {
		secretHash, err := sec.HashSecret(*input.Secret)
		if err != nil {
			return nil, fmt.Errorf("identity_service_hash_failed: %w", err)
		}
		identity.SecretHash = secretHash
	}

	if err := service.store.Update(context, identity); err != nil {
		return nil, fmt.Errorf("identity_service_update_failed: %w", err)
	}

	if role != nil {
		if _, err := service.store.UpsertLogin(context, identity.Cedula, identity.SecretHash, *role); err != nil {
			return nil, fmt.Errorf("identity_service_login_failed: %w", err)
		}
	}

	return &UpsertResult{Identity: identity, Created: false}, nil
}

// validateSecret bounds the secret by bcrypt's input limit.
func validateSecret(validator *validate.Validator, secret string) {
	validator.
		Required(FieldSecret, secret).
		MinLen(FieldSecret, secret, minSecretLength).
		Custom(FieldSecret, len(secret) > sec.MaxSecretBytes, fmt.Sprintf("Máximo %d bytes", sec.MaxSecretBytes))
}

// validateEmail accepts an absent or blank address and checks anything else.
func validateEmail(validator *validate.Validator, email *string) {
	if email != nil && strings.TrimSpace(*email) != "" {
		validator.Email(FieldEmail, *email)
	}
}

// normalize upper-cases every supplied string except the secret, which is
// case-sensitive.
func normalize(input *UpsertInput) {
	input.Cedula = pointer.Map(input.Cedula, Normalize)
	input.FirstName = pointer.Map(input.FirstName, Normalize)
	input.LastName = pointer.Map(input.LastName, Normalize)
	input.Email = pointer.Map(input.Email, Normalize)
}

// Normalize trims and upper-cases a value using Spanish casing rules, the
// form in which cedulas and names are stored.
func Normalize(value string) string {
	return cases.Upper(language.Spanish).String(strings.TrimSpace(value))
}

// # Listings

// List returns identities whose role is in codes. An empty slice lists everyone.
func (service *Service) List(context context.Context, codes []int) ([]*Identity, error) {
	identities, err := service.store.ListByRoles(context, codes)
	if err != nil {
		return nil, fmt.Errorf("identity_service_list_failed: %w", err)
	}
	return identities, nil
}

/*
FindStudent looks up a student by cedula.

Description: The cedula is normalised the way it is stored. Identities with
any other role are reported as not found.

Returns:
  - *Identity: The student
  - error: VALIDATION_ERROR, ErrStudentNotFound or storage failures
*/
func (service *Service) FindStudent(context context.Context, cedula string) (*Identity, error) {
	cedula = Normalize(cedula)
	if cedula == "" {
		return nil, validate.Missing(FieldCedula)
	}

	identity, err := service.store.FindByCedula(context, cedula)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("identity_service_find_student_failed: %w", err)
	}
	if identity.RoleCode != sec.RoleStudent.Code() {
		return nil, ErrStudentNotFound
	}

	return identity, nil
}

// Professors returns every professor-extension row.
func (service *Service) Professors(context context.Context) ([]*ProfessorProfile, error) {
	profiles, err := service.store.ListProfessors(context)
	if err != nil {
		return nil, fmt.Errorf("identity_service_professors_failed: %w", err)
	}
	return profiles, nil
}
