// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/postgrado/internal/platform/apperr"
	"github.com/taibuivan/postgrado/internal/platform/middleware"
	requestutil "github.com/taibuivan/postgrado/internal/platform/request"
	"github.com/taibuivan/postgrado/internal/platform/respond"
	"github.com/taibuivan/postgrado/internal/platform/sec"
	"github.com/taibuivan/postgrado/pkg/query"
)

// Handler implements the identity HTTP endpoints.
type Handler struct {
	service *Service
	gate    *middleware.Gate
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service, gate *middleware.Gate) *Handler {
	return &Handler{service: service, gate: gate}
}

// RegisterRoutes attaches the identity endpoints to router.
//
// # Endpoints
//   - POST /datosbasicos/          : Create-or-update an identity (admin).
//   - GET  /listar_usuarios/       : Identities filtered by tipo_usuario (admin).
//   - GET  /listado-profesores/    : Professor extension rows.
//   - GET  /obtenerdatos/          : One student by cedula (admin).
func (handler *Handler) RegisterRoutes(router chi.Router) {
	admin := handler.gate.Allow(sec.IsAuthenticated, sec.IsAdmin)

	router.With(admin).Post("/datosbasicos", handler.upsert)
	router.With(admin).Get("/listar_usuarios", handler.list)
	router.With(admin).Get("/obtenerdatos", handler.findStudent)
	router.With(handler.gate.Allow(sec.IsAuthenticated)).Get("/listado-profesores", handler.professors)
}

/*
upsert handles the create-or-update workflow.

POST /api/datosbasicos/

Response:
  - 201: {"message": "Usuario registrado con éxito.", "data": Identity}
  - 200: {"message": "Usuario encontrado y actualizado con éxito.", "data": Identity}
  - 400: UNKNOWN_ROLE or VALIDATION_ERROR
  - 500: Unexpected failure, with its message
*/
func (handler *Handler) upsert(writer http.ResponseWriter, request *http.Request) {
	var input UpsertInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Upsert(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, apperr.Surface(err))
		return
	}

	if result.Created {
		respond.Message(writer, http.StatusCreated, MessageCreated, result.Identity)
		return
	}
	respond.Message(writer, http.StatusOK, MessageUpdated, result.Identity)
}

/*
list returns identities by role.

GET /api/listar_usuarios/?tipo_usuario=1,3
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	codes := query.Ints(request.URL.Query(), FieldRoleCode)

	identities, err := handler.service.List(request.Context(), codes)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, identities)
}

// professors handles GET /api/listado-profesores/.
func (handler *Handler) professors(writer http.ResponseWriter, request *http.Request) {
	profiles, err := handler.service.Professors(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profiles)
}

/*
findStudent returns one student.

GET /api/obtenerdatos/?cedula=V123

Response:
  - 200: {"data": Identity}
  - 400: VALIDATION_ERROR when cedula is missing
  - 404: STUDENT_NOT_FOUND
*/
func (handler *Handler) findStudent(writer http.ResponseWriter, request *http.Request) {
	student, err := handler.service.FindStudent(request.Context(), request.URL.Query().Get(FieldCedula))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, student)
}
