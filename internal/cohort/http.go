// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cohort

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/postgrado/internal/platform/apperr"
	"github.com/taibuivan/postgrado/internal/platform/middleware"
	requestutil "github.com/taibuivan/postgrado/internal/platform/request"
	"github.com/taibuivan/postgrado/internal/platform/respond"
	"github.com/taibuivan/postgrado/internal/platform/sec"
)

// Handler implements the cohort HTTP endpoints.
//
// Verification and generation answer with bare JSON bodies; the listing uses
// the data envelope.
type Handler struct {
	service *Service
	gate    *middleware.Gate
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service, gate *middleware.Gate) *Handler {
	return &Handler{service: service, gate: gate}
}

// RegisterRoutes attaches the cohort endpoints to router.
//
// # Endpoints
//   - POST /verificar-codigo-cohorte/ : Is the code taken, and the next suggestion.
//   - POST /cohorte-generar-codigo/   : Create a cohort under the first free code.
//   - GET  /cohortes/                 : All cohorts.
//
// Paths are registered without a trailing slash. The server cleans request
// paths first, so the slashed form from the endpoint list also matches.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	admin := handler.gate.Allow(sec.IsAuthenticated, sec.IsAdmin)

	router.With(admin).Post("/verificar-codigo-cohorte", handler.verify)
	router.With(admin).Post("/cohorte-generar-codigo", handler.generate)
	router.With(handler.gate.Allow(sec.IsAuthenticated)).Get("/cohortes", handler.list)
}

/*
verify reports whether a code is taken.

POST /api/verificar-codigo-cohorte/

Response:
  - 200: {"exists": false} or {"exists": true, "new_code": "FIIB-2024"}
  - 400: MISSING_CODE
*/
func (handler *Handler) verify(writer http.ResponseWriter, request *http.Request) {
	var input VerifyInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Verify(request.Context(), input.Code)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, result)
}

/*
generate creates a cohort under the first free code.

POST /api/cohorte-generar-codigo/

Response:
  - 201: {"codigo_cohorte": "FIIB-2024"}
  - 400: MISSING_CODE or VALIDATION_ERROR
  - 500: Unexpected failure, with its message
*/
func (handler *Handler) generate(writer http.ResponseWriter, request *http.Request) {
	var input GenerateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	code, err := handler.service.Generate(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, apperr.Surface(err))
		return
	}

	respond.JSON(writer, http.StatusCreated, map[string]string{FieldCode: code})
}

// list handles GET /api/cohortes/.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	cohorts, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, cohorts)
}
