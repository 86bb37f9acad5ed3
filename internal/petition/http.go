// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package petition

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/postgrado/internal/platform/middleware"
	requestutil "github.com/taibuivan/postgrado/internal/platform/request"
	"github.com/taibuivan/postgrado/internal/platform/respond"
	"github.com/taibuivan/postgrado/internal/platform/sec"
	"github.com/taibuivan/postgrado/pkg/pagination"
	"github.com/taibuivan/postgrado/pkg/query"
)

// Handler implements the petition HTTP endpoints.
type Handler struct {
	service *Service
	gate    *middleware.Gate
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service, gate *middleware.Gate) *Handler {
	return &Handler{service: service, gate: gate}
}

// RegisterRoutes attaches the petition endpoints to router.
//
// # Endpoints
//   - GET /solicitudes/ : Paginated petitions, scoped to the caller's role.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.With(handler.gate.Allow(sec.IsAuthenticated)).Get("/solicitudes", handler.list)
}

/*
list returns one page of petitions.

GET /api/solicitudes/?page=1&limit=20&status_solicitud=Pendiente,Aprobada

Response:
  - 200: {"data": [Petition], "meta": {...}}
  - 403: Professors
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	statuses := query.Strings(request.URL.Query(), FieldStatus)
	petitions, meta, err := handler.service.List(request.Context(), principal, statuses, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, petitions, meta)
}
