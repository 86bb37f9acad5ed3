// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package payment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/postgrado/internal/platform/middleware"
	requestutil "github.com/taibuivan/postgrado/internal/platform/request"
	"github.com/taibuivan/postgrado/internal/platform/respond"
	"github.com/taibuivan/postgrado/internal/platform/sec"
	"github.com/taibuivan/postgrado/pkg/pagination"
)

// Handler implements the payment HTTP endpoints.
type Handler struct {
	service *Service
	gate    *middleware.Gate
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service, gate *middleware.Gate) *Handler {
	return &Handler{service: service, gate: gate}
}

// RegisterRoutes attaches the payment endpoints to router.
//
// # Endpoints
//   - GET  /pagos/            : Paginated payments (admin).
//   - POST /actualizar-pago/  : Batch review of payment states (admin).
func (handler *Handler) RegisterRoutes(router chi.Router) {
	admin := handler.gate.Allow(sec.IsAuthenticated, sec.IsAdmin)

	router.With(admin).Get("/pagos", handler.list)
	router.With(admin).Post("/actualizar-pago", handler.updateStates)
}

// list handles GET /api/pagos/?page=1&limit=20.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	payments, meta, err := handler.service.List(request.Context(), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, payments, meta)
}

/*
updateStates reviews a batch of payments.

POST /api/actualizar-pago/

Request:
  - {"pagos": [{"numero_referencia": 1001, "estado_pago": "Confirmado"}]}

Response:
  - 200: {"message", "data": {"actualizados", "no_encontrados"}}
  - 400: VALIDATION_ERROR
*/
func (handler *Handler) updateStates(writer http.ResponseWriter, request *http.Request) {
	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.UpdateStates(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, http.StatusOK, MessageStatesUpdated, result)
}
