// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/postgrado/internal/platform/constants"
	"github.com/taibuivan/postgrado/internal/platform/middleware"
	requestutil "github.com/taibuivan/postgrado/internal/platform/request"
	"github.com/taibuivan/postgrado/internal/platform/respond"
	"github.com/taibuivan/postgrado/internal/platform/sec"
	"github.com/taibuivan/postgrado/internal/platform/validate"
)

// Handler implements the authentication HTTP endpoints.
//
// # Scope
//
// Login, refresh and logout keep the token-pair body shape the existing
// frontend decodes, so they write bare JSON instead of the data envelope.
type Handler struct {
	authService *Service
	gate        *middleware.Gate
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service, gate *middleware.Gate) *Handler {
	return &Handler{authService: service, gate: gate}
}

// RegisterRoutes attaches the authentication endpoints to router.
//
// # Endpoints
//   - POST /admin-login/          : Admin login.
//   - POST /login_profesor/       : Professor login.
//   - POST /login_estudiante/     : Student login.
//   - POST /token/refresh/        : New access token from a refresh token.
//   - POST /logout/               : Revoke a refresh token.
//   - GET  /user-info/            : The caller's own profile.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	public := handler.gate.Allow(sec.AllowAny)
	authenticated := handler.gate.Allow(sec.IsAuthenticated)

	router.With(public).Post("/admin-login", handler.login(sec.RoleAdmin))
	router.With(public).Post("/login_profesor", handler.login(sec.RoleProfessor))
	router.With(public).Post("/login_estudiante", handler.login(sec.RoleStudent))
	router.With(public).Post("/token/refresh", handler.refresh)

	router.With(authenticated).Post("/logout", handler.logout)
	router.With(authenticated).Get("/user-info", handler.userInfo)
}

// # Request Payloads

type loginRequest struct {
	Cedula string `json:"cedula"`
	Secret string `json:"contraseña"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

/*
login authenticates a user for one role.

POST /api/admin-login/, /api/login_profesor/, /api/login_estudiante/

Response:
  - 200: {"access", "refresh", "user"}
  - 400: VALIDATION_ERROR: Missing fields
  - 401: INVALID_CREDENTIALS: "Credenciales inválidas."
*/
func (handler *Handler) login(role sec.Role) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var input loginRequest
		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}

		validator := &validate.Validator{}
		validator.Required(FieldCedula, input.Cedula).Required(FieldSecret, input.Secret)
		if err := validator.Err(); err != nil {
			respond.Error(writer, request, err)
			return
		}

		session, err := handler.authService.Login(request.Context(), role, LoginInput{
			Cedula: input.Cedula,
			Secret: input.Secret,
		})
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.JSON(writer, http.StatusOK, session)
	}
}

/*
refresh issues a new access token.

POST /api/token/refresh/

Response:
  - 200: {"access"}
  - 401: INVALID_TOKEN, TOKEN_REVOKED or IDENTITY_NOT_FOUND
*/
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	var input refreshRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if input.Refresh == "" {
		respond.Error(writer, request, validate.Missing(FieldRefresh))
		return
	}

	accessToken, err := handler.authService.Refresh(request.Context(), input.Refresh)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, map[string]string{"access": accessToken})
}

/*
logout revokes the caller's refresh token.

POST /api/logout/

Response:
  - 200: {"message": "Sesión cerrada con éxito."}
  - 401: INVALID_TOKEN
  - 403: Refresh token issued to another user
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input refreshRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if input.Refresh == "" {
		respond.Error(writer, request, validate.Missing(FieldRefresh))
		return
	}

	if err := handler.authService.Logout(request.Context(), principal, input.Refresh); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, map[string]string{constants.FieldMessage: MessageLoggedOut})
}

// userInfo handles GET /api/user-info/.
func (handler *Handler) userInfo(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	info, err := handler.authService.UserInfo(request.Context(), principal)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, info)
}
