// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/postgrado/internal/platform/middleware"
	"github.com/taibuivan/postgrado/internal/platform/sec"
)

func newAuthRouter(t *testing.T) (chi.Router, *serviceFixture) {
	t.Helper()

	fixture := newServiceFixture(t)
	gate := middleware.NewGate(NewAuthenticator(fixture.tokens, fixture.identities))
	handler := NewHandler(fixture.service, gate)

	router := chi.NewRouter()
	router.Use(chimw.CleanPath)
	router.Route("/api", handler.RegisterRoutes)
	return router, fixture
}

func post(router http.Handler, path, token, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestHandler_LoginEndpoints(t *testing.T) {
	router, fixture := newAuthRouter(t)
	fixture.identities.add(t, "V1", "admin-pass", sec.RoleAdmin)
	fixture.identities.add(t, "V3", "prof-pass", sec.RoleProfessor)

	tests := []struct {
		name     string
		path     string
		body     string
		wantCode int
	}{
		{"admin", "/api/admin-login/", `{"cedula":"V1","contraseña":"admin-pass"}`, http.StatusOK},
		{"professor", "/api/login_profesor/", `{"cedula":"V3","contraseña":"prof-pass"}`, http.StatusOK},
		{"professor on student endpoint", "/api/login_estudiante/", `{"cedula":"V3","contraseña":"prof-pass"}`, http.StatusUnauthorized},
		{"wrong secret", "/api/admin-login/", `{"cedula":"V1","contraseña":"nope"}`, http.StatusUnauthorized},
		{"missing fields", "/api/admin-login/", `{"cedula":"V1"}`, http.StatusBadRequest},
		{"malformed json", "/api/admin-login/", `{"cedula":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := post(router, tt.path, "", tt.body)
			require.Equal(t, tt.wantCode, recorder.Code)

			body := decode(t, recorder)
			switch tt.wantCode {
			case http.StatusOK:
				assert.NotEmpty(t, body["access"])
				assert.NotEmpty(t, body["refresh"])
				assert.NotEmpty(t, body["user"])
			case http.StatusUnauthorized:
				assert.Equal(t, "Credenciales inválidas.", body["error"])
			}
		})
	}
}

func TestHandler_LoginIgnoresBrokenAuthorizationHeader(t *testing.T) {
	router, fixture := newAuthRouter(t)
	fixture.identities.add(t, "V1", "admin-pass", sec.RoleAdmin)

	request := httptest.NewRequest(http.MethodPost, "/api/admin-login/", strings.NewReader(`{"cedula":"V1","contraseña":"admin-pass"}`))
	request.Header.Set("Authorization", "Bearer")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_SessionLifecycle(t *testing.T) {
	router, fixture := newAuthRouter(t)
	fixture.identities.add(t, "V2", "student-pass", sec.RoleStudent)

	login := decode(t, post(router, "/api/login_estudiante/", "", `{"cedula":"V2","contraseña":"student-pass"}`))
	access := login["access"].(string)
	refresh := login["refresh"].(string)

	// user-info
	request := httptest.NewRequest(http.MethodGet, "/api/user-info/", nil)
	request.Header.Set("Authorization", "Bearer "+access)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)
	data := decode(t, recorder)["data"].(map[string]any)
	assert.Equal(t, "V2", data["cedula"])
	assert.Equal(t, "ESTUDIANTE", data["rol"])

	// refresh
	recorder = post(router, "/api/token/refresh/", "", `{"refresh":"`+refresh+`"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, decode(t, recorder)["access"])

	// logout requires authentication
	recorder = post(router, "/api/logout/", "", `{"refresh":"`+refresh+`"}`)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, CodeMissingCredentials, decode(t, recorder)["code"])

	recorder = post(router, "/api/logout/", access, `{"refresh":"`+refresh+`"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, MessageLoggedOut, decode(t, recorder)["message"])

	// revoked refresh token
	recorder = post(router, "/api/token/refresh/", "", `{"refresh":"`+refresh+`"}`)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, CodeTokenRevoked, decode(t, recorder)["code"])
}

func TestHandler_ProtectedRouteErrors(t *testing.T) {
	router, _ := newAuthRouter(t)

	tests := []struct {
		name     string
		header   string
		wantCode string
	}{
		{"missing", "", CodeMissingCredentials},
		{"malformed", "Bearer a b", CodeMalformedCredentials},
		{"invalid", "Bearer garbage", CodeInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/api/user-info/", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			require.Equal(t, http.StatusUnauthorized, recorder.Code)
			body := decode(t, recorder)
			assert.Equal(t, tt.wantCode, body["code"])
			assert.NotEmpty(t, body["error"])
		})
	}
}
