// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/postgrado/internal/platform/apperr"
	"github.com/taibuivan/postgrado/internal/platform/ctxutil"
	"github.com/taibuivan/postgrado/internal/platform/sec"
	"github.com/taibuivan/postgrado/pkg/uuid"
)

// stubAuthenticator resolves one fixed bearer header into a principal.
type stubAuthenticator struct {
	header    string
	principal *sec.Principal
	calls     int
}

func (stub *stubAuthenticator) Authenticate(_ context.Context, header string, public bool) (*sec.Principal, error) {
	stub.calls++
	if public {
		return nil, nil
	}
	if header == "" {
		return nil, apperr.New(http.StatusUnauthorized, "MISSING_CREDENTIALS", "No authorization header provided")
	}
	if header != stub.header {
		return nil, apperr.New(http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
	}
	return stub.principal, nil
}

type corsConfig struct {
	development bool
	origins     map[string]bool
}

func (c corsConfig) IsDevelopment() bool              { return c.development }
func (c corsConfig) AllowsOrigin(origin string) bool { return c.origins[origin] }

func newGatedRouter(auth *stubAuthenticator) chi.Router {
	gate := NewGate(auth)
	router := chi.NewRouter()

	echo := func(writer http.ResponseWriter, request *http.Request) {
		principal := ctxutil.Principal(request.Context())
		if principal == nil {
			_, _ = writer.Write([]byte("anonymous"))
			return
		}
		_, _ = writer.Write([]byte(principal.Cedula))
	}

	router.With(gate.Allow(sec.AllowAny)).Get("/public", echo)
	router.With(gate.Allow(sec.IsAuthenticated)).Get("/private", echo)
	router.With(gate.Allow(sec.IsAuthenticated, sec.IsAdmin)).Get("/admin", echo)
	return router
}

func errorCode(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	code, _ := body["code"].(string)
	return code
}

func TestGate_PublicRouteIgnoresHeader(t *testing.T) {
	auth := &stubAuthenticator{header: "Bearer good"}
	router := newGatedRouter(auth)

	request := httptest.NewRequest(http.MethodGet, "/public", nil)
	request.Header.Set("Authorization", "Bearer garbage")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "anonymous", recorder.Body.String())
}

func TestGate_PrivateRoute(t *testing.T) {
	auth := &stubAuthenticator{
		header:    "Bearer good",
		principal: &sec.Principal{LoginID: 1, Cedula: "V1", Role: sec.RoleStudent},
	}
	router := newGatedRouter(auth)

	tests := []struct {
		name     string
		path     string
		header   string
		wantCode int
		wantErr  string
	}{
		{"missing header", "/private", "", http.StatusUnauthorized, "MISSING_CREDENTIALS"},
		{"bad token", "/private", "Bearer bad", http.StatusUnauthorized, "INVALID_TOKEN"},
		{"authenticated", "/private", "Bearer good", http.StatusOK, ""},
		{"student on admin route", "/admin", "Bearer good", http.StatusForbidden, "FORBIDDEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, errorCode(t, recorder))
			} else {
				assert.Equal(t, "V1", recorder.Body.String())
			}
		})
	}
}

func TestGate_UnmatchedRouteNeverAuthenticates(t *testing.T) {
	auth := &stubAuthenticator{header: "Bearer good"}
	router := newGatedRouter(auth)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Zero(t, auth.calls)
}

func TestRequestID(t *testing.T) {
	handler := RequestID()(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(ctxutil.RequestID(request.Context())))
	}))

	t.Run("generated", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, recorder.Body.String())
		assert.Equal(t, recorder.Body.String(), recorder.Header().Get("X-Request-ID"))
	})

	t.Run("propagated", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("X-Request-ID", "0190f5a2-7c1e-7b3a-9f5d-2a6c1e8b4d21")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		assert.Equal(t, "0190f5a2-7c1e-7b3a-9f5d-2a6c1e8b4d21", recorder.Body.String())
	})

	t.Run("malformed is replaced", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("X-Request-ID", "abc\nforged=1")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		assert.NotEqual(t, "abc\nforged=1", recorder.Body.String())
		assert.True(t, uuid.Valid(recorder.Body.String()))
	})
}

func TestRateLimit_RejectsBurstOverflow(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := RateLimit(ctx, 1, 2)(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for range 3 {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.RemoteAddr = "10.0.0.1:1234"
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		codes = append(codes, recorder.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestPanicRecovery(t *testing.T) {
	handler := PanicRecovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "INTERNAL_ERROR", errorCode(t, recorder))
}

func TestCORS(t *testing.T) {
	cfg := corsConfig{origins: map[string]bool{"https://app.example": true}}
	handler := CORS(cfg)(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))

	t.Run("allowed origin", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Origin", "https://app.example")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		assert.Equal(t, "https://app.example", recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("foreign origin", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Origin", "https://evil.example")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodOptions, "/", nil)
		request.Header.Set("Origin", "https://app.example")
		request.Header.Set("Access-Control-Request-Method", http.MethodPost)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func TestRealIP(t *testing.T) {
	var seen string
	handler := chimw.RealIP(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seen = RealIP(request)
	}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "192.168.1.9:5555"
	handler.ServeHTTP(httptest.NewRecorder(), request)
	assert.Equal(t, "192.168.1.9", seen)

	request.Header.Set("X-Forwarded-For", "1.1.1.1, 2.2.2.2")
	handler.ServeHTTP(httptest.NewRecorder(), request)
	assert.Equal(t, "1.1.1.1", seen)

	request.Header.Set("X-Real-IP", "3.3.3.3")
	handler.ServeHTTP(httptest.NewRecorder(), request)
	assert.Equal(t, "3.3.3.3", seen)
}
