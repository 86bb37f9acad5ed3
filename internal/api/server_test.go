// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/postgrado/internal/auth"
	"github.com/taibuivan/postgrado/internal/cohort"
	"github.com/taibuivan/postgrado/internal/identity"
	"github.com/taibuivan/postgrado/internal/platform/config"
	"github.com/taibuivan/postgrado/internal/platform/dberr"
	"github.com/taibuivan/postgrado/internal/platform/middleware"
	"github.com/taibuivan/postgrado/internal/platform/respond"
	"github.com/taibuivan/postgrado/internal/platform/sec"
)

type pingFeature struct{}

func (pingFeature) RegisterRoutes(router chi.Router) {
	router.Get("/ping", func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusNoContent)
	})
}

func newTestServer(t *testing.T, deps HealthDependencies, features ...RouteRegistrar) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Server{
		Port:           "0",
		Environment:    "production",
		AllowedOrigins: []string{"https://postgrado.udo.edu.ve"},
		RateLimitRPS:   100,
		RateLimitBurst: 100,
	}

	liveness, readiness := NewHealthHandlers(deps, logger)
	server := NewServer(ctx, cfg, logger, Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Features:  append([]RouteRegistrar{pingFeature{}}, features...),
	})
	return server.Handler()
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func TestServer_Liveness(t *testing.T) {
	handler := newTestServer(t, HealthDependencies{})

	recorder := get(handler, "/health")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"status":"ok"}}`, recorder.Body.String())
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestServer_Readiness(t *testing.T) {
	healthy := func(context.Context) error { return nil }

	t.Run("ready", func(t *testing.T) {
		handler := newTestServer(t, HealthDependencies{CheckDatabase: healthy, CheckCache: healthy})

		recorder := get(handler, "/ready")
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("degraded", func(t *testing.T) {
		handler := newTestServer(t, HealthDependencies{
			CheckDatabase: healthy,
			CheckCache:    func(context.Context) error { return errors.New("dial tcp: connection refused") },
		})

		recorder := get(handler, "/ready")
		require.Equal(t, http.StatusServiceUnavailable, recorder.Code)

		var body struct {
			Data struct {
				Status string        `json:"status"`
				Checks []checkResult `json:"checks"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "degraded", body.Data.Status)
		require.Len(t, body.Data.Checks, 2)
		assert.True(t, body.Data.Checks[0].IsOK)
		assert.False(t, body.Data.Checks[1].IsOK)
		assert.Equal(t, "redis", body.Data.Checks[1].Name)
	})
}

func TestServer_MountsFeaturesUnderAPI(t *testing.T) {
	handler := newTestServer(t, HealthDependencies{})

	assert.Equal(t, http.StatusNoContent, get(handler, "/api/ping/").Code)
	assert.Equal(t, http.StatusNoContent, get(handler, "/api/ping").Code)
	assert.Equal(t, http.StatusNoContent, get(handler, "/api//ping/").Code)
	assert.Equal(t, http.StatusNotFound, get(handler, "/ping/").Code)
}

// loginTable is an in-memory [auth.LoginFinder].
type loginTable map[int64]*identity.LoginRecord

func (table loginTable) FindLoginByID(_ context.Context, id int64) (*identity.LoginRecord, error) {
	record, ok := table[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return record, nil
}

func TestServer_FeatureRoutesPassThroughGate(t *testing.T) {
	tokens, err := sec.NewTokenService("server-test-secret", "postgrado")
	require.NoError(t, err)

	logins := loginTable{1: {ID: 1, Cedula: "V1", Role: sec.RoleAdmin}}
	gate := middleware.NewGate(auth.NewAuthenticator(tokens, logins))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := newTestServer(t, HealthDependencies{}, cohort.NewHandler(cohort.NewService(nil, logger), gate))

	adminToken, err := tokens.GenerateAccessToken(1, time.Minute)
	require.NoError(t, err)

	send := func(path, token, body string) (int, respond.ErrorBody) {
		request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		if token != "" {
			request.Header.Set("Authorization", "Bearer "+token)
		}
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		var payload respond.ErrorBody
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
		return recorder.Code, payload
	}

	for _, path := range []string{"/api/verificar-codigo-cohorte/", "/api/verificar-codigo-cohorte"} {
		t.Run(path, func(t *testing.T) {
			status, payload := send(path, "", `{"codigo_cohorte":"FIIA-2024"}`)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, auth.CodeMissingCredentials, payload.Code)

			status, payload = send(path, adminToken, `{"codigo_cohorte":""}`)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, cohort.CodeMissingCode, payload.Code)
		})
	}
}

func TestServer_CORSPreflight(t *testing.T) {
	handler := newTestServer(t, HealthDependencies{})

	request := httptest.NewRequest(http.MethodOptions, "/api/ping/", nil)
	request.Header.Set("Origin", "https://postgrado.udo.edu.ve")
	request.Header.Set("Access-Control-Request-Method", http.MethodPost)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "https://postgrado.udo.edu.ve", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	liveness, readiness := NewHealthHandlers(HealthDependencies{}, logger)
	server := NewServer(ctx, config.Server{Port: "0", RateLimitRPS: 1, RateLimitBurst: 1}, logger, Handlers{
		Liveness:  liveness,
		Readiness: readiness,
	})

	done := make(chan error, 1)
	go func() { done <- server.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}
