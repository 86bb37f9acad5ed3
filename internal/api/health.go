// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/postgrado/internal/platform/constants"
	"github.com/taibuivan/postgrado/internal/platform/respond"
)

// readinessTimeout bounds each dependency check.
const readinessTimeout = 2 * time.Second

// Check reports whether a dependency is reachable.
type Check func(ctx context.Context) error

// HealthDependencies lists the checks behind /ready. A nil check is skipped.
type HealthDependencies struct {
	CheckDatabase Check
	CheckCache    Check
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type healthHandler struct {
	checks []namedCheck
	logger *slog.Logger
}

type namedCheck struct {
	name  string
	check Check
}

// NewHealthHandlers creates the /health and /ready handlers.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{logger: logger}
	for _, candidate := range []namedCheck{{"postgres", deps.CheckDatabase}, {"redis", deps.CheckCache}} {
		if candidate.check != nil {
			handler.checks = append(handler.checks, candidate)
		}
	}
	return handler.liveness, handler.readiness
}

// liveness answers 200 while the process can serve HTTP at all.
func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]string{constants.FieldStatus: "ok"})
}

// readiness runs every check concurrently and answers 503 if any fails.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	results := make([]checkResult, len(handler.checks))

	var group errgroup.Group
	for index, dependency := range handler.checks {
		group.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, readinessTimeout)
			defer cancel()

			results[index] = checkResult{Name: dependency.name, IsOK: true}
			if err := dependency.check(checkCtx); err != nil {
				results[index].IsOK = false
				results[index].Error = err.Error()
				handler.logger.ErrorContext(ctx, "readiness_check_failed",
					slog.String("dependency", dependency.name),
					slog.Any("error", err),
				)
			}
			return nil
		})
	}
	_ = group.Wait()

	status, httpStatus := "ready", http.StatusOK
	for _, result := range results {
		if !result.IsOK {
			status, httpStatus = "degraded", http.StatusServiceUnavailable
			break
		}
	}

	respond.JSON(writer, httpStatus, respond.Envelope[map[string]any]{Data: map[string]any{
		constants.FieldStatus: status,
		constants.FieldChecks: results,
	}})
}
