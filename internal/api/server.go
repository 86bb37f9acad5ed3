// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api assembles the chi router and runs the HTTP server.

The global middleware chain is installed here. Route permissions are
declared per route by the feature handlers, which register themselves
under /api through [RouteRegistrar].
*/
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/postgrado/internal/platform/config"
	"github.com/taibuivan/postgrado/internal/platform/constants"
	"github.com/taibuivan/postgrado/internal/platform/middleware"
)

// RouteRegistrar is implemented by every feature handler.
type RouteRegistrar interface {
	RegisterRoutes(router chi.Router)
}

// Handlers groups the health checks and the feature handlers mounted under /api.
type Handlers struct {
	Liveness  http.HandlerFunc
	Readiness http.HandlerFunc
	Features  []RouteRegistrar
}

// Server is the API's [http.Server] with its router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

/*
NewServer builds the router and the server around it.

Description: The chain runs in this order: client IP, request ID, access
log, panic recovery, request deadline, per-IP rate limit, CORS, path
cleaning. Cleaning also drops a trailing slash, so features register their
routes without one and both forms reach the same handler. ctx bounds the
rate limiter's sweeper.
*/
func NewServer(ctx context.Context, cfg config.Server, log *slog.Logger, handlers Handlers) *Server {
	router := chi.NewRouter()

	router.Use(
		chimw.RealIP,
		middleware.RequestID(),
		middleware.StructuredLogger(log),
		middleware.PanicRecovery(),
		chimw.Timeout(constants.GlobalRequestTimeout),
		middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst),
		middleware.CORS(cfg),
		chimw.CleanPath,
	)

	router.Get("/health", handlers.Liveness)
	router.Get("/ready", handlers.Readiness)

	router.Route("/api", func(api chi.Router) {
		for _, feature := range handlers.Features {
			feature.RegisterRoutes(api)
		}
	})

	return &Server{
		router: router,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelWarn),
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most [constants.ShutdownTimeout]. It returns early if the listener fails.
func (s *Server) Run(ctx context.Context) error {
	listenErr := make(chan error, 1)
	go func() {
		s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
		listenErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("api: listen: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), constants.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("api: shutdown: %w", err)
	}
	if err := <-listenErr; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("api: listen: %w", err)
	}
	return nil
}
