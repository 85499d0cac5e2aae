// Package server exposes a built network over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/config"
	"github.com/theoremus-urban-solutions/transit-catalogue/responder"
	"github.com/theoremus-urban-solutions/transit-catalogue/router"
)

// Server answers catalogue and route queries. The catalogue and router are
// shared read-only between requests.
type Server struct {
	cfg       config.ServerConfig
	cat       *catalogue.Catalogue
	router    *router.TransitRouter
	responder *responder.Responder
	cache     *responseCache
	startedAt time.Time

	httpServer *http.Server
}

func New(cat *catalogue.Catalogue, r *router.TransitRouter, cfg config.ServerConfig) *Server {
	return &Server{
		cfg:       cfg,
		cat:       cat,
		router:    r,
		responder: responder.New(cat, r),
		cache:     newResponseCache(cfg.CacheSize),
		startedAt: time.Now(),
	}
}

// Handler builds the chi router with all routes and middleware
func (s *Server) Handler() http.Handler {
	origins := s.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(accessLog)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader},
	}))

	r.Get("/api/health", s.handleHealth)
	r.Get("/api/lines", s.handleLines)
	r.Get("/api/lines/{name}", s.handleLine)
	r.Get("/api/stops/{name}", s.handleStop)
	r.Get("/api/route", s.handleRoute)
	r.Post("/api/stat", s.handleStat)
	return r
}

// Start listens on the configured port in the background
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "err", err)
		}
	}()
	slog.Info("server listening", "addr", addr)
}

// Shutdown stops accepting requests and waits for in-flight ones until ctx ends
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	slog.Info("server shut down successfully")
	return nil
}
