// Package server exposes dungeon generation and play sessions over HTTP.
//
// Routes:
//
//	GET  /healthz                  liveness and version
//	GET  /dungeons/{seed}          generated dungeon (?format=, ?style=, ?corridors=, ?junctions=)
//	POST /sessions                 start a play session {"seed": n}
//	GET  /sessions/{id}            session state and view
//	POST /sessions/{id}/moves      move the actor {"direction": "left"}
//
// Errors are returned as {"code": ..., "message": ...} with a status derived
// from the error code.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/roguegrid/pkg/cache"
	"github.com/matzehuels/roguegrid/pkg/dungeon"
	"github.com/matzehuels/roguegrid/pkg/pipeline"
	"github.com/matzehuels/roguegrid/pkg/session"
)

// Default values.
const (
	DefaultAddr            = ":8080"
	DefaultShutdownTimeout = 5 * time.Second
	cleanupInterval        = time.Minute
)

// Config configures the HTTP server.
type Config struct {
	Addr         string `toml:"addr"`
	CacheEntries int    `toml:"cache_entries"`
	// AllowedOrigins are extra host patterns accepted on session streams.
	// Same-origin requests are always accepted.
	AllowedOrigins []string       `toml:"allowed_origins"`
	SessionTTL     time.Duration  `toml:"-"`
	Generator      dungeon.Config `toml:"-"`
}

// Server serves the HTTP API.
type Server struct {
	cfg    Config
	logger *log.Logger
	runner *pipeline.Runner
	store  session.Store
	router chi.Router
}

// New builds a server. A nil store uses an in-memory store.
func New(cfg Config, logger *log.Logger, store session.Store) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	cfg.Generator.SetDefaults()
	if logger == nil {
		logger = log.Default()
	}
	if store == nil {
		store = session.NewMemoryStore(cfg.SessionTTL)
	}
	s := &Server{
		cfg:    cfg,
		logger: logger,
		runner: pipeline.NewRunner(cache.NewMemoryCache(cfg.CacheEntries), logger),
		store:  store,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/dungeons/{seed}", s.handleDungeon)
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreateSession)
		r.Get("/{id}", s.handleGetSession)
		r.Post("/{id}/moves", s.handleMove)
		r.Get("/{id}/stream", s.handleStream)
	})
	r.NotFound(s.handleNotFound)
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// Addr returns the listen address.
func (s *Server) Addr() string { return s.cfg.Addr }

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.cleanupLoop(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.store.Cleanup(ctx); err != nil {
				s.logger.Warn("session cleanup failed", "error", err)
			}
		}
	}
}
