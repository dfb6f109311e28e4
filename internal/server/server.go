// Package server wires the application together: it picks the storage
// backend, assembles repositories into services and handlers, defines the
// route table, and runs the HTTP server with graceful shutdown.
//
// Everything is composed in New, so main.go only reads configuration and
// calls Start. Handlers never touch storage directly and services never
// touch HTTP.
package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/athletemind/backend/internal/auth"
	"github.com/athletemind/backend/internal/handler"
	"github.com/athletemind/backend/internal/middleware"
	"github.com/athletemind/backend/internal/repository"
	"github.com/athletemind/backend/internal/repository/memory"
	sqliteRepo "github.com/athletemind/backend/internal/repository/sqlite"
	"github.com/athletemind/backend/internal/seed"
	"github.com/athletemind/backend/internal/service"
)

// Config holds server configuration, loaded from the environment by main.
type Config struct {
	Port          int
	DBPath        string // empty selects the in-memory store
	AdminUsername string
	AdminPassword string
}

// store is the full storage contract the server wires against. Both the
// in-memory store and the SQLite store satisfy it.
type store interface {
	repository.UserRepository
	repository.ResourceRepository
	repository.StoryRepository
	repository.ContactRepository
}

type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger

	// closer is non-nil when the backend holds external resources
	// (the SQLite file). Closed during shutdown.
	closer io.Closer
}

// New builds the server: storage backend, services, handlers, routes, and
// seed data. An empty DBPath selects the in-memory store; anything else is
// treated as a SQLite database path.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	var (
		st     store
		closer io.Closer
	)
	if cfg.DBPath == "" {
		st = memory.New()
		logger.Info("using in-memory store")
	} else {
		db, err := sqliteRepo.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		st = db
		closer = db
		logger.Info("using sqlite store", slog.String("path", cfg.DBPath))
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		closer: closer,
	}

	storyService := service.NewStoryService(st, logger)
	resourceService := service.NewResourceService(st, logger)
	contactService := service.NewContactService(st, logger)
	userService := service.NewUserService(st, auth.NewPasswordService(), logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := seed.Run(ctx, resourceService, st, userService,
		cfg.AdminUsername, cfg.AdminPassword, logger); err != nil {
		s.close()
		return nil, fmt.Errorf("seeding store: %w", err)
	}

	s.setupRoutes(storyService, resourceService, contactService)
	return s, nil
}

// setupRoutes installs the global middleware chain and the /api routes.
//
// Middleware order matters: RequestID first so every later stage (and the
// access log) sees the id, RealIP before logging so the logged remote
// address is the real client, Recoverer last so panics inside handlers
// still produce a logged 500.
func (s *Server) setupRoutes(
	stories *service.StoryService,
	resources *service.ResourceService,
	contacts *service.ContactService,
) {
	s.router.Use(middleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(chimiddleware.Recoverer)

	storyHandler := handler.NewStoryHandler(stories, s.logger)
	resourceHandler := handler.NewResourceHandler(resources, s.logger)
	contactHandler := handler.NewContactHandler(contacts, s.logger)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/resources", resourceHandler.HandleList)
		r.Post("/resources/{id}/like", resourceHandler.HandleLike)

		r.Get("/stories", storyHandler.HandleListApproved)
		r.Get("/stories/pending", storyHandler.HandleListPending)
		r.Post("/stories", storyHandler.HandleCreate)
		r.Post("/stories/{id}/approve", storyHandler.HandleApprove)
		r.Delete("/stories/{id}", storyHandler.HandleDelete)

		r.Get("/contacts", contactHandler.HandleList)
		r.Post("/contacts", contactHandler.HandleCreate)
	})
}

// Handler exposes the composed router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) close() {
	if s.closer == nil {
		return
	}
	if err := s.closer.Close(); err != nil {
		s.logger.Error("closing store", slog.String("error", err.Error()))
	}
}

// Start runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests for up to 30 seconds and closes the storage backend.
func (s *Server) Start() error {
	defer s.close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting", slog.Int("port", s.config.Port))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
