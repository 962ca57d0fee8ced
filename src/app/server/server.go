// Package server provides HTTP server initialization and lifecycle
// management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"beerfactory/src/app/http/dto"
	"beerfactory/src/app/http/handler"
	"beerfactory/src/app/http/mapper"
	"beerfactory/src/app/http/response"
	"beerfactory/src/app/middleware"
	"beerfactory/src/core/ports"
	"beerfactory/src/core/usecase"
	"beerfactory/src/infra/config"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	beerHandler   *handler.BeerHandler
	healthHandler *handler.HealthHandler
}

// New creates a Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, repo ports.BeerRepository) (*Server, error) {
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := dto.RegisterValidations(); err != nil {
		return nil, fmt.Errorf("register validations: %w", err)
	}

	router := gin.New()

	beers := mapper.NewBeerMapper(mapper.OffsetDateMapper{})
	beerService := usecase.NewBeerService(repo, log)
	healthService := usecase.NewHealthService(repo, log)

	s := &Server{
		cfg:           cfg,
		log:           log,
		router:        router,
		beerHandler:   handler.NewBeerHandler(beerService, beers),
		healthHandler: handler.NewHealthHandler(healthService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s, nil
}

// setupMiddleware configures global middleware. Recovery comes first so it
// covers everything downstream.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/beer/:beerId", s.beerHandler.GetBeerByID)
		v1.POST("/beer", s.beerHandler.SaveNewBeer)
		v1.PUT("/beer/:beerId", s.beerHandler.UpdateBeerByID)
		v1.DELETE("/beer/:beerId", s.beerHandler.DeleteBeerByID)
	}

	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "The requested resource was not found", middleware.GetRequestID(c))
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until a shutdown signal arrives or
// the server fails.
func (s *Server) Run() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server", "addr", s.cfg.Server.Addr())
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}
