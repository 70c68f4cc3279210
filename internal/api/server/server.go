package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/crosslot/auction-house/internal/api/middleware"
	"github.com/crosslot/auction-house/internal/api/rest"
	"github.com/crosslot/auction-house/internal/auction"
	"github.com/crosslot/auction-house/internal/escrow"
	"github.com/crosslot/auction-house/internal/logger"
	"github.com/crosslot/auction-house/internal/reconciler"
	"github.com/crosslot/auction-house/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Auth         middleware.AuthConfig
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	factory    auction.Factory
	store      store.Store
	reconciler reconciler.Reconciler
	refunds    auction.RefundService
	depositor  escrow.Depositor
	httpServer *http.Server
}

// New creates a new API server
func New(
	cfg Config,
	factory auction.Factory,
	st store.Store,
	rec reconciler.Reconciler,
	refunds auction.RefundService,
	depositor escrow.Depositor,
) *Server {
	return &Server{
		config:     cfg,
		factory:    factory,
		store:      st,
		reconciler: rec,
		refunds:    refunds,
		depositor:  depositor,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	handler := rest.NewHandler(s.factory, s.store, s.reconciler, s.refunds, s.depositor)
	rest.SetupRoutes(router, handler, s.config.Auth)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
