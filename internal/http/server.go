package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/contacts/internal/auth/http"
	authUseCasePkg "github.com/allisson/contacts/internal/auth/usecase"
	contactHTTP "github.com/allisson/contacts/internal/contact/http"
	"github.com/allisson/contacts/internal/config"
	"github.com/allisson/contacts/internal/metrics"
	userHTTP "github.com/allisson/contacts/internal/user/http"
)

// Server represents the HTTP API server.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a new Server with all routes wired.
//
// Route layout:
//
//	GET  /healthz                      public
//	GET  /readyz                       public
//	POST /v1/users                     public (registration)
//	POST /v1/auth/login                public (rate limited per IP)
//	POST /v1/auth/logout               public (revokes the presented token)
//	GET/PATCH/DELETE /v1/users/:uid    owner only
//	POST/GET /v1/users/:uid/contacts   owner only
//	GET/PATCH/DELETE /v1/contacts/:cid any authenticated user; ownership is
//	                                   enforced by user-scoped queries
func NewServer(
	cfg *config.Config,
	authUseCase authUseCasePkg.AuthUseCase,
	authHandler *authHTTP.Handler,
	userHandler *userHTTP.UserHandler,
	contactHandler *contactHTTP.ContactHandler,
	metricsProvider *metrics.Provider,
	logger *slog.Logger,
) *Server {
	gin.SetMode(cfg.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsEnabled && metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readinessHandler)

	v1 := router.Group("/v1")
	v1.Use(authHTTP.AuthenticationMiddleware(authUseCase, logger))

	// Public routes
	v1.POST("/users", userHandler.RegisterUser)
	v1.POST("/auth/logout", authHandler.Logout)
	if cfg.RateLimitLoginEnabled {
		v1.POST("/auth/login",
			authHTTP.LoginRateLimitMiddleware(cfg.RateLimitLoginRequestsPerSec, cfg.RateLimitLoginBurst, logger),
			authHandler.Login,
		)
	} else {
		v1.POST("/auth/login", authHandler.Login)
	}

	// Owner-guarded routes
	users := v1.Group("/users/:uid")
	users.Use(authHTTP.RequireOwnerMiddleware("uid", logger))
	users.GET("", userHandler.GetUser)
	users.PATCH("", userHandler.UpdateUser)
	users.DELETE("", userHandler.DeleteUser)
	users.POST("/contacts", contactHandler.CreateContact)
	users.GET("/contacts", contactHandler.ListContacts)

	// Authenticated routes; ownership checked at the data layer
	contacts := v1.Group("/contacts")
	contacts.Use(authHTTP.RequireAuthMiddleware(logger))
	contacts.GET("/:cid", contactHandler.GetContact)
	contacts.PATCH("/:cid", contactHandler.UpdateContact)
	contacts.DELETE("/:cid", contactHandler.DeleteContact)

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start http server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler answers liveness probes.
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler answers readiness probes.
func readinessHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
