package server

import (
	"context"
	"fmt"

	"github.com/grachmannico95/verbs-service/internal/config"
	"github.com/grachmannico95/verbs-service/internal/handler"
	"github.com/grachmannico95/verbs-service/internal/middleware"
	"github.com/grachmannico95/verbs-service/internal/validation"
	"github.com/grachmannico95/verbs-service/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo          *echo.Echo
	cfg           *config.Config
	logger        *logger.Logger
	verbHandler   *handler.VerbHandler
	healthHandler *handler.HealthHandler
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	v *validation.Validator,
	verbHandler *handler.VerbHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = v

	s := &Server{
		echo:          e,
		cfg:           cfg,
		logger:        log,
		verbHandler:   verbHandler,
		healthHandler: healthHandler,
	}
	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
	s.echo.Use(middleware.CurrentUser())
	if s.cfg.Server.RequestTimeout > 0 {
		s.echo.Use(echoMiddleware.ContextTimeout(s.cfg.Server.RequestTimeout))
	}
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler.Check)

	verbs := s.echo.Group("/verbs")
	verbs.GET("", s.verbHandler.List)
	verbs.POST("", s.verbHandler.Create)
	verbs.GET("/audit", s.verbHandler.ListAudit)
	verbs.POST("/deleteByIds", s.verbHandler.DeleteByIDs)
	verbs.POST("/bulk-import", s.verbHandler.BulkImport)
	verbs.GET("/:id", s.verbHandler.Get)
	verbs.PUT("/:id", s.verbHandler.Update)
	verbs.DELETE("/:id", s.verbHandler.Remove)
}

func (s *Server) Handler() *echo.Echo {
	return s.echo
}
