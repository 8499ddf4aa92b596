package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"github.com/travel-time-gateway/internal/config"
	"github.com/travel-time-gateway/internal/delivery/http/handler"
	"github.com/travel-time-gateway/internal/delivery/http/middleware"
	"github.com/travel-time-gateway/internal/domain"
	"github.com/travel-time-gateway/internal/pkg/utils"
	"go.uber.org/zap"
)

// Server - Fiber based HTTP server
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	travelTimeHandler *handler.TravelTimeHandler
}

// NewServer - creates the HTTP server
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	travelTimeHandler *handler.TravelTimeHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Travel Time Gateway",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		travelTimeHandler: travelTimeHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - registers middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - registers routes
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	s.app.Get("/health", handler.Health)

	// The intercity variant takes a JSON body, the intracity one a query string
	switch s.config.ODsay.Scope {
	case domain.SearchScopeIntercity:
		s.app.Post("/travel-time", s.travelTimeHandler.GetTravelTimeByBody)
	case domain.SearchScopeIntracity:
		s.app.Get("/travel-time", s.travelTimeHandler.GetTravelTimeByQuery)
	}
}

// App exposes the underlying fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - starts the HTTP server
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server",
		zap.String("address", addr),
		zap.Stringer("scope", s.config.ODsay.Scope))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown of the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - renders unhandled errors as {"detail": ...}
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("request_id", middleware.RequestID(c)),
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(utils.ErrorResponse{
			Detail: err.Error(),
		})
	}
}
