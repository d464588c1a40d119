package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/delivery-map-service/internal/config"
	"github.com/delivery-map-service/internal/delivery/http/handler"
	"github.com/delivery-map-service/internal/delivery/http/middleware"
)

// Server - HTTP server on top of Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	tripHandler   *handler.TripHandler
	pedidoHandler *handler.PedidoHandler
	routeHandler  *handler.RouteHandler
}

// NewServer wires middleware and routes. routeHandler may be nil when the
// embedded planner is disabled and routing points at a remote backend.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	tripHandler *handler.TripHandler,
	pedidoHandler *handler.PedidoHandler,
	routeHandler *handler.RouteHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Delivery Map Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		tripHandler:   tripHandler,
		pedidoHandler: pedidoHandler,
		routeHandler:  routeHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Routing backend contract. Kept outside /api/v1 so the wire format
	// matches what existing route clients expect.
	if s.routeHandler != nil {
		s.app.Post("/api/find-route", s.routeHandler.FindRoute)
	}

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Trip session routes
	api.Post("/trips", s.tripHandler.Create)
	api.Get("/trips/:id", s.tripHandler.Get)
	api.Post("/trips/:id/clicks", s.tripHandler.Click)
	api.Post("/trips/:id/mode", s.tripHandler.Mode)
	api.Post("/trips/:id/clear", s.tripHandler.Clear)
	api.Post("/trips/:id/route", s.tripHandler.ComputeRoute)

	// Pending-order linkage routes
	api.Get("/trips/:id/pedidos", s.pedidoHandler.ListPending)
	api.Post("/trips/:id/pedidos/:pedidoID/address", s.pedidoHandler.StartAddAddress)
	api.Post("/trips/:id/pedidos/:pedidoID/delivered", s.pedidoHandler.MarkDelivered)

	// Handoff intent, written by the order-creation flow
	api.Post("/handoff", s.pedidoHandler.PublishHandoff)
}

// Start - run the HTTP server
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the fiber app for handler tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
