package main

// @title Delivery Map Service API
// @version 1.0.0
// @description Servicio de sesiones de ruta para el panel de despachos. Gestiona waypoints de viaje, el modo de agregado de direcciones, el cálculo de rutas y la vinculación con pedidos pendientes.
// @description
// @description Capacidades principales:
// @description - Sesiones de viaje con waypoints y semilla inicial
// @description - Modo manual y modo dirigido de agregado de puntos
// @description - Cálculo de rutas con distancia y tiempo estimado
// @description - Listado de pedidos pendientes y marcado de entregas
// @description - Intento de traspaso entre la creación de pedidos y el mapa

// @contact.name API Support
// @contact.email support@delivery-map-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/delivery-map-service/docs"
	"github.com/delivery-map-service/internal/config"
	httpDelivery "github.com/delivery-map-service/internal/delivery/http"
	"github.com/delivery-map-service/internal/delivery/http/handler"
	"github.com/delivery-map-service/internal/domain/repository"
	"github.com/delivery-map-service/internal/infrastructure/pedidos"
	"github.com/delivery-map-service/internal/infrastructure/routing"
	"github.com/delivery-map-service/internal/pkg/logger"
	"github.com/delivery-map-service/internal/repository/cache"
	"github.com/delivery-map-service/internal/repository/memory"
	"github.com/delivery-map-service/internal/repository/postgres"
	"github.com/delivery-map-service/internal/usecase"
	"github.com/delivery-map-service/internal/usecase/planner"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Delivery Map Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("pedidos_adapter", cfg.Pedidos.Adapter),
		zap.Bool("planner_enabled", cfg.Planner.Enabled),
	)

	// 3. Connect to Redis (handoff intents)
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 4. Pedido collaborator: direct database access or the dashboard's
	// HTTP backend, depending on deployment.
	var pedidoProvider repository.PedidoProvider
	var db *postgres.DB

	switch cfg.Pedidos.Adapter {
	case "postgres":
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		log.Info("PostgreSQL connected")
		pedidoProvider = postgres.NewPedidoRepository(db)
	case "http":
		pedidoProvider = pedidos.NewClient(&cfg.Pedidos, log)
	default:
		log.Fatal("Unknown pedidos adapter", zap.String("adapter", cfg.Pedidos.Adapter))
	}

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	if db != nil {
		if err := db.Health(ctx); err != nil {
			log.Fatal("PostgreSQL health check failed", zap.Error(err))
		}
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	tripRepo := memory.NewTripRepository()
	handoffRepo := cache.NewHandoffRepository(redisClient, cfg.Handoff.Key)
	routeProvider := routing.NewClient(&cfg.Routing, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	tripUC := usecase.NewTripUseCase(tripRepo, routeProvider, log)
	pedidoUC := usecase.NewPedidoUseCase(
		pedidoProvider,
		handoffRepo,
		tripRepo,
		log,
		cfg.Handoff.SettleDelay,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	tripHandler := handler.NewTripHandler(tripUC, pedidoUC, log)
	pedidoHandler := handler.NewPedidoHandler(pedidoUC, log)

	var routeHandler *handler.RouteHandler
	if cfg.Planner.Enabled {
		p := planner.New(&cfg.Planner, planner.NewHaversineProvider(), log)
		routeHandler = handler.NewRouteHandler(p, log)
	}

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		tripHandler,
		pedidoHandler,
		routeHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
