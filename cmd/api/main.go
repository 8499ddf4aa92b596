package main

// @title Travel Time Gateway API
// @version 1.0.0
// @description Returns bus-only public transit travel time between two coordinates.
// @description The upstream route search is performed by the ODsay path search API.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/travel-time-gateway/docs"
	"github.com/travel-time-gateway/internal/config"
	httpDelivery "github.com/travel-time-gateway/internal/delivery/http"
	"github.com/travel-time-gateway/internal/delivery/http/handler"
	"github.com/travel-time-gateway/internal/infrastructure/odsay"
	"github.com/travel-time-gateway/internal/pkg/logger"
	"github.com/travel-time-gateway/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Travel Time Gateway")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Stringer("scope", cfg.ODsay.Scope),
		zap.Duration("upstream_timeout", cfg.ODsay.RequestTimeout),
	)

	// 3. Upstream routing client
	routingRepo := odsay.NewODsayClient(&cfg.ODsay, log)

	// 4. Use cases and handlers
	travelTimeUC := usecase.NewTravelTimeUseCase(routingRepo, cfg.ODsay.Scope, log)
	travelTimeHandler := handler.NewTravelTimeHandler(travelTimeUC, log)

	// 5. HTTP server
	server := httpDelivery.NewServer(cfg, log, travelTimeHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
