package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"coffee-assistant/config"
	_ "coffee-assistant/docs" // Swagger docs
	"coffee-assistant/internal/bootstrap"
	"coffee-assistant/internal/httpserver"
	"coffee-assistant/pkg/log"
)

// @title       Coffee Assistant API
// @description Chat assistant for a coffee brand with calculator, outlet directory and product search tools.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Coffee Assistant API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Components
	components, err := bootstrap.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize components: ", err)
		return
	}
	defer components.Close()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		RateLimit:         cfg.RateLimit,
		ChatUseCase:       components.Chat,
		CalculatorUseCase: components.Calculator,
		OutletUseCase:     components.Outlet,
		ProductUseCase:    components.Product,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
