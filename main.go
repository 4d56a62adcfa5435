package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"inventory/internal/config"
	"inventory/internal/database"
	"inventory/internal/logger"
	"inventory/internal/repositories"
	"inventory/internal/services"
	"inventory/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.InitJSONLogger(cfg.LogLevel)

	// --- Database ---
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	store := repositories.NewGORMStore(db)

	// --- RabbitMQ (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		slog.Info("RABBITMQ_URL not set, product events disabled")
	}

	productService := services.NewProductService(store, publisher)

	if cfg.Seed {
		if err := services.SeedCatalog(context.Background(), store, productService); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	app := NewApp(productService, store, slog.Default())

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", slog.String("addr", cfg.AppPort), slog.String("driver", cfg.DBDriver))
		if err := app.Listen(cfg.AppPort); err != nil {
			slog.Error("server stopped", slog.Any("error", err))
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	slog.Info("shutting down server")

	if err := app.Shutdown(); err != nil {
		slog.Error("error during Fiber shutdown", slog.Any("error", err))
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	slog.Info("server gracefully stopped")
}
