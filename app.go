package main

import (
	"context"
	"log/slog"
	"time"

	"inventory/internal/handlers"
	"inventory/internal/middleware"
	"inventory/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewApp builds the Fiber app with middleware and every route registered.
func NewApp(productService *services.ProductService, db Pinger, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "toko-inventory",
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New())
	if log != nil {
		app.Use(middleware.RequestLogger(log))
	} else {
		app.Use(logger.New())
	}

	// --- API Routes ---
	api := app.Group("/api")
	handlers.NewProductHandler(productService).RegisterRoutes(api)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return app
}
