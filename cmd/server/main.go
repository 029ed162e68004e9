package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Max-glbt/Medi4ll/internal/config"
	"github.com/Max-glbt/Medi4ll/internal/routes"
	"github.com/Max-glbt/Medi4ll/internal/stash"
	"github.com/Max-glbt/Medi4ll/internal/views"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Connect to Redis
	rdb, err := stash.Connect(context.Background(), cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer rdb.Close()

	// 3. Setup Fiber
	app := fiber.New(fiber.Config{
		Views: views.NewEngine("./web/templates"),
	})

	// Middleware
	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(recover.New())

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	app.Static("/static", "./web/static")
	routes.RegisterRoutes(app, cfg, rdb)

	// 4. Start Server
	log.Printf("Server starting on port %s (%s)", cfg.Port, cfg.AppEnv)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
