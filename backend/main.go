package main

import (
	"log"

	"horsera/backend/config"
	"horsera/backend/middleware"
	"horsera/backend/repository"
	"horsera/backend/routes"
	"horsera/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize document store
	var store *repository.Store
	switch cfg.DBDriver {
	case "memory":
		store = repository.NewMemoryStore()
	default:
		db, err := repository.Connect(cfg)
		if err != nil {
			log.Fatalf("Error connecting to database: %v", err)
		}
		store = repository.NewMongoStore(db)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, store, cfg, logger)

	// Start server
	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		log.Fatal(app.ListenTLS(":"+cfg.ServerPort, cfg.TLSCertFile, cfg.TLSKeyFile))
	}
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
