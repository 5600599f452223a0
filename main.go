package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tienda/internal/handlers"
	"tienda/internal/middleware"
	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/services"
	"tienda/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	// A .env file is optional; real environment variables win.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}
	viper.SetDefault("APP_PORT", ":4000")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	databaseURL := viper.GetString("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL must be set")
	}

	// --- Database ---
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// Product lifecycle events are only published when RABBITMQ_URL is
	// configured; the API works without a broker.
	var events services.EventPublisher
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		events = mqClient
	}

	// --- Wiring ---
	productRepo := repositories.NewGORMProductRepository(db)
	productService := services.NewProductService(productRepo, events)
	productHandler := handlers.NewProductHandler(productService)

	app := NewApp(productHandler)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	// Release the connection pool acquired at boot.
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}

	log.Println("Server gracefully stopped")
}

// NewApp builds the Fiber application: request-id and logging
// middleware, the product routes under /api/products, and a health
// check endpoint.
func NewApp(productHandler *handlers.ProductHandler) *fiber.App {
	app := fiber.New()

	app.Use(middleware.RequestID())
	app.Use(logger.New())

	api := app.Group("/api")
	productHandler.RegisterRoutes(api)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}
