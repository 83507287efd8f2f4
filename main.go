package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gutcheck/internal/config"
	"gutcheck/internal/handlers"
	"gutcheck/internal/middleware"
	"gutcheck/internal/models"
	"gutcheck/internal/repositories"
	"gutcheck/internal/services"
	"gutcheck/internal/storage"
	"gutcheck/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// --- Database ---
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Meal{}, &models.MealImage{}, &models.Poop{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Attachment storage backend ---
	var store storage.Store
	switch cfg.StorageBackend {
	case "s3":
		store, err = storage.NewS3Store(context.Background(), storage.S3Config{
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
		if err != nil {
			log.Fatalf("Failed to initialize S3 storage: %v", err)
		}
	default:
		store, err = storage.NewLocalStore(cfg.UploadDir, cfg.BaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
	}

	// --- Optional activity event publisher ---
	var events services.EventPublisher
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		events = mqClient
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	mealRepo := repositories.NewGORMMealRepository(db)
	poopRepo := repositories.NewGORMPoopRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	mealService := services.NewMealService(mealRepo, store, events)
	poopService := services.NewPoopService(poopRepo, events)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	mealHandler := handlers.NewMealHandler(mealService, cfg.MaxUploadFiles, cfg.MaxUploadBytes)
	poopHandler := handlers.NewPoopHandler(poopService)

	// --- Fiber app ---
	app := fiber.New(fiber.Config{
		// The whole multipart body has to fit under this limit.
		BodyLimit: int(cfg.MaxUploadBytes) * cfg.MaxUploadFiles,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) && fe.Code != fiber.StatusInternalServerError {
				return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
			}
			log.Printf("Unhandled error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "An unexpected error occurred",
			})
		},
	})

	// --- Middleware ---
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// --- Health check ---
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("GutCheck API is running")
	})

	// Serve locally stored images when the local backend is selected.
	if cfg.StorageBackend != "s3" {
		app.Static("/uploads", cfg.UploadDir)
	}

	// --- API routes ---
	api := app.Group("/api")
	authHandler.RegisterRoutes(api)

	protected := api.Group("", middleware.AuthRequired(authService))
	mealHandler.RegisterRoutes(protected)
	poopHandler.RegisterRoutes(protected)

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
