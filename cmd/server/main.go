package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/reelkeep/reeldb/data"
	"github.com/reelkeep/reeldb/internal/config"
	"github.com/reelkeep/reeldb/internal/database"
	"github.com/reelkeep/reeldb/internal/handlers"
	"github.com/reelkeep/reeldb/internal/middleware"
	"github.com/reelkeep/reeldb/internal/services"
	"github.com/reelkeep/reeldb/internal/store"
	"github.com/reelkeep/reeldb/internal/utils"

	_ "github.com/reelkeep/reeldb/docs/api" // Swagger docs
)

// @title ReelDB API
// @version 1.0.0
// @description Movie catalog service: browse, review, and export a curated film collection
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/reelkeep/reeldb

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name admin_session

func main() {
	// Load .env if present; real environment always wins
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open the persistence store
	st, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	// Core services
	catalog := services.NewCatalog(st)
	sessions := services.NewSessions(cfg.AdminPassword, time.Duration(cfg.SessionTTLHours)*time.Hour)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: utils.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("reeldb")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health check
	healthHandler := &handlers.HealthHandler{Cfg: cfg, Store: st}
	app.Get("/health", healthHandler.Health)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	movieHandler := &handlers.MovieHandler{Catalog: catalog}
	reviewHandler := &handlers.ReviewHandler{Catalog: catalog}
	authHandler := &handlers.AuthHandler{Sessions: sessions}

	// Auth routes
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", authHandler.Logout)

	// Movie routes. The CSV export is registered before :id so the literal
	// "export" segment is not captured as a movie id.
	api.Get("/movies/export/csv", middleware.AuthAdmin(sessions), movieHandler.ExportMoviesCSV)
	api.Get("/movies", movieHandler.ListMovies)
	api.Post("/movies", middleware.AuthAdmin(sessions), movieHandler.CreateMovie)
	api.Get("/movies/:id", movieHandler.GetMovie)
	api.Put("/movies/:id", middleware.AuthAdmin(sessions), movieHandler.UpdateMovie)
	api.Delete("/movies/:id", middleware.AuthAdmin(sessions), movieHandler.DeleteMovie)

	// Review routes
	api.Get("/reviews", reviewHandler.ListReviews)
	api.Post("/reviews", reviewHandler.CreateReview)
	api.Get("/reviews/:id", reviewHandler.GetReview)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "[404] Resource Not Found")
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// openStore builds the persistence store selected by STORE_TYPE.
func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreType {
	case "json":
		s, err := store.NewJSONFile(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		// First run: populate missing collection files from the embedded seed
		if err := s.Seed(data.SeedMovies, data.SeedReviews); err != nil {
			return nil, err
		}
		return s, nil

	case "memory":
		return store.NewMemory(), nil

	default:
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			database.Close(db)
			return nil, err
		}
		return store.NewDatabase(db), nil
	}
}
