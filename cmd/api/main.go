package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"narike/portfolio-api/internal/config"
	"narike/portfolio-api/internal/handlers"
	"narike/portfolio-api/internal/repositories"
	"narike/portfolio-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	aboutRepo := repositories.NewAboutRepository(db)
	experienceRepo := repositories.NewExperienceRepository(db)
	skillRepo := repositories.NewSkillRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	templateRepo := repositories.NewPromptTemplateRepository(db)
	jobMatchRepo := repositories.NewJobMatchRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	geminiService := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.RetryMaxAttempts,
		cfg.Gemini.RetryInitialDelay,
	)
	cvBuilder := services.NewCvFileBuilder()

	matcherService := services.NewMatcherService(
		experienceRepo,
		skillRepo,
		projectRepo,
		templateRepo,
		jobMatchRepo,
		geminiService,
		cvBuilder,
	)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	profileHandler := handlers.NewProfileHandler(aboutRepo, experienceRepo, skillRepo, projectRepo)
	jobMatchHandler := handlers.NewJobMatchHandler(matcherService, jobMatchRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Portfolio API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 3 * time.Minute,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Profile endpoints
	api.Get("/about", profileHandler.HandleGetAbout)
	api.Get("/experience", profileHandler.HandleGetExperience)
	api.Get("/skills", profileHandler.HandleGetSkills)
	api.Get("/projects", profileHandler.HandleGetProjects)

	// Job match endpoints
	api.Post("/jobmatch", jobMatchHandler.HandleAnalyze)
	api.Get("/jobmatch", jobMatchHandler.HandleList)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Portfolio API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/about",
				"GET /api/v1/experience",
				"GET /api/v1/skills",
				"GET /api/v1/projects",
				"POST /api/v1/jobmatch",
				"GET /api/v1/jobmatch",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
