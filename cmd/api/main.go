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

	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/config"
	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/handlers"
	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/repositories"
	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/services"
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
	studentRepo := repositories.NewStudentRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()

	extractorService := services.NewResumeExtractorService(
		cfg.Extractor.BaseURL,
		cfg.Extractor.CallTimeout,
		cfg.Extractor.HealthTimeout,
	)

	githubService := services.NewGitHubService(cfg.GitHub.Token)
	leetcodeService := services.NewLeetCodeService("")
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize Qdrant
	vectorService, err := services.NewProfileVectorService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := vectorService.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Qdrant initialized successfully")

	// Initialize analyzer
	analyzerService := services.NewAnalyzerService(
		studentRepo,
		geminiService,
		extractorService,
		pdfParser,
		vectorService,
		cfg.Extractor.CallTimeout,
	)
	log.Println("✅ Analyzer service initialized")

	// Initialize handlers
	studentHandler := handlers.NewStudentHandler(studentRepo)
	softSkillsHandler := handlers.NewSoftSkillsHandler(studentRepo, analyzerService)
	resumeHandler := handlers.NewResumeHandler(studentRepo, storageService, analyzerService, cfg.Storage.MaxFileSize)
	marksHandler := handlers.NewMarksHandler(studentRepo, analyzerService)
	profileHandler := handlers.NewProfileHandler(studentRepo, analyzerService)
	codingHandler := handlers.NewCodingHandler(studentRepo, githubService, leetcodeService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Student Analysis API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
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
		extractorStatus := "healthy"
		if err := extractorService.Health(c.Context()); err != nil {
			extractorStatus = "unreachable"
		}
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"extractor": extractorStatus,
			"time":      time.Now(),
		})
	})

	// Student CRUD
	api.Post("/students", studentHandler.HandleCreate)
	api.Get("/students", studentHandler.HandleList)
	api.Get("/students/by-registration/:regno", studentHandler.HandleGetByRegistration)
	api.Get("/students/:id", studentHandler.HandleGet)
	api.Delete("/students/:id", studentHandler.HandleDelete)

	// Enrichment endpoints
	api.Post("/students/:id/soft-skills", softSkillsHandler.HandleAnalyze)
	api.Post("/students/:id/resume", resumeHandler.HandleUpload)
	api.Post("/students/:id/marks-analysis", marksHandler.HandleAnalyze)
	api.Get("/students/:id/profile-analysis", profileHandler.HandleAnalyze)
	api.Post("/students/:id/coding-profiles/refresh", codingHandler.HandleRefresh)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Student Analysis API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/students",
				"POST /api/v1/students/:id/soft-skills",
				"POST /api/v1/students/:id/resume",
				"POST /api/v1/students/:id/marks-analysis",
				"GET /api/v1/students/:id/profile-analysis",
				"POST /api/v1/students/:id/coding-profiles/refresh",
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
