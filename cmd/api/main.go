package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/theinterviewer/backend/internal/config"
	"github.com/theinterviewer/backend/internal/database"
	"github.com/theinterviewer/backend/internal/handlers"
	"github.com/theinterviewer/backend/internal/middleware"
	"github.com/theinterviewer/backend/internal/repository"
	"github.com/theinterviewer/backend/internal/router"
	"github.com/theinterviewer/backend/internal/security"
	"github.com/theinterviewer/backend/internal/services"
)

func main() {
	// 1. Environment: .env is optional, real env vars win either way
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}
	cfg := config.Load()

	// 2. Database connection + migrations + CEO bootstrap
	db := database.Connect(database.Options{
		DSN:          cfg.PostgresDSN,
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
		ConnMaxLife:  cfg.DBConnMaxLife,
	})
	if err := database.SeedCEO(db, cfg.CEOName, cfg.CEOPassword); err != nil {
		log.Fatal("Failed to seed CEO account:", err)
	}

	// 3. Repositories
	ceoRepo := repository.NewCEORepository(db)
	hrRepo := repository.NewHRRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	// 4. Core services
	tokens := security.NewTokenProvider(cfg.JWTSecret, cfg.AccessTokenTTL)
	authService := services.NewAuthService(ceoRepo, hrRepo, candidateRepo, tokens, cfg.CEOName)
	jobService := services.NewJobService(jobRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo)
	userService := services.NewUserService(candidateRepo)
	resolver := services.NewPrincipalResolver(ceoRepo, hrRepo, candidateRepo, cfg.CEOName)

	// 5. Optional LLM integration for interview question suggestions
	var llmService *services.LLMService
	if cfg.GeminiAPIKey != "" {
		var err error
		llmService, err = services.NewLLMService(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			log.Printf("⚠️  Failed to create Gemini client, question suggestions disabled: %v", err)
		} else {
			log.Println("✅ Gemini client connected, question suggestions enabled")
		}
	} else {
		log.Println("GEMINI_API_KEY not set, question suggestions disabled")
	}

	// 6. HTTP wiring
	authMiddleware := middleware.NewAuthMiddleware(tokens, resolver)
	r := router.New(router.Dependencies{
		AuthHandler:        handlers.NewAuthHandler(authService),
		JobHandler:         handlers.NewJobHandler(jobService, llmService),
		ApplicationHandler: handlers.NewApplicationHandler(applicationService),
		UserHandler:        handlers.NewUserHandler(userService),
		AuthMiddleware:     authMiddleware,
		RateLimiter:        middleware.NewRateLimiter(),
		LoginRateLimit:     cfg.LoginRateLimit,
		LoginRateWindow:    cfg.LoginRateWindow,
	})

	log.Printf("🚀 Server starting on port %s...", cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
