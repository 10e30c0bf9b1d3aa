package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/moeez1234567/Job-descriptor/internal/config"
	"github.com/moeez1234567/Job-descriptor/internal/database"
	"github.com/moeez1234567/Job-descriptor/internal/handlers"
	"github.com/moeez1234567/Job-descriptor/internal/llm"
	"github.com/moeez1234567/Job-descriptor/internal/services"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	cfg := config.Load()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Database Connection (optional, audit history only)
	db := database.Connect(cfg.DatabaseURL)

	// 3. Generation Backend
	generator, err := buildGenerator(cfg)
	if err != nil {
		log.Fatal("Failed to initialize generation backend: ", err)
	}
	log.Printf("✅ Generation backend ready (%s, model %s)", cfg.Provider, cfg.Model)

	// 4. Initialize Core Services
	client := llm.NewClient(generator, cfg.RequestTimeout, cfg.RetryBackoff)
	historyService := services.NewHistoryService(db)
	descriptionService := services.NewDescriptionService(client, historyService)

	// 5. Initialize Handlers
	descriptionHandler := handlers.NewDescriptionHandler(descriptionService, historyService)

	// 6. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck(cfg.Provider, cfg.Model))

		api.POST("/descriptions", descriptionHandler.GenerateDescription)
		api.GET("/history", descriptionHandler.ListHistory)
	}

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

// buildGenerator picks the backend from configuration. A missing Gemini
// credential is fatal here rather than a per-request surprise.
func buildGenerator(cfg *config.Config) (llm.Generator, error) {
	switch cfg.Provider {
	case config.ProviderOllama:
		return llm.NewOllama(cfg.OllamaHost, cfg.Model)
	default:
		if cfg.GeminiAPIKey == "" {
			log.Fatal("CRITICAL ERROR: GEMINI_API_KEY is empty. Did you load the .env file?")
		}
		return llm.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.Model)
	}
}
