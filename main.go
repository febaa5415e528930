package main

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/PrajwalKusha/LinkSenseAI-App/internal/cache"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/config"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/controllers"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/database"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/extractor"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/logs"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/middleware"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/repository"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/service"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/summarizer"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger := logs.New(cfg.IsProduction())

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			logger.Warnf("Failed to connect to Redis (%v). Continuing without cache.", err)
			cacheClient = nil
		} else {
			logger.Info("Connected to Redis cache")
		}
	}

	// Initialize collaborators
	linkRepo := repository.NewLinkRepository(db)
	articleExtractor := extractor.NewReadabilityExtractor()
	chatClient := summarizer.NewClient(summarizer.ClientConfig{
		APIKey:  cfg.OpenRouterAPIKey,
		Model:   cfg.OpenRouterModel,
		BaseURL: cfg.OpenRouterBaseURL,
	})
	aiSummarizer := summarizer.New(chatClient, logger)

	// Initialize the resolution workflow
	linkService := service.NewLinkService(linkRepo, articleExtractor, aiSummarizer, cacheClient, logger)

	// Initialize controllers
	shortenerController := controllers.NewShortenerController(linkService, cfg.PublicBaseURL, cfg.ClientBuildDir, cfg.IsProduction(), logger)
	summaryController := controllers.NewSummaryController(linkService, logger)
	qrcodeController := controllers.NewQRCodeController(linkService, cfg.PublicBaseURL, cfg.IsProduction())

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	shortenRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitShortenRPS), cfg.RateLimitShortenBurst)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Security headers and JSON body cap, matching the serving surface of the
	// original deployment
	router.Use(secure.New(secure.Config{
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		FrameDeny:          true,
	}))
	router.Use(middleware.BodyLimit(10 << 20)) // 10 MB

	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization", "X-Requested-With", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	// Summary display / redirect endpoint
	router.GET("/:shortCode", shortenerController.DisplaySummary)
	router.GET("/redirect/:shortCode", shortenerController.RedirectToOriginal)

	api := router.Group("/api")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "OK",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})

		// URL shortening with stricter rate limiting (every call hits the model)
		api.POST("/shorten", shortenRateLimiter.LimitMiddleware(), shortenerController.CreateShortURL)

		api.GET("/summary/:shortCode", summaryController.GetSummary)
		api.POST("/condensed-summary", summaryController.CondenseSummary)
		api.GET("/qrcode/:shortCode", qrcodeController.GenerateQRCode)
	}

	// Serve the frontend build when configured
	if cfg.ClientBuildDir != "" {
		router.Static("/static", filepath.Join(cfg.ClientBuildDir, "static"))
		router.NoRoute(func(c *gin.Context) {
			c.File(filepath.Join(cfg.ClientBuildDir, "index.html"))
		})
	}

	logger.Infof("LinkSense AI server running on port %s", cfg.Port)
	logger.Infof("Environment: %s", cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("server error: %v", err)
	}
}
