package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hr-dashboard-server/config"
	"hr-dashboard-server/logger"
	"hr-dashboard-server/middleware"
	"hr-dashboard-server/routes"
	"hr-dashboard-server/services"
	"hr-dashboard-server/store"
	ws "hr-dashboard-server/websocket"
)

func main() {
	// A missing .env file is fine; the system environment applies
	_ = godotenv.Load()

	config.Load()
	logger.Init(config.AppConfig.Log.Level)

	// Restore durable state (bookmarks, feedback) from the snapshot file
	st := store.Open(config.AppConfig.Directory.EnrichSeed, config.AppConfig.Storage.SnapshotPath)

	// One-shot directory fetch. Failure is not fatal: the dashboard serves
	// with an empty directory and reports the error at /health.
	var sourceErr error
	client := services.NewDirectoryClient(config.AppConfig.Directory.SourceURL, config.AppConfig.Directory.FetchLimit)
	employees, err := client.FetchEmployees(context.Background())
	if err != nil {
		sourceErr = err
		logger.Error("directory fetch failed", err)
	} else {
		st.SetEmployees(employees)
		logger.Info("loaded %d employees from %s", st.Count(), config.AppConfig.Directory.SourceURL)
	}

	accounts, err := services.NewAccountService()
	if err != nil {
		logger.Error("failed to build account table", err)
		os.Exit(1)
	}

	analytics := services.NewAnalyticsService(st, config.AppConfig.Directory.EnrichSeed)
	profiles := services.NewProfileService()

	// Event hub for connected dashboard clients
	hub := ws.NewHub()
	go hub.Run()

	if config.AppConfig.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.RateLimitMiddleware())
	middleware.StartRateLimiterCleanup(time.Hour)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		status := gin.H{
			"status":    "ok",
			"message":   "HR Dashboard Server is running",
			"employees": st.Count(),
			"time":      time.Now().UTC(),
		}
		if sourceErr != nil {
			status["source_error"] = sourceErr.Error()
		}
		c.JSON(http.StatusOK, status)
	})

	api := router.Group("/api/v1")
	{
		// Auth routes (no authentication required) - with strict rate limiting
		authRoutes := api.Group("/auth")
		authRoutes.Use(middleware.AuthRateLimitMiddleware())
		routes.RegisterAuthRoutes(authRoutes, accounts)

		// Event stream authenticates via query parameter
		routes.RegisterEventRoutes(api, hub)

		// Everything else requires a session token
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			routes.RegisterSessionRoutes(protected)
			routes.RegisterEmployeeRoutes(protected, st, profiles, hub)
			routes.RegisterBookmarkRoutes(protected, st, hub)
			routes.RegisterFeedbackRoutes(protected, st, hub)
			routes.RegisterAnalyticsRoutes(protected, analytics)
		}
	}

	port := config.AppConfig.Server.Port
	logger.Info("server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		logger.Error("failed to start server", err)
		os.Exit(1)
	}
}
