package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SuyashJain1994/Contract-Analyzer/config"
	"github.com/SuyashJain1994/Contract-Analyzer/database"
	"github.com/SuyashJain1994/Contract-Analyzer/handler"
	"github.com/SuyashJain1994/Contract-Analyzer/middleware"
	"github.com/SuyashJain1994/Contract-Analyzer/pkg/logger"
	"github.com/SuyashJain1994/Contract-Analyzer/service"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	// Open database and migrate schema
	db, err := database.Open(&cfg.Database)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Initialize services
	archiveSvc, err := service.NewArchiveService(&cfg.Archive)
	if err != nil {
		slog.Error("failed to initialize archive storage", "error", err)
		os.Exit(1)
	}
	if archiveSvc != nil {
		if err := archiveSvc.EnsureBucket(context.Background()); err != nil {
			slog.Error("failed to ensure archive bucket", "error", err)
			os.Exit(1)
		}
	}

	extractor := service.NewExtractor(&cfg.Upload)
	analyzer := service.NewAnalyzer(&cfg.OpenAI)
	authSvc := service.NewAuthService(service.NewStaticCredentials(cfg.Users), &cfg.Auth)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authSvc)
	analysisHandler := handler.NewAnalysisHandler(extractor, analyzer, archiveSvc, db)
	dashboardHandler := handler.NewDashboardHandler()

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New() // Use New() instead of Default() to avoid default middleware

	// Add custom middleware
	router.Use(middleware.RequestID())                 // Request ID for tracing
	router.Use(middleware.Recovery())                  // Panic recovery
	router.Use(middleware.RequestLogger())             // Access logging
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	router.Use(middleware.RateLimit(100, time.Minute)) // Rate limiting: 100 requests per minute

	api := router.Group("/api")

	// Health check endpoint
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"version":   version,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public routes
	api.POST("/auth/login", authHandler.Login)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(authSvc))
	{
		protected.GET("/auth/me", authHandler.GetCurrentUser)
		protected.POST("/upload", analysisHandler.Upload)
		protected.GET("/analysis/:id", analysisHandler.GetAnalysis)
		protected.GET("/dashboard/stats", dashboardHandler.GetStats)
	}

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}
