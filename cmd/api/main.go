package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hilquiasfmelo/advanced-forms/config"
	"github.com/hilquiasfmelo/advanced-forms/internal/handlers"
	"github.com/hilquiasfmelo/advanced-forms/internal/middleware"
	"github.com/hilquiasfmelo/advanced-forms/internal/services"
	"github.com/hilquiasfmelo/advanced-forms/internal/session"
	"github.com/hilquiasfmelo/advanced-forms/pkg/logger"
	"github.com/hilquiasfmelo/advanced-forms/pkg/profiling"
	"github.com/hilquiasfmelo/advanced-forms/pkg/storage"
	"github.com/hilquiasfmelo/advanced-forms/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting advanced-forms API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.ExporterEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Initialize continuous profiling (config-gated)
	profilerStop, err := profiling.InitProfiler(
		cfg.Profiling,
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
	)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer profilerStop()

	// Initialize object storage client for avatar uploads
	storageClient, err := storage.NewClient(
		cfg.Storage.AccessKeyID,
		cfg.Storage.SecretAccessKey,
		cfg.Storage.BucketName,
		cfg.Storage.BucketPath,
		cfg.Storage.Endpoint,
		cfg.Storage.Region,
	)
	if err != nil {
		logger.Fatal("Failed to initialize storage client", zap.Error(err))
	}

	// Initialize session store and services
	sessionStore := session.NewStore(cfg.Session.TTLMinutes)
	formService := services.NewFormService(sessionStore, storageClient, cfg)

	// Initialize handlers
	formHandler := handlers.NewFormHandler(formService)
	healthHandler := handlers.NewHealthHandler()

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS: only allow the configured origins
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "traceparent", "tracestate"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Rate limiters: submits hit external storage, so they get a much
	// tighter budget than field edits
	generalRateLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200
	fieldRateLimiter := middleware.NewRateLimiter(20, 40)     // 20 req/sec, burst of 40
	submitRateLimiter := middleware.NewRateLimiter(1, 3)      // 1 req/sec, burst of 3
	defer generalRateLimiter.Stop()
	defer fieldRateLimiter.Stop()
	defer submitRateLimiter.Stop()

	// Utility endpoints
	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.Handler()))

	// Form session routes
	v1 := router.Group("/api/v1")
	v1.POST("/forms", generalRateLimiter.Middleware(), formHandler.CreateForm)
	v1.GET("/forms/:id", generalRateLimiter.Middleware(), formHandler.GetForm)
	v1.POST("/forms/:id/fields", fieldRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), formHandler.UpdateField)
	v1.POST("/forms/:id/techs", fieldRateLimiter.Middleware(), formHandler.AppendTechEntry)
	v1.POST("/forms/:id/submit", submitRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(cfg.Session.SubmitBodyLimit), formHandler.Submit)

	// Create HTTP server
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
