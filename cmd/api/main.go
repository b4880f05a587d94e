package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/adapter/handler"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/infrastructure/cache"
	httpmw "github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/infrastructure/http/middleware"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/usecase/feedback"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/usecase/live"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/usecase/session"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/ai"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/config"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/logger"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/retry"
	pkgvalidator "github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/validator"
)

// @title           Interview Warmup API
// @version         1.0
// @description     Realtime interview practice: ephemeral voice sessions, live transcript grouping and AI coaching reports

// @BasePath  /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Server.LogLevel, cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Register validator for request validation
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.ErrorHandler(zlog)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(httpmw.RequestLogger(zlog))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	zlog.Info("🔧 Initializing dependencies...")

	ctx := context.Background()
	store, err := cache.New(ctx, cfg)
	if err != nil {
		zlog.Fatal("Failed to initialize report cache", zap.String("driver", cfg.Cache.Driver), zap.Error(err))
	}
	defer store.Close()
	zlog.Info("📦 Report cache ready", zap.String("driver", cfg.Cache.Driver))

	policy := retry.Policy{
		InitialInterval: cfg.OpenAI.RetryInitial,
		MaxInterval:     retry.DefaultPolicy.MaxInterval,
		MaxElapsedTime:  cfg.OpenAI.RetryMaxElapsed,
	}

	zlog.Info("🤖 Initializing AI components...", zap.String("feedback_model", cfg.OpenAI.FeedbackModel))
	chatClient := ai.NewChatClient(&cfg.OpenAI)
	realtimeClient := ai.NewRealtimeClient(&cfg.OpenAI)

	feedbackService := feedback.NewService(chatClient, store, feedback.Options{
		Model:    cfg.OpenAI.FeedbackModel,
		CacheTTL: cfg.Cache.ReportTTL,
		Retry:    policy,
	}, zlog.Named("feedback"))
	sessionService := session.NewService(realtimeClient, cfg.Realtime, policy, zlog.Named("session"))

	registry := live.NewRegistry(cfg.Live.SessionTTL, zlog.Named("live"))
	defer registry.Close()

	router := handler.NewRouter(cfg,
		handler.NewSessionHandler(sessionService, zlog),
		handler.NewFeedbackHandler(feedbackService, zlog),
		handler.NewTranscriptHandler(zlog),
		handler.NewLiveHandler(registry, cfg.Server.AllowedOrigins, zlog),
		registry,
	)
	router.Setup(e)

	// Start server
	addr := cfg.GetServerAddr()
	go func() {
		zlog.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zlog.Info("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		zlog.Error("❌ Server forced to shutdown", zap.Error(err))
		return
	}

	zlog.Info("✅ Server stopped gracefully")
}
