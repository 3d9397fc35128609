package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusvoice/feedback-service/internal/config"
	"github.com/campusvoice/feedback-service/internal/handlers"
	"github.com/campusvoice/feedback-service/internal/services"
	"github.com/campusvoice/feedback-service/internal/store"
	"github.com/campusvoice/feedback-service/internal/utils"
	"github.com/campusvoice/feedback-service/internal/validator"
	"github.com/campusvoice/feedback-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
	} else {
		logger = utils.NewDevelopmentLogger()
	}
	slogLogger := logger.(*utils.SlogLogger).GetSlogLogger()

	st, err := buildStore(cfg)
	if err != nil {
		logger.LogError(err, "Failed to initialize storage backend", "backend", cfg.StoreBackend)
		os.Exit(1)
	}
	logger.Info("Storage backend ready", "backend", cfg.StoreBackend)

	ctx := context.Background()
	if err := services.EnsureDefaults(ctx, st, slogLogger); err != nil {
		logger.LogError(err, "Failed to seed default data")
		os.Exit(1)
	}

	eventCfg := config.LoadEventConfig()
	publisher := eventCfg.CreateEventPublisher(slogLogger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.LogError(err, "Failed to close event publisher")
		}
	}()

	v := validator.New()

	authService := services.NewAuthService(st, slogLogger, v, cfg.APIDelay)
	feedbackService := services.NewFeedbackService(st, slogLogger, v, publisher, cfg.APIDelay)
	catalogService := services.NewCatalogService(st, slogLogger, publisher, cfg.APIDelay)
	exportService := services.NewExportService(st, slogLogger, cfg.APIDelay)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))

	handlerManager := handlers.NewHandlerManager(authService, feedbackService, catalogService, exportService, logger)
	handlerManager.SetupRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.LogError(err, "Server failed")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.LogError(err, "Forced shutdown")
	}
	logger.Info("Server stopped")
}

func buildStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendRedis:
		client, err := pkg.NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		return store.NewRedisStore(client), nil
	case config.StoreBackendPostgres:
		db, err := pkg.InitDatabase(cfg)
		if err != nil {
			return nil, err
		}
		return store.NewGormStore(db)
	default:
		return store.NewMemoryStore(), nil
	}
}
