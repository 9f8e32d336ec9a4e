package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/anikdas/ledgerbook/internal/adapter/http"
	"github.com/anikdas/ledgerbook/internal/adapter/http/handler"
	"github.com/anikdas/ledgerbook/internal/adapter/http/middleware"
	postgresRepo "github.com/anikdas/ledgerbook/internal/adapter/repository/postgres"
	redisRepo "github.com/anikdas/ledgerbook/internal/adapter/repository/redis"
	"github.com/anikdas/ledgerbook/internal/infrastructure/config"
	"github.com/anikdas/ledgerbook/internal/infrastructure/extractor"
	"github.com/anikdas/ledgerbook/internal/infrastructure/logger"
	"github.com/anikdas/ledgerbook/internal/infrastructure/metrics"
	"github.com/anikdas/ledgerbook/internal/infrastructure/postgres"
	"github.com/anikdas/ledgerbook/internal/infrastructure/redis"
	"github.com/anikdas/ledgerbook/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Metrics
	m := metrics.New()

	// Initialize repositories
	txRepo := postgresRepo.NewTransactionRepository(pool, m)
	cache := redisRepo.NewCache(redisClient, m)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	txUC := usecase.NewTransactionUseCase(txRepo, idGen, cache, m)
	ledgerUC := usecase.NewLedgerUseCase(txRepo, cache, cfg.LedgerCacheTTL, m)

	// Initialize handlers
	txHandler := handler.NewTransactionHandler(txUC)
	ledgerHandler := handler.NewLedgerHandler(ledgerUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Free-text extraction is optional; without an API key the endpoint
	// reports the feature as unavailable.
	var extractService handler.ExtractService = handler.DisabledExtractService{}
	if cfg.ExtractionEnabled() {
		gemini, err := extractor.NewGeminiExtractor(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create extractor")
		}
		extractService = usecase.NewExtractionUseCase(gemini, txUC, m)
		log.Info().Str("model", cfg.GeminiModel).Msg("transaction extraction enabled")
	} else {
		log.Info().Msg("transaction extraction disabled")
	}
	extractHandler := handler.NewExtractHandler(extractService)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit > 0 {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
	}

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransactionHandler: txHandler,
		LedgerHandler:      ledgerHandler,
		ExtractHandler:     extractHandler,
		HealthHandler:      healthHandler,
		IdempotencyStore:   idempotencyStore,
		RateLimiter:        rateLimiter,
		Logger:             appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
