package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/apbooks/glcore/internal/adapter/http"
	"github.com/apbooks/glcore/internal/adapter/http/handler"
	"github.com/apbooks/glcore/internal/adapter/http/middleware"
	postgresRepo "github.com/apbooks/glcore/internal/adapter/repository/postgres"
	redisRepo "github.com/apbooks/glcore/internal/adapter/repository/redis"
	"github.com/apbooks/glcore/internal/infrastructure/config"
	"github.com/apbooks/glcore/internal/infrastructure/logger"
	"github.com/apbooks/glcore/internal/infrastructure/metrics"
	"github.com/apbooks/glcore/internal/infrastructure/postgres"
	"github.com/apbooks/glcore/internal/infrastructure/redis"
	"github.com/apbooks/glcore/internal/usecase"
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
	zerolog.SetGlobalLevel(appLogger.GetLevel())

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
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

	appMetrics := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	profitCenterRepo := postgresRepo.NewProfitCenterRepository(pool)
	sourceCodeRepo := postgresRepo.NewSourceCodeRepository(pool)
	vendorRepo := postgresRepo.NewVendorRepository(pool)
	invoiceRepo := postgresRepo.NewInvoiceRepository(pool)
	bankRepo := postgresRepo.NewBankRepository(pool)
	postingRepo := postgresRepo.NewPostingRepository(pool)
	paymentRepo := postgresRepo.NewPaymentRepository(pool)
	itemRepo := postgresRepo.NewReconcilingItemRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(appLogger)

	cache := redisRepo.NewCache(redisClient)
	enumRepo := redisRepo.NewCachedEnumRepository(postgresRepo.NewEnumRepository(pool), cache, cfg.EnumCacheTTL)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Initialize use cases
	recorderUC := usecase.NewRecorderUseCase(accountRepo, profitCenterRepo, sourceCodeRepo, postingRepo, idGen, appMetrics)
	paymentUC := usecase.NewPaymentUseCase(txManager, bankRepo, vendorRepo, invoiceRepo, paymentRepo, enumRepo, idGen, retrier, appMetrics)
	reconciliationUC := usecase.NewReconciliationUseCase(bankRepo, itemRepo)
	reportUC := usecase.NewReportUseCase(postingRepo)

	// Initialize handlers
	postingHandler := handler.NewPostingHandler(recorderUC)
	paymentHandler := handler.NewPaymentHandler(paymentUC)
	reconciliationHandler := handler.NewReconciliationHandler(reconciliationUC)
	reportHandler := handler.NewReportHandler(reportUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			rateLimiter.Sweep(10 * time.Minute)
		}
	}()

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		PostingHandler:        postingHandler,
		PaymentHandler:        paymentHandler,
		ReconciliationHandler: reconciliationHandler,
		ReportHandler:         reportHandler,
		HealthHandler:         healthHandler,
		IdempotencyStore:      idempotencyStore,
		RateLimiter:           rateLimiter,
		Logger:                appLogger,
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
