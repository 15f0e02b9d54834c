package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/apbooks/glcore/internal/adapter/http/handler"
	"github.com/apbooks/glcore/internal/adapter/http/middleware"
	"github.com/apbooks/glcore/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	PostingHandler        *handler.PostingHandler
	PaymentHandler        *handler.PaymentHandler
	ReconciliationHandler *handler.ReconciliationHandler
	ReportHandler         *handler.ReportHandler
	HealthHandler         *handler.HealthHandler
	IdempotencyStore      usecase.IdempotencyStore
	RateLimiter           *middleware.RateLimiter
	Logger                zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Ledger postings
		r.Route("/postings", func(r chi.Router) {
			r.Post("/", cfg.PostingHandler.Record)
			r.Get("/{id}", cfg.PostingHandler.Get)
			r.Put("/{id}", cfg.PostingHandler.Update)
		})

		// Payments
		r.Route("/payments", func(r chi.Router) {
			r.Post("/", cfg.PaymentHandler.Create)
			r.Get("/", cfg.PaymentHandler.ListByVendor)
			r.Get("/{id}", cfg.PaymentHandler.Get)
			r.Post("/{id}/details", cfg.PaymentHandler.AllocateDetail)
		})

		// Bank reconciliation
		r.Get("/banks/{id}/reconciliation", cfg.ReconciliationHandler.ReconcileBank)
		r.Post("/reconciliation", cfg.ReconciliationHandler.Reconcile)

		// Reports
		r.Route("/reports", func(r chi.Router) {
			r.Get("/source-codes", cfg.ReportHandler.SourceCodes)
			r.Get("/debit-credit", cfg.ReportHandler.DebitCreditSummary)
		})
	})

	return r
}
