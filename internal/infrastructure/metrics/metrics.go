package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Ledger metrics
	PostingsRecorded prometheus.Counter
	PostingsUpdated  prometheus.Counter
	PostingAmount    prometheus.Histogram

	// Payment metrics
	PaymentsCreated  prometheus.Counter
	DetailsAllocated prometheus.Counter
	PaymentErrors    *prometheus.CounterVec

	// Reconciliation metrics
	ReconciliationsRun      prometheus.Counter
	ReconciliationDuration  prometheus.Histogram
	ReconciliationItemCount prometheus.Histogram

	// Report metrics
	ReportsBuilt   *prometheus.CounterVec
	ReportDuration *prometheus.HistogramVec

	// Validation metrics
	ValidationFailures *prometheus.CounterVec

	// Database metrics
	DBErrors *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		PostingsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "glcore_postings_recorded_total",
			Help: "Total number of ledger postings recorded",
		}),
		PostingsUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "glcore_postings_updated_total",
			Help: "Total number of ledger postings updated",
		}),
		PostingAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "glcore_posting_amount",
			Help:    "Absolute posting amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),

		PaymentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "glcore_payments_created_total",
			Help: "Total number of payments created",
		}),
		DetailsAllocated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "glcore_payment_details_allocated_total",
			Help: "Total number of payment details allocated",
		}),
		PaymentErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "glcore_payment_errors_total",
				Help: "Total number of payment errors by type",
			},
			[]string{"error_type"},
		),

		ReconciliationsRun: promauto.NewCounter(prometheus.CounterOpts{
			Name: "glcore_reconciliations_run_total",
			Help: "Total number of bank reconciliations computed",
		}),
		ReconciliationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "glcore_reconciliation_duration_seconds",
			Help:    "Duration of reconciliation computations",
			Buckets: prometheus.DefBuckets,
		}),
		ReconciliationItemCount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "glcore_reconciliation_item_count",
			Help:    "Number of reconciling items per run",
			Buckets: []float64{0, 10, 50, 100, 500, 1000, 5000},
		}),

		ReportsBuilt: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "glcore_reports_built_total",
				Help: "Total number of reports built by kind",
			},
			[]string{"kind"},
		),
		ReportDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "glcore_report_duration_seconds",
				Help:    "Report build duration by kind",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),

		ValidationFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "glcore_validation_failures_total",
				Help: "Total validation failures by field",
			},
			[]string{"field", "kind"},
		),

		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "glcore_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),
	}
}
