package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the derivation service.
type Metrics struct {
	// Transaction metrics
	TransactionsRecorded prometheus.Counter
	BatchesRecorded      prometheus.Counter
	TransactionErrors    *prometheus.CounterVec

	// Derivation metrics
	LedgersDerived     prometheus.Counter
	DerivationDuration prometheus.Histogram

	// Extraction metrics
	ExtractionRequests *prometheus.CounterVec

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	// Database metrics
	DBQueries *prometheus.CounterVec
	DBErrors  *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		TransactionsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_transactions_recorded_total",
			Help: "Total number of transactions recorded",
		}),
		BatchesRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_batches_recorded_total",
			Help: "Total number of transaction batches recorded",
		}),
		TransactionErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_transaction_errors_total",
				Help: "Total number of transaction recording errors by type",
			},
			[]string{"error_type"},
		),

		LedgersDerived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_ledgers_derived_total",
			Help: "Total number of ledger derivation runs",
		}),
		DerivationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledgerbook_derivation_duration_seconds",
			Help:    "Duration of ledger derivation runs",
			Buckets: prometheus.DefBuckets,
		}),

		ExtractionRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_extraction_requests_total",
				Help: "Total free-text extraction requests by status",
			},
			[]string{"status"},
		),

		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_ledger_cache_hits_total",
			Help: "Total derived-ledger cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_ledger_cache_misses_total",
			Help: "Total derived-ledger cache misses",
		}),

		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_db_queries_total",
				Help: "Total database queries by operation",
			},
			[]string{"operation"},
		),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_db_errors_total",
				Help: "Total database errors by operation",
			},
			[]string{"operation"},
		),
	}
}

// The helpers below are nil-safe so callers can run without metrics wired.

// RecordDBQuery counts one database query, and its error if any.
func (m *Metrics) RecordDBQuery(operation string, err error) {
	if m == nil {
		return
	}
	m.DBQueries.WithLabelValues(operation).Inc()
	if err != nil {
		m.DBErrors.WithLabelValues(operation).Inc()
	}
}

// RecordCacheLookup counts a derived-ledger cache hit or miss.
func (m *Metrics) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHits.Inc()
	} else {
		m.CacheMisses.Inc()
	}
}

// RecordDerivation counts one derivation run and observes its duration.
func (m *Metrics) RecordDerivation(d time.Duration) {
	if m == nil {
		return
	}
	m.LedgersDerived.Inc()
	m.DerivationDuration.Observe(d.Seconds())
}

// RecordTransactions counts recorded transactions; batches of more than
// one also count as a batch.
func (m *Metrics) RecordTransactions(n int) {
	if m == nil {
		return
	}
	m.TransactionsRecorded.Add(float64(n))
	if n > 1 {
		m.BatchesRecorded.Inc()
	}
}

// RecordExtraction counts one extraction request by outcome status.
func (m *Metrics) RecordExtraction(status string) {
	if m == nil {
		return
	}
	m.ExtractionRequests.WithLabelValues(status).Inc()
}
