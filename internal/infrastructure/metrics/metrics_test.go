package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	// Replace global default registry to allow test inspection.
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry

	m := New()

	if m.TransactionsRecorded == nil || m.LedgersDerived == nil || m.DBQueries == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}

	m.RecordTransactions(3)
	if got := testutil.ToFloat64(m.TransactionsRecorded); got != 3 {
		t.Fatalf("expected 3 recorded transactions, got %v", got)
	}
	if got := testutil.ToFloat64(m.BatchesRecorded); got != 1 {
		t.Fatalf("expected 1 recorded batch, got %v", got)
	}

	m.RecordCacheLookup(true)
	m.RecordCacheLookup(false)
	if got := testutil.ToFloat64(m.CacheHits); got != 1 {
		t.Fatalf("expected 1 cache hit, got %v", got)
	}
	if got := testutil.ToFloat64(m.CacheMisses); got != 1 {
		t.Fatalf("expected 1 cache miss, got %v", got)
	}

	m.RecordDBQuery("append", errors.New("boom"))
	if got := testutil.ToFloat64(m.DBErrors.WithLabelValues("append")); got != 1 {
		t.Fatalf("expected 1 db error, got %v", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics

	m.RecordDBQuery("append", nil)
	m.RecordCacheLookup(true)
	m.RecordDerivation(time.Millisecond)
	m.RecordTransactions(2)
	m.RecordExtraction("ok")
}
