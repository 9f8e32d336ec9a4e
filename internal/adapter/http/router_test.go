package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/anikdas/ledgerbook/internal/adapter/http/handler"
	apimiddleware "github.com/anikdas/ledgerbook/internal/adapter/http/middleware"
	"github.com/anikdas/ledgerbook/internal/domain"
	"github.com/anikdas/ledgerbook/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_MetricsEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"date":"2024-01-05","party":"ABC Traders","account_type":"Asset"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"GET /metrics",
		"POST /api/v1/transactions/",
		"POST /api/v1/transactions/batch",
		"POST /api/v1/transactions/extract",
		"GET /api/v1/transactions/",
		"DELETE /api/v1/transactions/",
		"GET /api/v1/ledgers/",
		"GET /api/v1/ledgers/{party}",
		"GET /api/v1/topsheet",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	cfg := RouterConfig{
		HealthHandler:      &handler.HealthHandler{},
		TransactionHandler: handler.NewTransactionHandler(&stubTransactionService{}),
		LedgerHandler:      handler.NewLedgerHandler(&stubLedgerService{}),
		ExtractHandler:     handler.NewExtractHandler(&stubExtractService{}),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubTransactionService struct{}

func (stubTransactionService) RecordTransaction(ctx context.Context, input usecase.RecordTransactionInput) (*domain.Transaction, error) {
	return &domain.Transaction{ID: "tx"}, nil
}

func (stubTransactionService) RecordBatch(ctx context.Context, inputs []usecase.RecordTransactionInput) ([]*domain.Transaction, error) {
	return []*domain.Transaction{}, nil
}

func (stubTransactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return []domain.Transaction{}, nil
}

func (stubTransactionService) CountTransactions(ctx context.Context) (int64, error) {
	return 0, nil
}

func (stubTransactionService) ResetTransactions(ctx context.Context) error {
	return nil
}

type stubLedgerService struct{}

func (stubLedgerService) DeriveLedgers(ctx context.Context) ([]*domain.AccountLedger, error) {
	return []*domain.AccountLedger{}, nil
}

func (stubLedgerService) GetLedger(ctx context.Context, party string) (*domain.AccountLedger, error) {
	return &domain.AccountLedger{AccountName: party}, nil
}

func (stubLedgerService) TopSheet(ctx context.Context) (*domain.TopSheet, error) {
	return &domain.TopSheet{}, nil
}

type stubExtractService struct{}

func (stubExtractService) ExtractAndRecord(ctx context.Context, text string) ([]*domain.Transaction, error) {
	return []*domain.Transaction{}, nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
