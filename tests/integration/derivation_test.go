package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	adaptershttp "github.com/anikdas/ledgerbook/internal/adapter/http"
	"github.com/anikdas/ledgerbook/internal/adapter/http/dto"
	"github.com/anikdas/ledgerbook/internal/adapter/http/handler"
	"github.com/anikdas/ledgerbook/internal/adapter/repository/postgres"
	"github.com/anikdas/ledgerbook/internal/domain"
	"github.com/anikdas/ledgerbook/internal/usecase"
	"github.com/anikdas/ledgerbook/tests/testutil"
)

func newTestRouter(t *testing.T, testDB *testutil.TestDB) http.Handler {
	t.Helper()

	txRepo := postgres.NewTransactionRepository(testDB.Pool, nil)
	idGen := postgres.NewULIDGenerator()
	txUC := usecase.NewTransactionUseCase(txRepo, idGen, nil, nil)
	ledgerUC := usecase.NewLedgerUseCase(txRepo, nil, 0, nil)

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		TransactionHandler: handler.NewTransactionHandler(txUC),
		LedgerHandler:      handler.NewLedgerHandler(ledgerUC),
		ExtractHandler:     handler.NewExtractHandler(&noopExtractService{}),
		HealthHandler:      &handler.HealthHandler{},
		Logger:             zerolog.Nop(),
	})
}

type noopExtractService struct{}

func (noopExtractService) ExtractAndRecord(ctx context.Context, text string) ([]*domain.Transaction, error) {
	return nil, nil
}

func TestRecordAndDeriveLedgers(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(t, testDB)

	batch := dto.RecordBatchRequest{
		Transactions: []dto.RecordTransactionRequest{
			{Date: "2024-01-05", Particulars: "Goods sold", Debit: decimal.NewFromInt(1000), Party: "ABC Traders", AccountType: "Asset"},
			{Date: "2024-01-10", Particulars: "Payment received", Credit: decimal.NewFromInt(400), Party: "ABC Traders", AccountType: "Asset"},
			{Date: "2024-01-07", Particulars: "Service income", Credit: decimal.NewFromInt(5000), Party: "Sales Revenue", AccountType: "Income"},
		},
	}

	body, _ := json.Marshal(batch)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/batch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 from batch record, got %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/ledgers/", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from ledgers, got %d: %s", rec.Code, rec.Body.String())
	}

	var ledgers dto.ListLedgersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &ledgers); err != nil {
		t.Fatalf("failed to decode ledgers: %v", err)
	}

	if ledgers.Total != 2 {
		t.Fatalf("expected 2 ledgers, got %d", ledgers.Total)
	}

	abc := ledgers.Ledgers[0]
	if abc.AccountName != "ABC Traders" {
		t.Fatalf("expected first ledger ABC Traders, got %s", abc.AccountName)
	}
	if !abc.ClosingBalance.Equal(decimal.NewFromInt(600)) || abc.ClosingBalanceType != "Dr" {
		t.Fatalf("expected ABC Traders closing 600 Dr, got %s %s", abc.ClosingBalance, abc.ClosingBalanceType)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/topsheet", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from topsheet, got %d", rec.Code)
	}

	var sheet dto.TopSheetResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &sheet); err != nil {
		t.Fatalf("failed to decode topsheet: %v", err)
	}

	if !sheet.TotalDebit.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("expected topsheet total debit 600, got %s", sheet.TotalDebit)
	}
	if !sheet.TotalCredit.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("expected topsheet total credit 5000, got %s", sheet.TotalCredit)
	}
}

func TestResetClearsTransactions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	testDB.SeedTransaction(ctx, "2024-01-05", "Goods sold", decimal.NewFromInt(1000), decimal.Zero, "ABC Traders", "Asset")

	router := newTestRouter(t, testDB)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/transactions/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 from reset, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/transactions/", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var list dto.ListTransactionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode transactions: %v", err)
	}

	if list.Total != 0 {
		t.Fatalf("expected empty transaction list after reset, got %d", list.Total)
	}
}
