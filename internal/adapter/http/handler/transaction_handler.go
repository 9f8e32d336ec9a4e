package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/anikdas/ledgerbook/internal/adapter/http/dto"
	"github.com/anikdas/ledgerbook/internal/domain"
	"github.com/anikdas/ledgerbook/internal/usecase"
)

// TransactionService defines the behavior needed by TransactionHandler.
type TransactionService interface {
	RecordTransaction(ctx context.Context, input usecase.RecordTransactionInput) (*domain.Transaction, error)
	RecordBatch(ctx context.Context, inputs []usecase.RecordTransactionInput) ([]*domain.Transaction, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	CountTransactions(ctx context.Context) (int64, error)
	ResetTransactions(ctx context.Context) error
}

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	txUC TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(txUC TransactionService) *TransactionHandler {
	return &TransactionHandler{txUC: txUC}
}

// Record records a single transaction.
func (h *TransactionHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tx, err := h.txUC.RecordTransaction(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to record transaction", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(tx))
}

// RecordBatch records multiple transactions atomically.
func (h *TransactionHandler) RecordBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if len(req.Transactions) == 0 {
		writeError(w, http.StatusBadRequest, "empty batch", "at least one transaction is required")
		return
	}

	txs, err := h.txUC.RecordBatch(r.Context(), req.ToUseCaseInputs())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to record transactions", err.Error())

		return
	}

	responses := make([]*dto.TransactionResponse, len(txs))
	for i, tx := range txs {
		responses[i] = dto.TransactionFromDomain(tx)
	}

	writeJSON(w, http.StatusCreated, dto.RecordedTransactionsResponse{
		Transactions: responses,
		Total:        int64(len(responses)),
	})
}

// List lists recorded transactions in insertion order.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	txs, err := h.txUC.ListTransactions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list transactions", err.Error())
		return
	}

	if limit := parseIntQuery(r, "limit", 0); limit > 0 && limit < len(txs) {
		txs = txs[:limit]
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(txs),
		Total:        int64(len(txs)),
	})
}

// Reset removes all recorded transactions.
func (h *TransactionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.txUC.ResetTransactions(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to reset transactions", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
