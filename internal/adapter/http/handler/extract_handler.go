package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/anikdas/ledgerbook/internal/adapter/http/dto"
	"github.com/anikdas/ledgerbook/internal/domain"
	"github.com/anikdas/ledgerbook/internal/usecase"
)

// ErrExtractionDisabled is returned when no extraction backend is
// configured.
var ErrExtractionDisabled = errors.New("transaction extraction is not configured")

// ExtractService defines the behavior needed by ExtractHandler.
type ExtractService interface {
	ExtractAndRecord(ctx context.Context, text string) ([]*domain.Transaction, error)
}

// DisabledExtractService rejects every request. It stands in for the real
// service when no extraction API key is configured.
type DisabledExtractService struct{}

func (DisabledExtractService) ExtractAndRecord(ctx context.Context, text string) ([]*domain.Transaction, error) {
	return nil, ErrExtractionDisabled
}

// ExtractHandler handles free-text transaction extraction requests.
type ExtractHandler struct {
	extractUC ExtractService
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(extractUC ExtractService) *ExtractHandler {
	return &ExtractHandler{extractUC: extractUC}
}

// Extract parses transactions out of free text and records them.
func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req dto.ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "empty text", "text to extract from is required")
		return
	}

	txs, err := h.extractUC.ExtractAndRecord(r.Context(), req.Text)
	if err != nil {
		if errors.Is(err, ErrExtractionDisabled) {
			writeError(w, http.StatusServiceUnavailable, "extraction unavailable", err.Error())
			return
		}
		if errors.Is(err, usecase.ErrNothingExtracted) {
			writeError(w, http.StatusUnprocessableEntity, "nothing extracted", err.Error())
			return
		}

		status := mapDomainError(err)
		writeError(w, status, "failed to extract transactions", err.Error())

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
