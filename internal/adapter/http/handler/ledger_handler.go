package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/anikdas/ledgerbook/internal/adapter/http/dto"
	"github.com/anikdas/ledgerbook/internal/domain"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	DeriveLedgers(ctx context.Context) ([]*domain.AccountLedger, error)
	GetLedger(ctx context.Context, party string) (*domain.AccountLedger, error)
	TopSheet(ctx context.Context) (*domain.TopSheet, error)
}

// LedgerHandler handles derived-ledger HTTP requests.
type LedgerHandler struct {
	ledgerUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// List derives and returns all party ledgers.
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	ledgers, err := h.ledgerUC.DeriveLedgers(r.Context())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to derive ledgers", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ListLedgersResponse{
		Ledgers: dto.LedgersFromDomain(ledgers),
		Total:   int64(len(ledgers)),
	})
}

// Get derives and returns one party's ledger.
func (h *LedgerHandler) Get(w http.ResponseWriter, r *http.Request) {
	party := chi.URLParam(r, "party")
	if decoded, err := url.PathUnescape(party); err == nil {
		party = decoded
	}
	if party == "" {
		writeError(w, http.StatusBadRequest, "missing party name", "")
		return
	}

	ledger, err := h.ledgerUC.GetLedger(r.Context(), party)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get ledger", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.LedgerFromDomain(ledger))
}

// TopSheet returns the trial-balance summary across all ledgers.
func (h *LedgerHandler) TopSheet(w http.ResponseWriter, r *http.Request) {
	sheet, err := h.ledgerUC.TopSheet(r.Context())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to build top sheet", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.TopSheetFromDomain(sheet))
}
