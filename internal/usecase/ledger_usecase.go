package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/anikdas/ledgerbook/internal/domain"
)

// LedgerUseCase derives per-party ledgers and the trial-balance top sheet
// from the transaction list. Derivation is pure and recomputed on every
// call; the optional cache only short-circuits repeated reads between
// writes.
type LedgerUseCase struct {
	txRepo   TransactionRepository
	cache    Cache
	cacheTTL time.Duration
	metrics  MetricsRecorder
}

// NewLedgerUseCase creates a new LedgerUseCase. cache may be nil to disable
// view caching; metrics may be nil.
func NewLedgerUseCase(txRepo TransactionRepository, cache Cache, cacheTTL time.Duration, m MetricsRecorder) *LedgerUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultLedgerCacheTTL
	}
	return &LedgerUseCase{
		txRepo:   txRepo,
		cache:    cache,
		cacheTTL: cacheTTL,
		metrics:  m,
	}
}

// DeriveLedgers returns one ledger per distinct party, in first-seen order.
func (uc *LedgerUseCase) DeriveLedgers(ctx context.Context) ([]*domain.AccountLedger, error) {
	if cached, ok := uc.fromCache(ctx); ok {
		return cached, nil
	}

	txs, err := uc.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	ledgers, err := domain.DeriveLedgers(txs)
	if err != nil {
		return nil, err
	}
	if uc.metrics != nil {
		uc.metrics.RecordDerivation(time.Since(start))
	}

	uc.toCache(ctx, ledgers)

	return ledgers, nil
}

// GetLedger returns the derived ledger for one party.
func (uc *LedgerUseCase) GetLedger(ctx context.Context, party string) (*domain.AccountLedger, error) {
	ledgers, err := uc.DeriveLedgers(ctx)
	if err != nil {
		return nil, err
	}

	for _, l := range ledgers {
		if l.AccountName == party {
			return l, nil
		}
	}

	return nil, domain.ErrLedgerNotFound
}

// TopSheet returns the trial-balance summary across all ledgers.
func (uc *LedgerUseCase) TopSheet(ctx context.Context) (*domain.TopSheet, error) {
	ledgers, err := uc.DeriveLedgers(ctx)
	if err != nil {
		return nil, err
	}

	return domain.BuildTopSheet(ledgers), nil
}

func (uc *LedgerUseCase) fromCache(ctx context.Context) ([]*domain.AccountLedger, bool) {
	if uc.cache == nil {
		return nil, false
	}

	data, err := uc.cache.Get(ctx, ledgersCacheKey)
	if err != nil || len(data) == 0 {
		return nil, false
	}

	var ledgers []*domain.AccountLedger
	if err := json.Unmarshal(data, &ledgers); err != nil {
		return nil, false
	}

	return ledgers, true
}

func (uc *LedgerUseCase) toCache(ctx context.Context, ledgers []*domain.AccountLedger) {
	if uc.cache == nil {
		return
	}

	data, err := json.Marshal(ledgers)
	if err != nil {
		return
	}

	_ = uc.cache.Set(ctx, ledgersCacheKey, data, uc.cacheTTL)
}
