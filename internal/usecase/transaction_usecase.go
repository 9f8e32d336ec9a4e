package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/anikdas/ledgerbook/internal/domain"
)

// TransactionUseCase handles the append-only transaction list. Records are
// never edited or deleted individually; the only destructive operation is a
// full reset.
type TransactionUseCase struct {
	txRepo  TransactionRepository
	idGen   IDGenerator
	cache   Cache
	metrics MetricsRecorder
}

// NewTransactionUseCase creates a new TransactionUseCase. cache and metrics
// may be nil.
func NewTransactionUseCase(txRepo TransactionRepository, idGen IDGenerator, cache Cache, m MetricsRecorder) *TransactionUseCase {
	return &TransactionUseCase{
		txRepo:  txRepo,
		idGen:   idGen,
		cache:   cache,
		metrics: m,
	}
}

// RecordTransactionInput represents input for recording a transaction.
type RecordTransactionInput struct {
	Date        string
	Particulars string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Party       string
	AccountType domain.AccountType
}

// RecordTransaction validates and appends a single transaction.
func (uc *TransactionUseCase) RecordTransaction(ctx context.Context, input RecordTransactionInput) (*domain.Transaction, error) {
	tx := &domain.Transaction{
		ID:          uc.idGen.Generate(),
		Date:        input.Date,
		Particulars: input.Particulars,
		Debit:       input.Debit,
		Credit:      input.Credit,
		Party:       input.Party,
		AccountType: input.AccountType,
	}

	if err := domain.ValidateTransaction(*tx); err != nil {
		return nil, err
	}

	if err := uc.txRepo.Append(ctx, tx); err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	if uc.metrics != nil {
		uc.metrics.RecordTransactions(1)
	}

	return tx, nil
}

// RecordBatch validates and appends multiple transactions as one unit.
// Validation runs over the whole batch before anything is written.
func (uc *TransactionUseCase) RecordBatch(ctx context.Context, inputs []RecordTransactionInput) ([]*domain.Transaction, error) {
	txs := make([]*domain.Transaction, 0, len(inputs))
	for _, input := range inputs {
		tx := &domain.Transaction{
			ID:          uc.idGen.Generate(),
			Date:        input.Date,
			Particulars: input.Particulars,
			Debit:       input.Debit,
			Credit:      input.Credit,
			Party:       input.Party,
			AccountType: input.AccountType,
		}
		if err := domain.ValidateTransaction(*tx); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}

	if len(txs) == 0 {
		return txs, nil
	}

	if err := uc.txRepo.AppendBatch(ctx, txs); err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	if uc.metrics != nil {
		uc.metrics.RecordTransactions(len(txs))
	}

	return txs, nil
}

// ListTransactions returns the full transaction list in input order.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return uc.txRepo.List(ctx)
}

// CountTransactions returns the number of recorded transactions.
func (uc *TransactionUseCase) CountTransactions(ctx context.Context) (int64, error) {
	return uc.txRepo.Count(ctx)
}

// ResetTransactions clears the transaction list entirely.
func (uc *TransactionUseCase) ResetTransactions(ctx context.Context) error {
	if err := uc.txRepo.Reset(ctx); err != nil {
		return err
	}

	uc.invalidate(ctx)

	return nil
}

// invalidate drops the cached derived view. The write has already
// succeeded, so a cache failure only costs freshness until the TTL expires.
func (uc *TransactionUseCase) invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	_ = uc.cache.Delete(ctx, ledgersCacheKey)
}
