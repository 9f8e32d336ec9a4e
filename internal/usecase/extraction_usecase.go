package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/anikdas/ledgerbook/internal/domain"
)

var (
	// ErrNothingExtracted is returned when the model finds no transactions
	// in the supplied text.
	ErrNothingExtracted = errors.New("no transactions could be extracted from the text")
)

// TransactionRecorder is the subset of TransactionUseCase needed to persist
// extracted rows.
type TransactionRecorder interface {
	RecordBatch(ctx context.Context, inputs []RecordTransactionInput) ([]*domain.Transaction, error)
}

// ExtractionUseCase converts free text into recorded transactions via an
// external extraction model. The extracted rows go through the same
// producer-boundary validation as manual entry.
type ExtractionUseCase struct {
	extractor Extractor
	recorder  TransactionRecorder
	metrics   MetricsRecorder
}

// NewExtractionUseCase creates a new ExtractionUseCase. metrics may be nil.
func NewExtractionUseCase(extractor Extractor, recorder TransactionRecorder, m MetricsRecorder) *ExtractionUseCase {
	return &ExtractionUseCase{
		extractor: extractor,
		recorder:  recorder,
		metrics:   m,
	}
}

// ExtractAndRecord extracts transactions from text and appends them to the
// transaction list. Nothing is written when extraction or validation fails.
func (uc *ExtractionUseCase) ExtractAndRecord(ctx context.Context, text string) ([]*domain.Transaction, error) {
	rows, err := uc.extractor.Extract(ctx, text)
	if err != nil {
		uc.recordOutcome("error")
		return nil, fmt.Errorf("extract transactions: %w", err)
	}

	if len(rows) == 0 {
		uc.recordOutcome("empty")
		return nil, ErrNothingExtracted
	}

	inputs := make([]RecordTransactionInput, 0, len(rows))
	for _, row := range rows {
		inputs = append(inputs, RecordTransactionInput{
			Date:        row.Date,
			Particulars: row.Particulars,
			Debit:       row.Debit,
			Credit:      row.Credit,
			Party:       row.Party,
			AccountType: row.AccountType,
		})
	}

	txs, err := uc.recorder.RecordBatch(ctx, inputs)
	if err != nil {
		uc.recordOutcome("rejected")
		return nil, err
	}

	uc.recordOutcome("ok")

	return txs, nil
}

func (uc *ExtractionUseCase) recordOutcome(status string) {
	if uc.metrics != nil {
		uc.metrics.RecordExtraction(status)
	}
}
