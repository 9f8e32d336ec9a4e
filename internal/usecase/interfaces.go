package usecase

import (
	"context"
	"time"

	"github.com/anikdas/ledgerbook/internal/domain"
)

// TransactionRepository defines data access for the append-only
// transaction list. List must return transactions in input (append) order.
type TransactionRepository interface {
	Append(ctx context.Context, tx *domain.Transaction) error
	AppendBatch(ctx context.Context, txs []*domain.Transaction) error
	List(ctx context.Context) ([]domain.Transaction, error)
	Reset(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations for derived views.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// MetricsRecorder receives business-level counters from the use cases.
// A nil recorder is allowed everywhere one is accepted.
type MetricsRecorder interface {
	RecordTransactions(n int)
	RecordDerivation(d time.Duration)
	RecordExtraction(status string)
}

// Extractor turns free text (statements, notes, pasted tables) into
// transaction records. Implementations call an external model; the
// derivation engine never sees raw text.
type Extractor interface {
	Extract(ctx context.Context, text string) ([]domain.Transaction, error)
}
